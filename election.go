package trp

import (
	"log/slog"
)

// Election owns all state of one run: the candidate registry and the preference matrix.
// Ballots are folded into the matrix as they arrive and are not kept.
type Election struct {
	cfg         Config
	candidates  *Candidates
	preferences Preferences
	voters      int
}

// NewElection validates cfg and registers the candidates.
func NewElection(cfg Config, names []string) (*Election, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	candidates, err := NewCandidates(names, cfg.MaxCandidates)
	if err != nil {
		return nil, err
	}
	return &Election{
		cfg:         cfg,
		candidates:  candidates,
		preferences: NewPreferences(candidates.Len()),
	}, nil
}

func (e *Election) Config() Config {
	return e.cfg
}

func (e *Election) Candidates() *Candidates {
	return e.candidates
}

// Preferences exposes the live matrix. Callers must not modify it.
func (e *Election) Preferences() Preferences {
	return e.preferences
}

// Voters is the number of ballots recorded so far.
func (e *Election) Voters() int {
	return e.voters
}

// NewBallot returns an empty ballot to be filled with Vote.
func (e *Election) NewBallot() Ballot {
	return e.candidates.NewBallot()
}

// Vote validates a single rank of a ballot being filled in.
func (e *Election) Vote(rank int, name string, ballot Ballot) error {
	return e.candidates.Vote(rank, name, ballot)
}

// Record folds a fully validated ballot into the preference matrix.
func (e *Election) Record(ballot Ballot) {
	e.preferences.Record(ballot)
	e.voters++
}

// Cast validates a whole ranking and records it. A rejected ballot leaves the election untouched.
func (e *Election) Cast(names []string) error {
	ballot, err := e.candidates.Parse(names)
	if err != nil {
		return err
	}
	e.Record(ballot)
	return nil
}

// CastAll casts ballots that were collected up front, so nobody can be asked to vote again.
// Under PolicyAbort the first invalid ballot is returned as an error; under PolicyRetry it is
// dropped and counted in rejected.
func (e *Election) CastAll(ballots []BallotLine) (rejected int, err error) {
	for _, b := range ballots {
		err := e.Cast(b.Names)
		if err == nil {
			continue
		}
		if e.cfg.InvalidBallot == PolicyAbort || !IsInvalidVote(err) {
			return rejected, voterError(b.VoterID, err)
		}
		slog.Warn("discarding invalid ballot", "voter", b.VoterID, "error", err)
		rejected++
	}
	return rejected, nil
}

// Results runs the ranked pairs count over every ballot recorded so far.
func (e *Election) Results() *Results {
	pairs := BuildPairs(e.preferences)
	SortPairs(pairs)

	locked := NewLockedGraph(e.candidates)
	skipped := locked.LockAll(pairs)

	return &Results{
		Candidates: e.candidates,
		Pairs:      pairs,
		Skipped:    skipped,
		Locked:     locked,
		Winners:    locked.Winners(),
	}
}
