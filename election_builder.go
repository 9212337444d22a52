package trp

import "fmt"

// ElectionBuilder exposes a simple builder-pattern DSL for building up an Election progressively.
type ElectionBuilder struct {
	Config     Config
	Candidates []string
	Ballots    []BallotLine
}

func NewElectionBuilder(candidates ...string) *ElectionBuilder {
	return &ElectionBuilder{
		Config:     DefaultConfig(),
		Candidates: candidates,
	}
}

func (builder *ElectionBuilder) WithConfig(cfg Config) *ElectionBuilder {
	builder.Config = cfg
	return builder
}

// Vote adds one ballot ranking choices from first to last.
func (builder *ElectionBuilder) Vote(choices ...string) *ElectionBuilder {
	voterID := fmt.Sprintf("voter-%d", len(builder.Ballots)+1)
	builder.Ballots = append(builder.Ballots, BallotLine{VoterID: voterID, Names: choices})
	return builder
}

// Votes adds count identical ballots.
func (builder *ElectionBuilder) Votes(count int, choices ...string) *ElectionBuilder {
	for i := 0; i < count; i++ {
		builder.Vote(choices...)
	}
	return builder
}

// Election registers the candidates and casts every ballot under the builder's Config.
func (builder *ElectionBuilder) Election() (*Election, int, error) {
	election, err := NewElection(builder.Config, builder.Candidates)
	if err != nil {
		return nil, 0, err
	}
	rejected, err := election.CastAll(builder.Ballots)
	if err != nil {
		return nil, rejected, err
	}
	return election, rejected, nil
}

// Results is simply a shorthand for Election() followed by Results()
func (builder *ElectionBuilder) Results() (*Results, error) {
	election, _, err := builder.Election()
	if err != nil {
		return nil, err
	}
	return election.Results(), nil
}
