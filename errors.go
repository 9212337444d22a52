package trp

import (
	"errors"
	"fmt"
)

var (
	ErrNoCandidates       = errors.New("no candidates")
	ErrCapacityExceeded   = errors.New("too many candidates")
	ErrDuplicateName      = errors.New("candidate listed more than once")
	ErrUnknownCandidate   = errors.New("unknown candidate")
	ErrDuplicateCandidate = errors.New("candidate ranked more than once")
	ErrIncompleteBallot   = errors.New("ballot does not rank every candidate")
)

// InvalidVoteError describes why a single rank of a ballot was refused.
type InvalidVoteError struct {
	Rank int // zero-based
	Name string
	Err  error
}

func (e *InvalidVoteError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid vote: %s", e.Err)
	}
	return fmt.Sprintf("invalid vote: rank %d %q: %s", e.Rank+1, e.Name, e.Err)
}

func (e *InvalidVoteError) Unwrap() error {
	return e.Err
}

// IsInvalidVote reports whether err came from a rejected ballot.
func IsInvalidVote(err error) bool {
	return errors.Is(err, ErrUnknownCandidate) ||
		errors.Is(err, ErrDuplicateCandidate) ||
		errors.Is(err, ErrIncompleteBallot)
}

// ExitCode maps an error to the process exit status of the tideman command.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrCapacityExceeded):
		return 2
	case IsInvalidVote(err):
		return 3
	default:
		return 1
	}
}

func voterError(voterID string, err error) error {
	if voterID == "" {
		return err
	}
	return fmt.Errorf("voter %s: %w", voterID, err)
}
