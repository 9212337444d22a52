package trp

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

// Candidates is the fixed, ordered registry of an election. A candidate is identified by its index.
type Candidates struct {
	names []string
	index map[string]int
}

// NewCandidates registers names in order. It fails when names is empty, longer than max, or repeats a name.
func NewCandidates(names []string, max int) (*Candidates, error) {
	if len(names) == 0 {
		return nil, ErrNoCandidates
	}
	if len(names) > max {
		return nil, fmt.Errorf("%w: maximum number of candidates is %d", ErrCapacityExceeded, max)
	}

	seen := mapset.NewThreadUnsafeSet()
	index := make(map[string]int, len(names))
	for i, name := range names {
		if !seen.Add(name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		index[name] = i
	}

	return &Candidates{
		names: append([]string(nil), names...),
		index: index,
	}, nil
}

func (c *Candidates) Len() int {
	return len(c.names)
}

// IndexOf looks a name up by exact match.
func (c *Candidates) IndexOf(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

func (c *Candidates) Name(i int) string {
	return c.names[i]
}

// Names returns a copy of the registry in index order.
func (c *Candidates) Names() []string {
	return append([]string(nil), c.names...)
}

// NamesOf maps candidate indices to their names.
func (c *Candidates) NamesOf(indices []int) []string {
	names := make([]string, 0, len(indices))
	for _, i := range indices {
		names = append(names, c.names[i])
	}
	return names
}
