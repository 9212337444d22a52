package trp

// Results is the outcome of counting an election.
type Results struct {
	Candidates *Candidates

	// Pairs are sorted by descending margin.
	Pairs []Pair

	// Skipped holds indices into Pairs of pairs that would have created a cycle.
	Skipped []int

	Locked  *LockedGraph
	Winners []int
}

// WinnerNames returns the names of the winners in registry order.
func (r *Results) WinnerNames() []string {
	return r.Candidates.NamesOf(r.Winners)
}

// IsSkipped reports whether Pairs[i] was left out of the locked graph.
func (r *Results) IsSkipped(i int) bool {
	for _, s := range r.Skipped {
		if s == i {
			return true
		}
	}
	return false
}

// SkippedPairs returns the pairs that were not locked, strongest first.
func (r *Results) SkippedPairs() []Pair {
	pairs := make([]Pair, 0, len(r.Skipped))
	for _, i := range r.Skipped {
		pairs = append(pairs, r.Pairs[i])
	}
	return pairs
}

// Ranking lists every candidate from first to last place.
func (r *Results) Ranking() ([]string, error) {
	order, err := r.Locked.TSort()
	if err != nil {
		return nil, err
	}
	return r.Candidates.NamesOf(order), nil
}

// DOT renders the locked graph for Graphviz.
func (r *Results) DOT() ([]byte, error) {
	return r.Locked.DOT()
}
