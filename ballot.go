package trp

// Ballot holds one voter's ranking: Ballot[r] is the index of the candidate at rank r.
type Ballot []int

// NewBallot returns an empty ballot sized for the registry.
func (c *Candidates) NewBallot() Ballot {
	return make(Ballot, c.Len())
}

// Vote validates name at the given rank and stores its index in ballot. Ranks must be
// filled in increasing order starting at 0, since only ballot[:rank] is checked for repeats.
func (c *Candidates) Vote(rank int, name string, ballot Ballot) error {
	i, ok := c.IndexOf(name)
	if !ok {
		return &InvalidVoteError{Rank: rank, Name: name, Err: ErrUnknownCandidate}
	}

	for _, earlier := range ballot[:rank] {
		if earlier == i {
			return &InvalidVoteError{Rank: rank, Name: name, Err: ErrDuplicateCandidate}
		}
	}

	ballot[rank] = i
	return nil
}

// Parse validates a complete ranking of names. Nothing is returned unless every rank is valid.
func (c *Candidates) Parse(names []string) (Ballot, error) {
	if len(names) != c.Len() {
		return nil, &InvalidVoteError{Rank: len(names), Err: ErrIncompleteBallot}
	}

	ballot := c.NewBallot()
	for rank, name := range names {
		if err := c.Vote(rank, name, ballot); err != nil {
			return nil, err
		}
	}
	return ballot, nil
}
