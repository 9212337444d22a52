package trp

// Preferences counts head-to-head results: p[i][j] is the number of voters who ranked i above j.
type Preferences [][]int

func NewPreferences(n int) Preferences {
	p := make(Preferences, n)
	for i := range p {
		p[i] = make([]int, n)
	}
	return p
}

// Record folds one complete ballot in. Every candidate gains a point over every candidate
// ranked anywhere below it, not only the next one down.
func (p Preferences) Record(ballot Ballot) {
	for i := range ballot {
		for j := i + 1; j < len(ballot); j++ {
			p[ballot[i]][ballot[j]]++
		}
	}
}

// Margin is how many more voters preferred winner over loser than the reverse. It may be negative.
func (p Preferences) Margin(winner, loser int) int {
	return p[winner][loser] - p[loser][winner]
}
