package trp

import (
	"fmt"
	"sort"
)

// Pair records that Winner beat Loser head to head by Margin votes.
type Pair struct {
	Winner int `json:"winner"`
	Loser  int `json:"loser"`
	Margin int `json:"margin"`
}

func (pair Pair) String() string {
	return fmt.Sprintf("%d > %d (+%d)", pair.Winner, pair.Loser, pair.Margin)
}

// BuildPairs emits one Pair for every unordered pair of candidates that is not tied. Pairs come
// out in ascending (i, j) order with i < j, which is the order ties keep after SortPairs.
func BuildPairs(p Preferences) []Pair {
	var pairs []Pair
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if p[i][j] > p[j][i] {
				pairs = append(pairs, Pair{Winner: i, Loser: j, Margin: p.Margin(i, j)})
			} else if p[j][i] > p[i][j] {
				pairs = append(pairs, Pair{Winner: j, Loser: i, Margin: p.Margin(j, i)})
			}
		}
	}
	return pairs
}

// SortPairs orders pairs by strength of victory, strongest first. Equal margins keep their relative order.
func SortPairs(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Margin > pairs[j].Margin
	})
}
