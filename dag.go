package trp

import (
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// candidateNode is a gonum graph node that knows its candidate name for DOT output.
type candidateNode struct {
	id   int64
	name string
}

func (n candidateNode) ID() int64 {
	return n.id
}

func (n candidateNode) DOTID() string {
	return n.name
}

// LockedGraph is the graph of locked-in victories. An edge a -> b means a beats b in the
// final ranking. Edges are only ever added, and never when they would close a cycle.
type LockedGraph struct {
	g          *simple.DirectedGraph
	candidates *Candidates
}

// NewLockedGraph returns a graph holding every candidate and no edges.
func NewLockedGraph(c *Candidates) *LockedGraph {
	g := simple.NewDirectedGraph()
	for i, name := range c.names {
		g.AddNode(candidateNode{id: int64(i), name: name})
	}
	return &LockedGraph{g: g, candidates: c}
}

// Locked reports whether a -> b has been locked in.
func (lg *LockedGraph) Locked(a, b int) bool {
	return lg.g.HasEdgeFromTo(int64(a), int64(b))
}

// Reaches reports whether target can be reached from start by following zero or more locked edges.
func (lg *LockedGraph) Reaches(start, target int) bool {
	visited := make([]bool, lg.candidates.Len())
	stack := []int64{int64(start)}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if id == int64(target) {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true

		to := lg.g.From(id)
		for to.Next() {
			stack = append(stack, to.Node().ID())
		}
	}

	return false
}

// Lock adds pair's edge unless the loser already reaches the winner. It reports whether the edge was added.
func (lg *LockedGraph) Lock(pair Pair) bool {
	if lg.Reaches(pair.Loser, pair.Winner) {
		return false
	}
	lg.g.SetEdge(simple.Edge{F: lg.g.Node(int64(pair.Winner)), T: lg.g.Node(int64(pair.Loser))})
	return true
}

// LockAll locks ranked pairs in order and returns the positions of the pairs that were
// skipped because they would have created a cycle.
func (lg *LockedGraph) LockAll(pairs []Pair) []int {
	var skipped []int
	for i, pair := range pairs {
		winner, loser := lg.candidates.Name(pair.Winner), lg.candidates.Name(pair.Loser)
		if lg.Lock(pair) {
			slog.Debug("locked pair", "winner", winner, "loser", loser, "margin", pair.Margin)
			continue
		}
		slog.Debug("skipped cyclical pair", "winner", winner, "loser", loser, "margin", pair.Margin, "rank", i+1)
		skipped = append(skipped, i)
	}
	return skipped
}

// Winners returns, in ascending order, every candidate that no other candidate has been locked over.
func (lg *LockedGraph) Winners() []int {
	var winners []int
	n := lg.candidates.Len()
	for c := 0; c < n; c++ {
		beaten := false
		for j := 0; j < n; j++ {
			if lg.Locked(j, c) {
				beaten = true
				break
			}
		}
		if !beaten {
			winners = append(winners, c)
		}
	}
	return winners
}

// TSort orders every candidate so that each one comes before everyone it was locked over.
// Candidates the graph leaves unordered are kept in registry order where possible.
func (lg *LockedGraph) TSort() ([]int, error) {
	nodes, err := topo.SortStabilized(lg.g, byID)
	if err != nil {
		return nil, fmt.Errorf("locked graph is not acyclic: %w", err)
	}
	order := make([]int, 0, len(nodes))
	for _, node := range nodes {
		order = append(order, int(node.ID()))
	}
	return order, nil
}

// DOT renders the locked graph in Graphviz format.
func (lg *LockedGraph) DOT() ([]byte, error) {
	return dot.Marshal(lg.g, "Election", "", "  ")
}

func byID(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID() < nodes[j].ID()
	})
}
