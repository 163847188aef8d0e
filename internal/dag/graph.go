package dag

import (
	"fmt"

	"github.com/gyaneshwarpardhi/evochain/internal/condition"
	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

// Edge is a normalized "From evolves into To" relation.
type Edge struct {
	From int
	To   int
	Cond condition.Condition
}

// Graph is an arena of species ids with children and parent indexes.
// It is built once per resolution and not modified afterwards.
type Graph struct {
	edges     []Edge
	children  map[int][]Edge // from id → outgoing edges, insertion order
	parent    map[int]int    // to id → from id, last edge wins
	ids       []int          // every from/to id in first-appearance order
	seen      map[int]struct{}
	summaries map[int]species.Summary
}

// NewGraph allocates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		children:  make(map[int][]Edge),
		parent:    make(map[int]int),
		seen:      make(map[int]struct{}),
		summaries: make(map[int]species.Summary),
	}
}

// AddEdge records e. Edges with a non-positive endpoint are ignored. A second
// edge into the same target replaces the recorded parent.
func (g *Graph) AddEdge(e Edge) {
	if e.From <= 0 || e.To <= 0 {
		return
	}
	g.edges = append(g.edges, e)
	g.children[e.From] = append(g.children[e.From], e)
	g.parent[e.To] = e.From
	g.track(e.From)
	g.track(e.To)
}

func (g *Graph) track(id int) {
	if _, ok := g.seen[id]; ok {
		return
	}
	g.seen[id] = struct{}{}
	g.ids = append(g.ids, id)
}

// AddSummary registers display data for a species; later calls win.
func (g *Graph) AddSummary(s species.Summary) {
	if s.ID <= 0 {
		return
	}
	g.summaries[s.ID] = s
}

// Children returns the outgoing edges of id in insertion order.
func (g *Graph) Children(id int) []Edge {
	return g.children[id]
}

// Parent returns the recorded parent of id.
func (g *Graph) Parent(id int) (int, bool) {
	p, ok := g.parent[id]
	return p, ok
}

// IDs returns every node id in first-appearance order.
func (g *Graph) IDs() []int {
	return g.ids
}

// Edges returns all accepted edges in input order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// EdgeBetween returns the first edge from → to.
func (g *Graph) EdgeBetween(from, to int) (Edge, bool) {
	for _, e := range g.children[from] {
		if e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}

// NodeCount returns the number of distinct ids.
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// Summary returns the display data known for id, or a placeholder named
// after the id.
func (g *Graph) Summary(id int) species.Summary {
	if s, ok := g.summaries[id]; ok {
		if s.Types == nil {
			s.Types = []string{}
		}
		return s
	}
	return species.Summary{ID: id, Name: fmt.Sprintf("#%d", id), Types: []string{}}
}
