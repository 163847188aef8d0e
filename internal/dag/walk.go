package dag

import (
	"github.com/gyaneshwarpardhi/evochain/internal/condition"
	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

// MaxWalkSteps bounds the number of nodes, root included, visited by the
// linear walk and placed by the staged layout, so cyclic input always
// terminates.
const MaxWalkSteps = 200

// Describer renders a condition as a label.
type Describer interface {
	Describe(c condition.Condition) string
}

// RenderNode is one species as handed to the rendering layer, with the
// label of the edge that leads into it.
type RenderNode struct {
	Summary       species.Summary `json:"summary"`
	ConditionText string          `json:"incomingConditionText,omitempty"`
}

// Row pairs the shared root with one of its direct children.
type Row struct {
	Root  *species.Summary `json:"-"`
	Child RenderNode       `json:"child"`
}

// LinearPath follows single-child links from root and returns one node per
// edge taken, in chain order. The walk stops at a leaf, at a node with more
// than one child, or once MaxWalkSteps nodes (the root plus MaxWalkSteps-1
// steps) have been visited; truncated reports the latter.
func LinearPath(g *Graph, root int, desc Describer) (steps []RenderNode, truncated bool) {
	curr := root
	for visited := 1; ; visited++ {
		kids := g.Children(curr)
		if len(kids) != 1 {
			return steps, false
		}
		if visited >= MaxWalkSteps {
			return steps, true
		}
		e := kids[0]
		steps = append(steps, RenderNode{
			Summary:       g.Summary(e.To),
			ConditionText: desc.Describe(e.Cond),
		})
		curr = e.To
	}
}

// Rows enumerates root's direct children as independent rows. Self edges
// are skipped. Every row points at the same root summary.
func Rows(g *Graph, root *species.Summary, desc Describer) []Row {
	kids := g.Children(root.ID)
	rows := make([]Row, 0, len(kids))
	for _, e := range kids {
		if e.To == root.ID {
			continue
		}
		rows = append(rows, Row{
			Root: root,
			Child: RenderNode{
				Summary:       g.Summary(e.To),
				ConditionText: desc.Describe(e.Cond),
			},
		})
	}
	return rows
}
