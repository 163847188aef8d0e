package dag

import "github.com/gyaneshwarpardhi/evochain/internal/species"

// Shape discriminates how a family is rendered.
type Shape string

const (
	ShapeTerminal  Shape = "terminal"
	ShapeLinear    Shape = "linear"
	ShapeBranching Shape = "branching"
)

// Chain is the render-ready structure for one detail view.
type Chain struct {
	Root            *species.Summary `json:"root"`
	Shape           Shape            `json:"shape"`
	LinearSteps     []RenderNode     `json:"linearSteps,omitempty"`
	BranchRows      []Row            `json:"branchRows,omitempty"`
	Stages          [][]RenderNode   `json:"stages,omitempty"`
	EdgesForDrawing []DrawEdge       `json:"edgesForDrawing,omitempty"`
	Truncated       bool             `json:"truncated,omitempty"`
}

// Resolve turns a detail view into a Chain. It never fails: malformed or
// cyclic input yields a terminal or truncated chain. Edge records win over
// the legacy list when both are present.
func Resolve(d *species.Detail, desc Describer) *Chain {
	if len(d.EvolutionEdges) == 0 {
		return Legacy(d, desc)
	}

	g := Build(d)
	rootID, ok := g.Root(d.ID)
	if !ok {
		return terminal(d.Summary())
	}
	root := g.Summary(rootID)
	chain := &Chain{Root: &root, Shape: g.Classify(rootID)}

	switch chain.Shape {
	case ShapeTerminal:
		return chain
	case ShapeLinear:
		chain.LinearSteps, chain.Truncated = LinearPath(g, rootID, desc)
	case ShapeBranching:
		chain.BranchRows = Rows(g, chain.Root, desc)
		if len(chain.BranchRows) == 0 {
			return terminal(root)
		}
	}

	// Families that fork below the first generation also get a staged
	// layout so the whole tree can be drawn.
	if l := Stage(g, rootID, desc); len(l.Stages) > 2 && l.forks(g) {
		chain.Stages = l.Stages
		chain.EdgesForDrawing = l.Edges
		chain.Truncated = chain.Truncated || l.Truncated
	}
	return chain
}

// Legacy adapts the flat "next species" list of d, rooted at d itself.
// Entries pointing back at d or without a usable id are dropped. One entry renders as a linear
// chain, several as rows.
func Legacy(d *species.Detail, desc Describer) *Chain {
	root := d.Summary()
	chain := &Chain{Root: &root, Shape: ShapeTerminal}

	var nodes []RenderNode
	for i := range d.LegacyEvolutions {
		e := &d.LegacyEvolutions[i]
		if e.ID <= 0 || e.ID == d.ID {
			continue
		}
		nodes = append(nodes, RenderNode{
			Summary:       e.Summary(),
			ConditionText: desc.Describe(e.Condition()),
		})
	}

	switch len(nodes) {
	case 0:
	case 1:
		chain.Shape = ShapeLinear
		chain.LinearSteps = nodes
	default:
		chain.Shape = ShapeBranching
		chain.BranchRows = make([]Row, 0, len(nodes))
		for _, n := range nodes {
			chain.BranchRows = append(chain.BranchRows, Row{Root: chain.Root, Child: n})
		}
	}
	return chain
}

func terminal(root species.Summary) *Chain {
	return &Chain{Root: &root, Shape: ShapeTerminal}
}

// Layout returns a staged view of c suitable for drawing. Chains that
// already carry stages return them; linear chains place one node per stage
// and rows place every child in the second stage.
func (c *Chain) Layout() *Layout {
	if len(c.Stages) > 0 {
		return &Layout{Stages: c.Stages, Edges: c.EdgesForDrawing, Truncated: c.Truncated}
	}
	l := &Layout{
		Stages:    [][]RenderNode{{{Summary: *c.Root}}},
		Truncated: c.Truncated,
	}
	switch c.Shape {
	case ShapeLinear:
		prev := c.Root.ID
		for _, n := range c.LinearSteps {
			l.Stages = append(l.Stages, []RenderNode{n})
			l.Edges = append(l.Edges, DrawEdge{From: prev, To: n.Summary.ID, ConditionText: n.ConditionText})
			prev = n.Summary.ID
		}
	case ShapeBranching:
		stage := make([]RenderNode, 0, len(c.BranchRows))
		for _, r := range c.BranchRows {
			stage = append(stage, r.Child)
			l.Edges = append(l.Edges, DrawEdge{From: c.Root.ID, To: r.Child.Summary.ID, ConditionText: r.Child.ConditionText})
		}
		l.Stages = append(l.Stages, stage)
	}
	return l
}
