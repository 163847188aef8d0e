package dag

// DrawEdge is a connection between two placed nodes, labelled with the
// condition of that edge.
type DrawEdge struct {
	From          int    `json:"from"`
	To            int    `json:"to"`
	ConditionText string `json:"conditionText,omitempty"`
}

// Layout is a staged placement of a family: Stages[i] holds the nodes at BFS
// distance i from the root, in discovery order.
type Layout struct {
	Stages    [][]RenderNode
	Edges     []DrawEdge
	Truncated bool
}

// Stage places every node reachable from root into stages by breadth-first
// distance. A node is placed at most once, and at most MaxWalkSteps nodes
// are placed in total. Edges lists the input edges whose endpoints were
// both placed, in input order.
func Stage(g *Graph, root int, desc Describer) *Layout {
	placed := map[int]struct{}{root: {}}
	var stageIDs [][]int
	truncated := false

	frontier := []int{root}
	for len(frontier) > 0 {
		stageIDs = append(stageIDs, frontier)
		var next []int
		for _, id := range frontier {
			for _, e := range g.Children(id) {
				if _, ok := placed[e.To]; ok {
					continue
				}
				if len(placed) >= MaxWalkSteps {
					truncated = true
					continue
				}
				placed[e.To] = struct{}{}
				next = append(next, e.To)
			}
		}
		frontier = next
	}

	l := &Layout{Truncated: truncated, Stages: make([][]RenderNode, 0, len(stageIDs))}
	for _, ids := range stageIDs {
		stage := make([]RenderNode, 0, len(ids))
		for _, id := range ids {
			stage = append(stage, RenderNode{
				Summary:       g.Summary(id),
				ConditionText: incomingText(g, root, id, desc),
			})
		}
		l.Stages = append(l.Stages, stage)
	}
	for _, e := range g.Edges() {
		_, fromOK := placed[e.From]
		_, toOK := placed[e.To]
		if fromOK && toOK {
			l.Edges = append(l.Edges, DrawEdge{From: e.From, To: e.To, ConditionText: desc.Describe(e.Cond)})
		}
	}
	return l
}

// incomingText labels id with the edge from its recorded parent.
func incomingText(g *Graph, root, id int, desc Describer) string {
	if id == root {
		return ""
	}
	p, ok := g.Parent(id)
	if !ok {
		return ""
	}
	e, ok := g.EdgeBetween(p, id)
	if !ok {
		return ""
	}
	return desc.Describe(e.Cond)
}

// forks reports whether any node placed in l has more than one child.
func (l *Layout) forks(g *Graph) bool {
	for _, stage := range l.Stages {
		for _, n := range stage {
			if len(g.Children(n.Summary.ID)) > 1 {
				return true
			}
		}
	}
	return false
}
