package dag

// Root resolves the family root for the viewed species. The candidate is the
// root when it has no recorded parent; otherwise the first id, in edge order,
// without a parent is used. ok is false when every node has a parent.
func (g *Graph) Root(candidate int) (root int, ok bool) {
	if candidate > 0 {
		if _, hasParent := g.parent[candidate]; !hasParent {
			return candidate, true
		}
	}
	for _, id := range g.ids {
		if _, hasParent := g.parent[id]; !hasParent {
			return id, true
		}
	}
	return 0, false
}

// Classify reports the shape of the family as seen from root. Only the
// root's direct children are inspected.
func (g *Graph) Classify(root int) Shape {
	switch n := len(g.children[root]); {
	case n == 0:
		return ShapeTerminal
	case n == 1:
		return ShapeLinear
	default:
		return ShapeBranching
	}
}
