package dag

import "github.com/gyaneshwarpardhi/evochain/internal/species"

// Build normalizes the edge records of a detail view into a Graph.
// Conditions are converted to their tagged form here, once per call.
func Build(d *species.Detail) *Graph {
	g := NewGraph()
	for i := range d.EvolutionEdges {
		rec := &d.EvolutionEdges[i]
		g.AddEdge(Edge{From: rec.From, To: rec.To, Cond: rec.Condition()})
		if rec.FromSummary != nil {
			g.AddSummary(*rec.FromSummary)
		}
		if rec.ToSummary != nil {
			g.AddSummary(*rec.ToSummary)
		}
	}
	// The viewed species always renders with its own data.
	g.AddSummary(d.Summary())
	return g
}
