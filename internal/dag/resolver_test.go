package dag_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gyaneshwarpardhi/evochain/internal/condition"
	"github.com/gyaneshwarpardhi/evochain/internal/dag"
	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

func intp(v int) *int { return &v }

func levelEdge(from, to, level int) species.EdgeRecord {
	return species.EdgeRecord{
		From:   from,
		To:     to,
		Fields: species.Fields{Trigger: "level-up", MinLevel: intp(level)},
	}
}

func summary(id int, name string) *species.Summary {
	return &species.Summary{ID: id, Name: name, ImageURL: name + ".png", Types: []string{"grass"}}
}

func describer() *condition.Describer {
	return condition.NewDescriber(nil)
}

func TestResolve_UseItemScenario(t *testing.T) {
	d := &species.Detail{
		ID:   2,
		Name: "ninetales",
		EvolutionEdges: []species.EdgeRecord{
			{From: 1, To: 2, Fields: species.Fields{Trigger: "use-item", Item: "fire-stone"}},
		},
	}
	c := dag.Resolve(d, describer())

	if c.Root.ID != 1 {
		t.Errorf("expected root 1, got %d", c.Root.ID)
	}
	if c.Shape != dag.ShapeLinear {
		t.Fatalf("expected linear, got %s", c.Shape)
	}
	if len(c.LinearSteps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(c.LinearSteps))
	}
	step := c.LinearSteps[0]
	if step.Summary.ID != 2 || step.Summary.Name != "ninetales" {
		t.Errorf("unexpected step node %+v", step.Summary)
	}
	if !strings.Contains(step.ConditionText, "Fire Stone") {
		t.Errorf("expected fire stone in %q", step.ConditionText)
	}
}

func TestResolve_LinearChainOrder(t *testing.T) {
	// 5-node chain delivered out of order.
	d := &species.Detail{
		ID: 3,
		EvolutionEdges: []species.EdgeRecord{
			levelEdge(3, 4, 30),
			levelEdge(1, 2, 10),
			levelEdge(4, 5, 40),
			levelEdge(2, 3, 20),
		},
	}
	c := dag.Resolve(d, describer())

	if c.Root.ID != 1 {
		t.Fatalf("expected root 1, got %d", c.Root.ID)
	}
	if c.Shape != dag.ShapeLinear {
		t.Fatalf("expected linear, got %s", c.Shape)
	}
	if len(c.LinearSteps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(c.LinearSteps))
	}
	for i, want := range []struct {
		id   int
		text string
	}{{2, "Lv 10"}, {3, "Lv 20"}, {4, "Lv 30"}, {5, "Lv 40"}} {
		got := c.LinearSteps[i]
		if got.Summary.ID != want.id || got.ConditionText != want.text {
			t.Errorf("step %d: expected (%d, %q), got (%d, %q)", i, want.id, want.text, got.Summary.ID, got.ConditionText)
		}
	}
	if c.Truncated || len(c.Stages) != 0 {
		t.Errorf("plain chain should not be truncated or staged")
	}
}

func TestResolve_BranchingRowsShareRoot(t *testing.T) {
	d := &species.Detail{
		ID:   1,
		Name: "eevee",
		EvolutionEdges: []species.EdgeRecord{
			{From: 1, To: 2, ToSummary: summary(2, "vaporeon")},
			{From: 1, To: 3, ToSummary: summary(3, "jolteon")},
		},
	}
	c := dag.Resolve(d, describer())

	if c.Shape != dag.ShapeBranching {
		t.Fatalf("expected branching, got %s", c.Shape)
	}
	if len(c.BranchRows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(c.BranchRows))
	}
	if c.BranchRows[0].Child.Summary.ID != 2 || c.BranchRows[1].Child.Summary.ID != 3 {
		t.Errorf("unexpected row order: %+v", c.BranchRows)
	}
	for i, r := range c.BranchRows {
		if r.Root != c.Root {
			t.Errorf("row %d does not reuse the root summary", i)
		}
		if r.Child.ConditionText != "" {
			t.Errorf("row %d: expected no condition text, got %q", i, r.Child.ConditionText)
		}
	}
	if c.Root.Name != "eevee" {
		t.Errorf("expected root to use the viewed species data, got %q", c.Root.Name)
	}
	if len(c.Stages) != 0 {
		t.Errorf("shallow branching should not be staged")
	}
}

func TestResolve_Terminal(t *testing.T) {
	cases := []struct {
		name string
		d    *species.Detail
	}{
		{name: "no data", d: &species.Detail{ID: 128}},
		{name: "leaf root", d: &species.Detail{ID: 9, EvolutionEdges: []species.EdgeRecord{{From: 9, To: 0}}}},
		{
			name: "cycle without root",
			d: &species.Detail{ID: 1, EvolutionEdges: []species.EdgeRecord{
				{From: 1, To: 2}, {From: 2, To: 1},
			}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := dag.Resolve(tc.d, describer())
			if c.Shape != dag.ShapeTerminal {
				t.Errorf("expected terminal, got %s", c.Shape)
			}
			if len(c.LinearSteps)+len(c.BranchRows)+len(c.Stages) != 0 {
				t.Errorf("expected no steps, rows or stages: %+v", c)
			}
			if c.Root == nil || c.Root.ID != tc.d.ID {
				t.Errorf("expected root to fall back to the viewed species")
			}
		})
	}
}

func TestLinearPath_CycleTerminates(t *testing.T) {
	g := dag.NewGraph()
	g.AddEdge(dag.Edge{From: 1, To: 2})
	g.AddEdge(dag.Edge{From: 2, To: 1})

	steps, truncated := dag.LinearPath(g, 1, describer())
	if !truncated {
		t.Errorf("expected truncated walk")
	}
	// The root counts toward the cap.
	if len(steps) != dag.MaxWalkSteps-1 {
		t.Errorf("expected %d steps, got %d", dag.MaxWalkSteps-1, len(steps))
	}
	if steps[0].Summary.ID != 2 || steps[len(steps)-1].Summary.ID != 1 {
		t.Errorf("unexpected walk ends %d..%d", steps[0].Summary.ID, steps[len(steps)-1].Summary.ID)
	}
}

func TestLinearPath_LongChainAtCap(t *testing.T) {
	g := dag.NewGraph()
	for i := 1; i < dag.MaxWalkSteps; i++ {
		g.AddEdge(dag.Edge{From: i, To: i + 1})
	}
	// MaxWalkSteps nodes in total: the whole chain fits and ends at a leaf.
	steps, truncated := dag.LinearPath(g, 1, describer())
	if truncated || len(steps) != dag.MaxWalkSteps-1 {
		t.Errorf("expected %d steps untruncated, got %d (truncated=%v)", dag.MaxWalkSteps-1, len(steps), truncated)
	}

	g.AddEdge(dag.Edge{From: dag.MaxWalkSteps, To: dag.MaxWalkSteps + 1})
	steps, truncated = dag.LinearPath(g, 1, describer())
	if !truncated || len(steps) != dag.MaxWalkSteps-1 {
		t.Errorf("expected %d steps truncated, got %d (truncated=%v)", dag.MaxWalkSteps-1, len(steps), truncated)
	}
}

func TestLinearPath_StopsAtBranch(t *testing.T) {
	g := dag.NewGraph()
	g.AddEdge(dag.Edge{From: 1, To: 2})
	g.AddEdge(dag.Edge{From: 2, To: 3})
	g.AddEdge(dag.Edge{From: 2, To: 4})

	steps, truncated := dag.LinearPath(g, 1, describer())
	if truncated || len(steps) != 1 || steps[0].Summary.ID != 2 {
		t.Errorf("expected single step to 2, got %+v (truncated=%v)", steps, truncated)
	}
}

func TestStage_CycleAndDiamond(t *testing.T) {
	g := dag.NewGraph()
	g.AddEdge(dag.Edge{From: 1, To: 2})
	g.AddEdge(dag.Edge{From: 1, To: 3})
	g.AddEdge(dag.Edge{From: 2, To: 4})
	g.AddEdge(dag.Edge{From: 3, To: 4})
	g.AddEdge(dag.Edge{From: 4, To: 1})

	l := dag.Stage(g, 1, describer())
	if len(l.Stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(l.Stages))
	}
	ids := func(stage []dag.RenderNode) []int {
		out := make([]int, len(stage))
		for i, n := range stage {
			out[i] = n.Summary.ID
		}
		return out
	}
	want := [][]int{{1}, {2, 3}, {4}}
	for i := range want {
		if !reflect.DeepEqual(ids(l.Stages[i]), want[i]) {
			t.Errorf("stage %d: expected %v, got %v", i, want[i], ids(l.Stages[i]))
		}
	}
	if len(l.Edges) != 5 {
		t.Errorf("expected all 5 edges drawable, got %d", len(l.Edges))
	}
	if l.Truncated {
		t.Errorf("small graph should not be truncated")
	}
}

func TestStage_DiamondEdgesKeepOwnConditions(t *testing.T) {
	g := dag.NewGraph()
	g.AddEdge(dag.Edge{From: 1, To: 2, Cond: &condition.LevelUp{MinLevel: intp(10)}})
	g.AddEdge(dag.Edge{From: 1, To: 3, Cond: &condition.LevelUp{MinLevel: intp(20)}})
	g.AddEdge(dag.Edge{From: 2, To: 4, Cond: &condition.UseItem{Item: "fire-stone"}})
	g.AddEdge(dag.Edge{From: 3, To: 4, Cond: &condition.Trade{}})

	l := dag.Stage(g, 1, describer())
	want := []dag.DrawEdge{
		{From: 1, To: 2, ConditionText: "Lv 10"},
		{From: 1, To: 3, ConditionText: "Lv 20"},
		{From: 2, To: 4, ConditionText: "Use item: Fire Stone"},
		{From: 3, To: 4, ConditionText: "Trade"},
	}
	if !reflect.DeepEqual(l.Edges, want) {
		t.Errorf("expected %v, got %v", want, l.Edges)
	}
	// The node label still follows the last recorded parent.
	if got := l.Stages[2][0].ConditionText; got != "Trade" {
		t.Errorf("unexpected node text %q", got)
	}
}

func TestStage_CapsPlacedNodes(t *testing.T) {
	g := dag.NewGraph()
	for i := 2; i <= dag.MaxWalkSteps+50; i++ {
		g.AddEdge(dag.Edge{From: 1, To: i})
	}
	l := dag.Stage(g, 1, describer())
	placed := 0
	for _, s := range l.Stages {
		placed += len(s)
	}
	if placed != dag.MaxWalkSteps || !l.Truncated {
		t.Errorf("expected %d placed and truncated, got %d (truncated=%v)", dag.MaxWalkSteps, placed, l.Truncated)
	}
	if len(l.Edges) != dag.MaxWalkSteps-1 {
		t.Errorf("expected edges restricted to placed nodes, got %d", len(l.Edges))
	}
}

func TestResolve_DeepTreeIsStaged(t *testing.T) {
	// 1 → 2 → {3, 4}: linear at the root, forks one generation later.
	d := &species.Detail{
		ID: 1,
		EvolutionEdges: []species.EdgeRecord{
			levelEdge(1, 2, 7),
			{From: 2, To: 3, Fields: species.Fields{Trigger: "level-up", MinLevel: intp(10), Gender: intp(1)}},
			{From: 2, To: 4, Fields: species.Fields{Trigger: "level-up", MinLevel: intp(10), Gender: intp(2)}},
		},
	}
	c := dag.Resolve(d, describer())

	if c.Shape != dag.ShapeLinear {
		t.Fatalf("expected linear, got %s", c.Shape)
	}
	if len(c.LinearSteps) != 1 {
		t.Errorf("expected walk to stop at the fork, got %d steps", len(c.LinearSteps))
	}
	if len(c.Stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(c.Stages))
	}
	if got := c.Stages[2][0].ConditionText; got != "Lv 10 • Female only" {
		t.Errorf("unexpected stage text %q", got)
	}
	if len(c.EdgesForDrawing) != 3 {
		t.Errorf("expected 3 drawable edges, got %d", len(c.EdgesForDrawing))
	}
}

func TestResolve_Idempotent(t *testing.T) {
	d := &species.Detail{
		ID: 1,
		EvolutionEdges: []species.EdgeRecord{
			levelEdge(1, 2, 16),
			levelEdge(2, 3, 36),
			{From: 3, To: 4, Fields: species.Fields{Trigger: "trade", HeldItem: "metal-coat"}},
			{From: 3, To: 5, Fields: species.Fields{Trigger: "shed"}},
		},
	}
	desc := describer()
	a := dag.Resolve(d, desc)
	b := dag.Resolve(d, desc)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("resolving twice gave different results:\n%+v\n%+v", a, b)
	}
}

func TestLegacy(t *testing.T) {
	entry := func(id int, name string) species.LegacyEntry {
		return species.LegacyEntry{ID: id, Name: name, Fields: species.Fields{Trigger: "level-up", MinLevel: intp(id * 10)}}
	}

	cases := []struct {
		name    string
		entries []species.LegacyEntry
		shape   dag.Shape
		count   int
	}{
		{name: "empty", shape: dag.ShapeTerminal},
		{name: "only self", entries: []species.LegacyEntry{entry(1, "self")}, shape: dag.ShapeTerminal},
		{name: "single", entries: []species.LegacyEntry{entry(2, "a")}, shape: dag.ShapeLinear, count: 1},
		{name: "several", entries: []species.LegacyEntry{entry(2, "a"), entry(1, "self"), entry(3, "b")}, shape: dag.ShapeBranching, count: 2},
		{name: "missing ids dropped", entries: []species.LegacyEntry{{Name: "ghost"}, entry(2, "a"), entry(-4, "neg")}, shape: dag.ShapeLinear, count: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &species.Detail{ID: 1, Name: "root", LegacyEvolutions: tc.entries}
			c := dag.Resolve(d, describer())
			if c.Shape != tc.shape {
				t.Fatalf("expected %s, got %s", tc.shape, c.Shape)
			}
			if c.Root.ID != 1 {
				t.Errorf("legacy root must be the viewed species")
			}
			switch tc.shape {
			case dag.ShapeLinear:
				if len(c.LinearSteps) != tc.count || c.LinearSteps[0].ConditionText != "Lv 20" {
					t.Errorf("unexpected steps %+v", c.LinearSteps)
				}
			case dag.ShapeBranching:
				if len(c.BranchRows) != tc.count {
					t.Errorf("expected %d rows, got %d", tc.count, len(c.BranchRows))
				}
				for _, r := range c.BranchRows {
					if r.Root != c.Root {
						t.Errorf("row does not share root")
					}
				}
			}
		})
	}
}

func TestChainLayout(t *testing.T) {
	d := &species.Detail{
		ID:             1,
		EvolutionEdges: []species.EdgeRecord{levelEdge(1, 2, 16), levelEdge(2, 3, 32)},
	}
	l := dag.Resolve(d, describer()).Layout()
	if len(l.Stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(l.Stages))
	}
	want := []dag.DrawEdge{{From: 1, To: 2, ConditionText: "Lv 16"}, {From: 2, To: 3, ConditionText: "Lv 32"}}
	if !reflect.DeepEqual(l.Edges, want) {
		t.Errorf("expected %v, got %v", want, l.Edges)
	}
}
