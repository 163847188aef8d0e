// Package render exports a staged evolution layout as a Graphviz node-link
// diagram. Stages become ranks laid out left to right; the order of nodes
// inside a stage is preserved.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/gyaneshwarpardhi/evochain/internal/dag"
)

// Options configures DOT output.
type Options struct {
	// Highlight marks one species (usually the viewed one) with a filled node.
	Highlight int
	// Types appends the species types to each node label.
	Types bool
}

// ToDOT converts a layout to Graphviz DOT. Each edge is labelled with its
// own condition text.
func ToDOT(l *dag.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph evolution {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for i, stage := range l.Stages {
		fmt.Fprintf(&buf, "\n  subgraph stage_%d {\n    rank=same;\n", i)
		for _, n := range stage {
			fmt.Fprintf(&buf, "    %q [%s];\n", nodeID(n.Summary.ID), strings.Join(nodeAttrs(n, opts), ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		attrs := ""
		if text := e.ConditionText; text != "" {
			attrs = fmt.Sprintf(" [label=%q]", text)
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", nodeID(e.From), nodeID(e.To), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id int) string {
	return fmt.Sprintf("n%d", id)
}

func nodeAttrs(n dag.RenderNode, opts Options) []string {
	label := n.Summary.Name
	if label == "" {
		label = fmt.Sprintf("#%d", n.Summary.ID)
	}
	if opts.Types && len(n.Summary.Types) > 0 {
		label += "\n" + strings.Join(n.Summary.Types, " / ")
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if opts.Highlight != 0 && n.Summary.ID == opts.Highlight {
		attrs = append(attrs, "fillcolor=lightyellow", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
