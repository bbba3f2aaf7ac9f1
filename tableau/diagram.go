package tableau

import (
	"fmt"
	"strings"
)

// DiagramRecorder is a Sink that, alongside whatever other sink is in
// use, rebuilds the shape of the expansion tree from the same
// Step/Leaf call sequence the prover already emits, then renders it as
// Graphviz DOT or Mermaid. Adapted from the teacher's two diagram
// generators — root-level graphviz.go (Kripke structure → DOT) and
// kripke/diagrams.go (→ Mermaid stateDiagram-v2) — which both walk a
// graph-shaped structure and build a strings.Builder line by line;
// here the graph being walked is the tableau's own branch tree instead
// of a Kripke structure.
type DiagramRecorder struct {
	nodes []diagramNode
	edges []diagramEdge
	stack []int
}

type diagramNode struct {
	id     int
	label  string
	leaf   bool
	closed bool
}

type diagramEdge struct {
	from, to int
}

// NewDiagramRecorder builds an empty recorder. Pass it as a Sink (or
// combine it with another Sink via MultiSink) to capture a prove run.
func NewDiagramRecorder() *DiagramRecorder {
	return &DiagramRecorder{}
}

func (r *DiagramRecorder) Step(depth int, b *Branch) {
	r.truncate(depth)
	id := len(r.nodes)
	r.nodes = append(r.nodes, diagramNode{id: id, label: plainBranch(b)})
	r.link(depth, id)
	r.stack = append(r.stack, id)
}

func (r *DiagramRecorder) Leaf(depth int, closed bool, rounds int) {
	r.truncate(depth)
	id := len(r.nodes)
	label := "O (open)"
	if !closed && rounds >= 0 {
		label = fmt.Sprintf("O (open, after %d rounds)", rounds)
	}
	if closed {
		label = "X (closed)"
	}
	r.nodes = append(r.nodes, diagramNode{id: id, label: label, leaf: true, closed: closed})
	r.link(depth, id)
}

func (r *DiagramRecorder) truncate(depth int) {
	if depth < len(r.stack) {
		r.stack = r.stack[:depth]
	}
}

func (r *DiagramRecorder) link(depth, id int) {
	if depth == 0 {
		return
	}
	parent := r.stack[depth-1]
	r.edges = append(r.edges, diagramEdge{from: parent, to: id})
}

func plainBranch(b *Branch) string {
	parts := make([]string, len(b.Formulas()))
	for i, sf := range b.Formulas() {
		parts[i] = sf.String()
	}
	return strings.Join(parts, ", ")
}

// ExportDOT renders the recorded tree as a Graphviz digraph, one node
// per branch state plus one leaf node per closed/open outcome.
func (r *DiagramRecorder) ExportDOT() string {
	var sb strings.Builder
	sb.WriteString("digraph Tableau {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, fontname=monospace];\n\n")

	for _, n := range r.nodes {
		shape := "box"
		color := "black"
		if n.leaf {
			shape = "ellipse"
			color = "red"
			if !n.closed {
				color = "darkgreen"
			}
		}
		sb.WriteString(fmt.Sprintf("  n%d [label=%q, shape=%s, color=%s];\n", n.id, n.label, shape, color))
	}
	sb.WriteString("\n")
	for _, e := range r.edges {
		sb.WriteString(fmt.Sprintf("  n%d -> n%d;\n", e.from, e.to))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ExportMermaid renders the recorded tree as a Mermaid `graph TD`
// flowchart, mirroring the string-building shape of
// kripke/diagrams.go's GenerateStateDiagram.
func (r *DiagramRecorder) ExportMermaid() string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, n := range r.nodes {
		label := strings.ReplaceAll(n.label, "\"", "'")
		if n.leaf {
			sb.WriteString(fmt.Sprintf("    n%d([%s])\n", n.id, label))
		} else {
			sb.WriteString(fmt.Sprintf("    n%d[%q]\n", n.id, label))
		}
	}
	for _, e := range r.edges {
		sb.WriteString(fmt.Sprintf("    n%d --> n%d\n", e.from, e.to))
	}
	return sb.String()
}

// MultiSink fans Step/Leaf out to every underlying Sink, so a prove
// call can write human trace text and feed a DiagramRecorder at once.
type MultiSink []Sink

func (m MultiSink) Step(depth int, b *Branch) {
	for _, s := range m {
		s.Step(depth, b)
	}
}

func (m MultiSink) Leaf(depth int, closed bool, rounds int) {
	for _, s := range m {
		s.Leaf(depth, closed, rounds)
	}
}
