package tableau

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/tableau/formula"
)

func TestDiagramRecorderExportDOTContainsLeafOutcome(t *testing.T) {
	rec := NewDiagramRecorder()
	ok, err := New(formula.ExcludedMiddle(), WithSink(rec)).Prove()
	require.NoError(t, err)
	require.True(t, ok)

	dot := rec.ExportDOT()
	assert.Contains(t, dot, "digraph Tableau")
	assert.Contains(t, dot, "X (closed)")
	assert.Contains(t, dot, "->")
}

func TestDiagramRecorderExportMermaidContainsLeafOutcome(t *testing.T) {
	rec := NewDiagramRecorder()
	ok, err := New(formula.Contradiction(), WithSink(rec)).Prove()
	require.NoError(t, err)
	require.False(t, ok)

	mermaid := rec.ExportMermaid()
	assert.Contains(t, mermaid, "graph TD")
	assert.Contains(t, mermaid, "O (open)")
}

func TestDiagramRecorderReportsSaturationRoundsOnOpenLeaf(t *testing.T) {
	rec := NewDiagramRecorder()
	ok, err := New(formula.ExistsNotGeneral(), WithSink(rec)).Prove()
	require.NoError(t, err)
	require.False(t, ok)

	found := false
	for _, n := range rec.nodes {
		if n.leaf && !n.closed && strings.Contains(n.label, "after") {
			found = true
		}
	}
	assert.True(t, found, "expected an open leaf annotated with its saturation round count")
}

func TestMultiSinkFansOutToEveryUnderlyingSink(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriterSink(&buf, false)
	rec := NewDiagramRecorder()
	multi := MultiSink{writer, rec}

	ok, err := New(formula.SelfImplication(), WithSink(multi)).Prove()
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotEmpty(t, buf.String())
	assert.NotEmpty(t, rec.nodes)
}
