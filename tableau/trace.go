package tableau

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Sink receives the prover's expansion trace (spec.md §4.7). Step is
// called once per recursive prove() invocation with the branch's
// current state; Leaf is called once a branch's fate (closed or open)
// is decided, at depth one deeper than the state that produced it.
// rounds carries the γ-saturation round count for a genuine
// fixed-point open leaf (SPEC_FULL.md's round diagnostic); it is -1 for
// a closed leaf or for the extra leaf marker a β-split emits after each
// sub-branch it explores returns, on top of that sub-branch's own leaf.
// Tests that don't care about trace output pass NopSink.
type Sink interface {
	Step(depth int, b *Branch)
	Leaf(depth int, closed bool, rounds int)
}

// NopSink discards the trace entirely.
type NopSink struct{}

func (NopSink) Step(int, *Branch)   {}
func (NopSink) Leaf(int, bool, int) {}

// WriterSink renders the trace as indented text to an io.Writer, one
// line per branch state and one line per leaf, matching the shape the
// teacher's diagram generators print with (tab-indented
// strings.Builder lines — see kripke/diagrams.go). Closed/open
// markers and signs are colorized with github.com/fatih/color when
// the destination looks like a terminal; coloring can be forced on or
// off regardless of that detection.
type WriterSink struct {
	w        io.Writer
	useColor bool
}

// NewWriterSink builds a Sink writing to w. useColor selects whether
// ANSI coloring is used; pass ColorAuto(w) to decide from the
// destination's terminal-ness, matching the gating pattern of
// signadot-tony-format's go-tony/cmd/o/configs.go.
func NewWriterSink(w io.Writer, useColor bool) *WriterSink {
	return &WriterSink{w: w, useColor: useColor}
}

// ColorAuto reports whether w looks like an interactive terminal, the
// same file-descriptor check signadot-tony-format performs with
// mattn/go-isatty before deciding to colorize.
func ColorAuto(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *WriterSink) Step(depth int, b *Branch) {
	fmt.Fprintf(s.w, "%s%s\n", strings.Repeat("\t", depth), s.renderBranch(b))
}

func (s *WriterSink) Leaf(depth int, closed bool, rounds int) {
	mark := "O"
	paint := color.New(color.FgGreen)
	if closed {
		mark = "X"
		paint = color.New(color.FgRed)
	}
	if s.useColor {
		paint.EnableColor()
		mark = paint.Sprint(mark)
	}
	suffix := ""
	if !closed && rounds >= 0 {
		suffix = fmt.Sprintf(" (after %d round%s)", rounds, plural(rounds))
	}
	fmt.Fprintf(s.w, "%s%s%s\n", strings.Repeat("\t", depth), mark, suffix)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func (s *WriterSink) renderBranch(b *Branch) string {
	parts := make([]string, len(b.Formulas()))
	for i, sf := range b.Formulas() {
		parts[i] = s.renderSigned(sf)
	}
	return fmt.Sprintf("[%s], constants=%s", strings.Join(parts, ", "), strings.Join(b.Constants(), ","))
}

func (s *WriterSink) renderSigned(sf SignedFormula) string {
	if !s.useColor {
		return sf.String()
	}
	signColor := color.New(color.FgBlue)
	if sf.Sign == F {
		signColor = color.New(color.FgYellow)
	}
	signColor.EnableColor()
	return fmt.Sprintf("%s (%s)", signColor.Sprint(sf.Sign.String()), sf.F.String())
}
