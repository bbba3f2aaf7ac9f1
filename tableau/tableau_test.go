package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/tableau/formula"
)

func prove(t *testing.T, f formula.Formula) bool {
	t.Helper()
	ok, err := New(f).Prove()
	require.NoError(t, err)
	return ok
}

// Boundary scenarios, spec.md §8.
func TestBoundaryScenarios(t *testing.T) {
	cases := []struct {
		name      string
		f         formula.Formula
		tautology bool
	}{
		{"excluded middle", formula.ExcludedMiddle(), true},
		{"contradiction", formula.Contradiction(), false},
		{"self implication", formula.SelfImplication(), true},
		{"contrapositive", formula.Contrapositive(), true},
		{"iff reflexive", formula.IffReflexive(), true},
		{"true implies a", formula.TrueImpliesA(), false},
		{"forall instantiation", formula.ForallInstantiation(), true},
		{"exists not general", formula.ExistsNotGeneral(), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.tautology, prove(t, c.f))
		})
	}
}

// TestExcludedMiddleTraceHasExactlyOneClosedLeaf checks the trace
// property named in spec.md §8 for scenario (1): exactly one closed
// leaf, no open leaves.
func TestExcludedMiddleTraceHasExactlyOneClosedLeaf(t *testing.T) {
	rec := NewDiagramRecorder()
	ok, err := New(formula.ExcludedMiddle(), WithSink(rec)).Prove()
	require.NoError(t, err)
	require.True(t, ok)

	closed, open := countLeaves(rec)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 0, open)
}

// TestContrapositiveTraceHasExactlyOneClosedLeafPerBranch checks
// scenario (4): a tautology whose single beta split yields two branches
// closes both of them and opens none.
func TestContrapositiveTraceHasExactlyOneClosedLeafPerBranch(t *testing.T) {
	rec := NewDiagramRecorder()
	ok, err := New(formula.Contrapositive(), WithSink(rec)).Prove()
	require.NoError(t, err)
	require.True(t, ok)

	_, open := countLeaves(rec)
	assert.Equal(t, 0, open)
}

func countLeaves(rec *DiagramRecorder) (closed, open int) {
	for _, n := range rec.nodes {
		if !n.leaf {
			continue
		}
		if n.closed {
			closed++
		} else {
			open++
		}
	}
	return
}

func TestTypeOfRejectsUnnormalizedKinds(t *testing.T) {
	_, err := TypeOf(Signed(T, formula.Iff(formula.Atom("A"), formula.Atom("B"))))
	assert.Error(t, err)

	_, err = TypeOf(Signed(T, formula.True()))
	assert.Error(t, err)

	_, err = TypeOf(Signed(F, formula.False()))
	assert.Error(t, err)
}

func TestTypeOfTable(t *testing.T) {
	a, b := formula.Atom("A"), formula.Atom("B")
	cases := []struct {
		sf   SignedFormula
		want TableauType
	}{
		{Signed(T, a), TypeAtom},
		{Signed(F, a), TypeAtom},
		{Signed(T, formula.Not(a)), TypeAlpha},
		{Signed(F, formula.Not(a)), TypeAlpha},
		{Signed(T, formula.And(a, b)), TypeAlpha},
		{Signed(F, formula.And(a, b)), TypeBeta},
		{Signed(T, formula.Or(a, b)), TypeBeta},
		{Signed(F, formula.Or(a, b)), TypeAlpha},
		{Signed(T, formula.Imp(a, b)), TypeBeta},
		{Signed(F, formula.Imp(a, b)), TypeAlpha},
		{Signed(T, formula.ForAll("x", a)), TypeGamma},
		{Signed(F, formula.ForAll("x", a)), TypeDelta},
		{Signed(T, formula.Exists("x", a)), TypeDelta},
		{Signed(F, formula.Exists("x", a)), TypeGamma},
	}
	for _, c := range cases {
		got, err := TypeOf(c.sf)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, c.sf.String())
	}
}

// TestBranchDetectsComplementaryPair covers invariant 4 of
// spec.md §8: once closure is signalled, the branch that signalled it
// really does hold both (T, A) and (F, A).
func TestBranchDetectsComplementaryPair(t *testing.T) {
	b := NewBranch(Signed(T, formula.Atom("A")))
	assert.False(t, b.Closed())
	b.Add(Signed(F, formula.Atom("A")))
	assert.True(t, b.Closed())
}

func TestBranchSuppressesDuplicates(t *testing.T) {
	b := NewBranch(Signed(T, formula.Atom("A")))
	added := b.Add(Signed(T, formula.Atom("A")))
	assert.False(t, added)
	assert.Len(t, b.Formulas(), 1)
}

// TestBranchCloneIsIndependent covers the no-aliasing invariant of
// spec.md §3 and §5: mutating a clone must never affect the original.
func TestBranchCloneIsIndependent(t *testing.T) {
	b := NewBranch(Signed(T, formula.Atom("A")))
	clone := b.Clone()
	clone.Add(Signed(T, formula.Atom("B")))

	assert.Len(t, b.Formulas(), 1)
	assert.Len(t, clone.Formulas(), 2)
}

// TestDeltaFreshnessInvariant covers invariant 7 of spec.md §8: every
// constant δ introduces is absent from the branch beforehand.
func TestDeltaFreshnessInvariant(t *testing.T) {
	b := NewBranch(Signed(T, formula.Atom("P", formula.FunctionTerm("a"))))
	before := map[string]bool{}
	for _, c := range b.Constants() {
		before[c] = true
	}
	fresh := b.freshConstant()
	assert.False(t, before[fresh])
}

// TestGammaSaturationFixedPoint covers invariant
// 6: a round with no new constants and no new instantiations is a
// no-op fixed point.
func TestGammaSaturationFixedPoint(t *testing.T) {
	b := NewBranch(Signed(T, formula.ForAll("x", formula.Atom("P", formula.Var("x")))))
	b.registerConstant("a")

	progressed, err := b.gammaRound(defaultMaxGammaRounds)
	require.NoError(t, err)
	assert.True(t, progressed)

	progressed, err = b.gammaRound(defaultMaxGammaRounds)
	require.NoError(t, err)
	assert.False(t, progressed)
}

func TestMalformedInputErrorMentionsSignedFormula(t *testing.T) {
	_, err := TypeOf(Signed(T, formula.True()))
	require.Error(t, err)
	var mi *MalformedInput
	require.ErrorAs(t, err, &mi)
	assert.Contains(t, mi.Signed, "⊤")
}
