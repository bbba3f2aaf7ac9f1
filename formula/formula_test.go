package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseIffEliminatesBiconditional(t *testing.T) {
	a, b := Atom("A"), Atom("B")
	out := ReleaseIff(Iff(a, b))
	require.Equal(t, KindAnd, out.Kind())
	left, ok := Operand1(out)
	require.True(t, ok)
	right, ok := Operand2(out)
	require.True(t, ok)
	assert.Equal(t, KindImp, left.Kind())
	assert.Equal(t, KindImp, right.Kind())
}

func TestAbsorbConstantsPropagatesThroughImp(t *testing.T) {
	out := AbsorbConstants(Imp(True(), Atom("A")))
	assert.True(t, Equal(out, Atom("A")))
}

func TestAbsorbConstantsAndShortCircuitsOnFalse(t *testing.T) {
	out := AbsorbConstants(And(Atom("A"), False()))
	assert.Equal(t, KindFalse, out.Kind())
}

func TestNormalizeRewritesTrueToDisjunction(t *testing.T) {
	out := Normalize(True())
	assert.Equal(t, KindOr, out.Kind())
}

func TestNormalizeRewritesFalseToConjunction(t *testing.T) {
	out := Normalize(False())
	assert.Equal(t, KindAnd, out.Kind())
}

func TestNormalizeIsIdempotentOnAlreadyNormalInput(t *testing.T) {
	in := Imp(Atom("A"), Atom("B"))
	assert.True(t, Equal(Normalize(in), Normalize(Normalize(in))))
}

func TestInstantiateSubstitutesFreeVariable(t *testing.T) {
	p := Atom("P", Var("x"))
	out := Instantiate(p, "x", FunctionTerm("a"))
	assert.True(t, Equal(out, Atom("P", FunctionTerm("a"))))
}

func TestInstantiateDoesNotDescendPastRebinding(t *testing.T) {
	inner := ForAll("x", Atom("P", Var("x")))
	out := Instantiate(inner, "x", FunctionTerm("a"))
	assert.True(t, Equal(out, inner))
}

func TestCollectConstantsDeduplicates(t *testing.T) {
	f := And(Atom("P", FunctionTerm("a")), Atom("Q", FunctionTerm("a"), FunctionTerm("b")))
	var out []string
	CollectConstants(f, &out)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestEqualDistinguishesDifferentPredicates(t *testing.T) {
	assert.False(t, Equal(Atom("A"), Atom("B")))
}

func TestOperandAccessorsFailOnWrongKind(t *testing.T) {
	_, ok := Operand(Atom("A"))
	assert.False(t, ok)
	_, ok = Operand1(Atom("A"))
	assert.False(t, ok)
	_, ok = BoundVariable(Atom("A"))
	assert.False(t, ok)
}
