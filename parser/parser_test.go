package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/tableau/formula"
)

func TestParsePropositionalPrecedence(t *testing.T) {
	f, err := Parse("A & B | ~C -> D")
	require.NoError(t, err)
	// -> binds loosest: (A & B | ~C) -> D
	assert.Equal(t, formula.KindImp, f.Kind())
}

func TestParseAsciiAndUnicodeAgree(t *testing.T) {
	a, err := Parse("A & ~B")
	require.NoError(t, err)
	b, err := Parse("A ∧ ¬B")
	require.NoError(t, err)
	assert.True(t, formula.Equal(a, b))
}

func TestParseQuantifierAndPredicate(t *testing.T) {
	f, err := Parse("forall x . P(x)")
	require.NoError(t, err)
	require.Equal(t, formula.KindForAll, f.Kind())
	v, ok := formula.BoundVariable(f)
	require.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestParseUnicodeQuantifier(t *testing.T) {
	f, err := Parse("(∀x.P(x)) → P(a)")
	require.NoError(t, err)
	assert.Equal(t, formula.KindImp, f.Kind())
}

func TestParseDistinguishesVariableFromConstant(t *testing.T) {
	f, err := Parse("forall x . P(x, a)")
	require.NoError(t, err)
	body, ok := formula.Body(f)
	require.True(t, ok)
	atom := body.(formula.AtomFormula)
	require.Len(t, atom.Args, 2)
	assert.Equal(t, formula.Var("x"), atom.Args[0])
	assert.Equal(t, formula.FunctionTerm("a"), atom.Args[1])
}

func TestParseLogicConstants(t *testing.T) {
	f, err := Parse("T -> A")
	require.NoError(t, err)
	assert.Equal(t, formula.KindImp, f.Kind())
	l, _ := formula.Operand1(f)
	assert.Equal(t, formula.KindTrue, l.Kind())
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	_, err := Parse("(A & B")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("A & B)")
	require.Error(t, err)
}

func TestParseIff(t *testing.T) {
	f, err := Parse("A <-> A")
	require.NoError(t, err)
	assert.Equal(t, formula.KindIff, f.Kind())
}
