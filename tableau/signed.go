package tableau

import (
	"fmt"

	"github.com/rfielding/tableau/formula"
)

// Sign is the T/F tag Smullyan signed tableaux hang every formula on.
type Sign bool

const (
	T Sign = true
	F Sign = false
)

func (s Sign) String() string {
	if s {
		return "T"
	}
	return "F"
}

// SignedFormula is an immutable (sign, formula) pair. Every branch
// that references one shares the same underlying formula.Formula node;
// nothing here ever mutates it.
type SignedFormula struct {
	Sign Sign
	F    formula.Formula
}

// Signed constructs a signed formula.
func Signed(sign Sign, f formula.Formula) SignedFormula {
	return SignedFormula{Sign: sign, F: f}
}

func (sf SignedFormula) String() string {
	return fmt.Sprintf("%s (%s)", sf.Sign, sf.F)
}

// key is the structural identity used for duplicate suppression and
// complementary-pair lookup: sign plus the formula's canonical string
// form. Two structurally equal signed formulae always produce the
// same key. String() distinguishes every connective and quantifier,
// but a variable and a 0-ary constant of the same name print alike, so
// formulae differing only in that respect share a key.
func (sf SignedFormula) key() string {
	return sf.String()
}

// atomKey is the identity an atom is indexed under for the
// complementary-pair check: the formula alone, without its sign.
func (sf SignedFormula) atomKey() string {
	return sf.F.String()
}

// TableauType classifies a signed formula per spec.md §3.
type TableauType int

const (
	TypeAtom TableauType = iota
	TypeAlpha
	TypeBeta
	TypeGamma
	TypeDelta
)

func (t TableauType) String() string {
	switch t {
	case TypeAtom:
		return "ATOM"
	case TypeAlpha:
		return "ALPHA"
	case TypeBeta:
		return "BETA"
	case TypeGamma:
		return "GAMMA"
	case TypeDelta:
		return "DELTA"
	default:
		return "UNKNOWN"
	}
}

// TypeOf derives the tableau type of a signed formula from the table
// in spec.md §3. It fails with MalformedInput if the formula's kind is
// IFF, TRUE, or FALSE (normalization was skipped, so classification is
// undefined) or any other kind outside the closed set the table
// covers.
func TypeOf(sf SignedFormula) (TableauType, error) {
	switch sf.F.Kind() {
	case formula.KindAtom:
		return TypeAtom, nil
	case formula.KindNot:
		return TypeAlpha, nil
	case formula.KindAnd:
		if sf.Sign == T {
			return TypeAlpha, nil
		}
		return TypeBeta, nil
	case formula.KindOr:
		if sf.Sign == T {
			return TypeBeta, nil
		}
		return TypeAlpha, nil
	case formula.KindImp:
		if sf.Sign == T {
			return TypeBeta, nil
		}
		return TypeAlpha, nil
	case formula.KindForAll:
		if sf.Sign == T {
			return TypeGamma, nil
		}
		return TypeDelta, nil
	case formula.KindExists:
		if sf.Sign == T {
			return TypeDelta, nil
		}
		return TypeGamma, nil
	default:
		return 0, malformedInput(sf, fmt.Sprintf("unclassifiable kind %s (normalization should have removed it)", sf.F.Kind()))
	}
}
