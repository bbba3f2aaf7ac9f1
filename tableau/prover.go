// Package tableau is the core analytic-tableau prover: classification
// of signed formulae into rule types, the proof-search procedure that
// expands rules and splits the tree for branching rules, quantifier
// instantiation with fresh or existing ground terms, and branch
// closure on complementary literal pairs (spec.md §1). It depends on
// package formula only through the narrow capability interface of
// spec.md §6 — it never type-asserts into a concrete formula.Formula
// implementation.
package tableau

import (
	"github.com/rfielding/tableau/formula"
)

// defaultMaxGammaRounds bounds γ-saturation as a defensive ceiling on
// top of the fixed-point check described in spec.md §4.6. Ordinary
// inputs reach a fixed point long before this, but the underlying
// problem is only semi-decidable (spec.md §1) so an unconditional
// fixed-point loop is not a safe default for a long-running service;
// internal/config lets a caller raise or lower it.
const defaultMaxGammaRounds = 64

// Option configures a Prover.
type Option func(*Prover)

// WithSink overrides the trace sink, default NopSink.
func WithSink(sink Sink) Option {
	return func(p *Prover) { p.sink = sink }
}

// WithMaxGammaRounds overrides the γ-saturation ceiling.
func WithMaxGammaRounds(n int) Option {
	return func(p *Prover) {
		if n > 0 {
			p.maxGammaRounds = n
		}
	}
}

// Prover owns the root signed formula F(input′), where input′ is the
// normalized input (spec.md §2, component 4), and drives the
// recursive proof search over branch states.
type Prover struct {
	root           SignedFormula
	sink           Sink
	maxGammaRounds int
}

// New constructs a Prover for raw input formula r. r is normalized
// exactly once, at construction (spec.md §4.2), and wrapped as F(r′):
// the search tries to derive a contradiction from "r is false", which
// succeeds exactly when r is a tautology.
func New(r formula.Formula, opts ...Option) *Prover {
	p := &Prover{
		root:           Signed(F, formula.Normalize(r)),
		sink:           NopSink{},
		maxGammaRounds: defaultMaxGammaRounds,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prove runs the tableau proof search and reports whether the input is
// a tautology (every branch closes). A non-nil error is always a
// MalformedInput fault (spec.md §4.8); it is never returned to signal
// an open branch, which is a plain false result.
func (p *Prover) Prove() (bool, error) {
	return p.prove(NewBranch(p.root), 0)
}

// prove implements the rule-selection policy of spec.md §4.3: check
// for closure, then the first ALPHA/BETA/DELTA formula in insertion
// order, then one round of γ-saturation if nothing else is
// actionable.
func (p *Prover) prove(b *Branch, depth int) (bool, error) {
	p.sink.Step(depth, b)

	if b.Closed() {
		p.sink.Leaf(depth+1, true, -1)
		return true, nil
	}

	sf, tt, ok, err := b.pickActionable()
	if err != nil {
		return false, err
	}
	if ok {
		switch tt {
		case TypeAlpha:
			succs, err := applyAlpha(sf)
			if err != nil {
				return false, err
			}
			for _, s := range succs {
				b.Add(s)
			}
			return p.prove(b, depth+1)

		case TypeDelta:
			succ, err := applyDelta(sf, b)
			if err != nil {
				return false, err
			}
			b.Add(succ)
			return p.prove(b, depth+1)

		case TypeBeta:
			return p.proveBeta(b, sf, depth)

		default:
			return false, malformedInput(sf, "pickActionable returned an unexpected type")
		}
	}

	progressed, err := b.gammaRound(p.maxGammaRounds)
	if err != nil {
		return false, err
	}
	if progressed {
		return p.prove(b, depth+1)
	}
	p.sink.Leaf(depth+1, false, b.RoundsUsed())
	return false, nil
}

// proveBeta implements the branching semantics of spec.md §4.4: clone
// the branch, apply the left successor to one clone and the right to
// the other. The parent closes iff both sub-branches close. If the
// left sub-branch is open, the parent is open immediately and the
// right sub-branch is never explored.
func (p *Prover) proveBeta(b *Branch, sf SignedFormula, depth int) (bool, error) {
	left, right, err := applyBeta(sf)
	if err != nil {
		return false, err
	}

	bl := b.Clone()
	bl.Add(left)
	closedLeft, err := p.prove(bl, depth+1)
	if err != nil {
		return false, err
	}
	p.sink.Leaf(depth+1, closedLeft, -1)
	if !closedLeft {
		return false, nil
	}

	br := b.Clone()
	br.Add(right)
	closedRight, err := p.prove(br, depth+1)
	if err != nil {
		return false, err
	}
	p.sink.Leaf(depth+1, closedRight, -1)
	return closedRight, nil
}

// applyAlpha computes the one-successor expansion of an α-type signed
// formula (spec.md §4.4).
func applyAlpha(sf SignedFormula) ([]SignedFormula, error) {
	switch sf.F.Kind() {
	case formula.KindNot:
		x, ok := formula.Operand(sf.F)
		if !ok {
			return nil, malformedInput(sf, "NOT missing operand")
		}
		return []SignedFormula{Signed(!sf.Sign, x)}, nil

	case formula.KindAnd:
		if sf.Sign != T {
			return nil, malformedInput(sf, "F(AND) is a beta rule, not alpha")
		}
		x, ok1 := formula.Operand1(sf.F)
		y, ok2 := formula.Operand2(sf.F)
		if !ok1 || !ok2 {
			return nil, malformedInput(sf, "AND missing an operand")
		}
		return []SignedFormula{Signed(T, x), Signed(T, y)}, nil

	case formula.KindOr:
		if sf.Sign != F {
			return nil, malformedInput(sf, "T(OR) is a beta rule, not alpha")
		}
		x, ok1 := formula.Operand1(sf.F)
		y, ok2 := formula.Operand2(sf.F)
		if !ok1 || !ok2 {
			return nil, malformedInput(sf, "OR missing an operand")
		}
		return []SignedFormula{Signed(F, x), Signed(F, y)}, nil

	case formula.KindImp:
		if sf.Sign != F {
			return nil, malformedInput(sf, "T(IMP) is a beta rule, not alpha")
		}
		x, ok1 := formula.Operand1(sf.F)
		y, ok2 := formula.Operand2(sf.F)
		if !ok1 || !ok2 {
			return nil, malformedInput(sf, "IMP missing an operand")
		}
		return []SignedFormula{Signed(T, x), Signed(F, y)}, nil

	default:
		return nil, malformedInput(sf, "not an alpha-type formula")
	}
}

// applyBeta computes the two successors of a β-type signed formula
// (spec.md §4.4); the caller is responsible for cloning the branch and
// applying each side to its own copy.
func applyBeta(sf SignedFormula) (SignedFormula, SignedFormula, error) {
	switch sf.F.Kind() {
	case formula.KindAnd:
		if sf.Sign != F {
			return SignedFormula{}, SignedFormula{}, malformedInput(sf, "T(AND) is an alpha rule, not beta")
		}
		x, ok1 := formula.Operand1(sf.F)
		y, ok2 := formula.Operand2(sf.F)
		if !ok1 || !ok2 {
			return SignedFormula{}, SignedFormula{}, malformedInput(sf, "AND missing an operand")
		}
		return Signed(F, x), Signed(F, y), nil

	case formula.KindOr:
		if sf.Sign != T {
			return SignedFormula{}, SignedFormula{}, malformedInput(sf, "F(OR) is an alpha rule, not beta")
		}
		x, ok1 := formula.Operand1(sf.F)
		y, ok2 := formula.Operand2(sf.F)
		if !ok1 || !ok2 {
			return SignedFormula{}, SignedFormula{}, malformedInput(sf, "OR missing an operand")
		}
		return Signed(T, x), Signed(T, y), nil

	case formula.KindImp:
		if sf.Sign != T {
			return SignedFormula{}, SignedFormula{}, malformedInput(sf, "F(IMP) is an alpha rule, not beta")
		}
		x, ok1 := formula.Operand1(sf.F)
		y, ok2 := formula.Operand2(sf.F)
		if !ok1 || !ok2 {
			return SignedFormula{}, SignedFormula{}, malformedInput(sf, "IMP missing an operand")
		}
		return Signed(F, x), Signed(T, y), nil

	default:
		return SignedFormula{}, SignedFormula{}, malformedInput(sf, "not a beta-type formula")
	}
}

// applyDelta introduces a fresh witness constant for a δ-type signed
// formula (spec.md §4.5).
func applyDelta(sf SignedFormula, b *Branch) (SignedFormula, error) {
	switch sf.F.Kind() {
	case formula.KindForAll:
		if sf.Sign != F {
			return SignedFormula{}, malformedInput(sf, "T(FORALL) is a gamma rule, not delta")
		}
		v, ok1 := formula.BoundVariable(sf.F)
		body, ok2 := formula.Body(sf.F)
		if !ok1 || !ok2 {
			return SignedFormula{}, malformedInput(sf, "FORALL missing variable or body")
		}
		c := b.freshConstant()
		return Signed(F, formula.Instantiate(body, v, formula.FunctionTerm(c))), nil

	case formula.KindExists:
		if sf.Sign != T {
			return SignedFormula{}, malformedInput(sf, "F(EXISTS) is a gamma rule, not delta")
		}
		v, ok1 := formula.BoundVariable(sf.F)
		body, ok2 := formula.Body(sf.F)
		if !ok1 || !ok2 {
			return SignedFormula{}, malformedInput(sf, "EXISTS missing variable or body")
		}
		c := b.freshConstant()
		return Signed(T, formula.Instantiate(body, v, formula.FunctionTerm(c))), nil

	default:
		return SignedFormula{}, malformedInput(sf, "not a delta-type formula")
	}
}
