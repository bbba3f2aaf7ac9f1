package tableau

import (
	"fmt"

	"github.com/rfielding/tableau/formula"
)

// Branch is an ordered multiset of signed formulae plus the ground
// constants available for γ/δ instantiation (spec.md §3). Insertion
// order defines rule-selection priority. A Branch is owned by exactly
// one frame of the recursive search at a time; β-rules clone it
// explicitly so each side of a split gets an independent copy, with no
// aliasing of the underlying slices or maps.
type Branch struct {
	formulas []SignedFormula
	present  map[string]bool
	atomSign map[string]Sign

	constants  []string
	constSet   map[string]bool
	nextConst  int
	roundsUsed int

	closed bool
}

// NewBranch creates a single-formula branch seeded with root.
func NewBranch(root SignedFormula) *Branch {
	b := &Branch{
		present:  make(map[string]bool),
		atomSign: make(map[string]Sign),
		constSet: make(map[string]bool),
	}
	b.Add(root)
	return b
}

// Clone returns an independent deep copy: a new backing slice and new
// maps, so mutating the clone never affects b and vice versa.
func (b *Branch) Clone() *Branch {
	nb := &Branch{
		formulas:   append([]SignedFormula(nil), b.formulas...),
		present:    make(map[string]bool, len(b.present)),
		atomSign:   make(map[string]Sign, len(b.atomSign)),
		constants:  append([]string(nil), b.constants...),
		constSet:   make(map[string]bool, len(b.constSet)),
		nextConst:  b.nextConst,
		roundsUsed: b.roundsUsed,
		closed:     b.closed,
	}
	for k, v := range b.present {
		nb.present[k] = v
	}
	for k, v := range b.atomSign {
		nb.atomSign[k] = v
	}
	for k, v := range b.constSet {
		nb.constSet[k] = v
	}
	return nb
}

// Add appends sf to the branch unless it is already present, updating
// the constant set and the closure flag as a side effect. It reports
// whether sf was newly added.
func (b *Branch) Add(sf SignedFormula) bool {
	k := sf.key()
	if b.present[k] {
		return false
	}
	b.present[k] = true
	b.formulas = append(b.formulas, sf)

	var cs []string
	formula.CollectConstants(sf.F, &cs)
	for _, c := range cs {
		b.registerConstant(c)
	}

	if sf.F.Kind() == formula.KindAtom {
		ak := sf.atomKey()
		if existing, ok := b.atomSign[ak]; ok {
			if existing != sf.Sign {
				b.closed = true
			}
		} else {
			b.atomSign[ak] = sf.Sign
		}
	}
	return true
}

func (b *Branch) registerConstant(name string) {
	if !b.constSet[name] {
		b.constSet[name] = true
		b.constants = append(b.constants, name)
	}
}

// freshConstant mints a ground 0-ary function symbol absent from the
// branch's constant list, per the freshness invariant of spec.md §4.5.
func (b *Branch) freshConstant() string {
	for {
		name := fmt.Sprintf("c%d", b.nextConst)
		b.nextConst++
		if !b.constSet[name] {
			b.registerConstant(name)
			return name
		}
	}
}

// Closed reports whether the branch contains a complementary literal
// pair (spec.md §4.3, rule 1).
func (b *Branch) Closed() bool { return b.closed }

// Formulas returns the branch's formula list in insertion order. The
// returned slice is shared; callers must not mutate it.
func (b *Branch) Formulas() []SignedFormula { return b.formulas }

// Constants returns the branch's ground constant list in the order
// they were first registered. The returned slice is shared; callers
// must not mutate it.
func (b *Branch) Constants() []string { return b.constants }

// removeAt deletes the formula at index i, preserving the order of
// the rest. The removed formula's present entry is left in place: the
// branch must never re-derive and re-add the exact signed formula it
// just consumed.
func (b *Branch) removeAt(i int) {
	b.formulas = append(b.formulas[:i], b.formulas[i+1:]...)
}

// pickActionable scans the branch in insertion order for the first
// ALPHA, BETA, or DELTA formula (spec.md §4.3, rule 2) and removes it
// from the branch for the caller to expand. Atoms encountered along
// the way carry no expansion of their own; per spec.md §4.3 they are
// moved to the tail so later scans make progress over the remaining
// non-atomic formulae instead of re-inspecting the same atom. GAMMA
// formulae are left untouched — they are re-usable and handled by a
// saturation round, not by this scan.
func (b *Branch) pickActionable() (SignedFormula, TableauType, bool, error) {
	var atomIdx []int
	for i := 0; i < len(b.formulas); i++ {
		sf := b.formulas[i]
		t, err := TypeOf(sf)
		if err != nil {
			return SignedFormula{}, 0, false, err
		}
		switch t {
		case TypeAlpha, TypeBeta, TypeDelta:
			b.removeAt(i)
			b.bumpToTail(atomIdx)
			return sf, t, true, nil
		case TypeAtom:
			atomIdx = append(atomIdx, i)
		}
	}
	b.bumpToTail(atomIdx)
	return SignedFormula{}, 0, false, nil
}

// bumpToTail removes the formulas at idx (given in ascending order)
// and re-appends them at the end, preserving their relative order.
func (b *Branch) bumpToTail(idx []int) {
	if len(idx) == 0 {
		return
	}
	bumped := make([]SignedFormula, len(idx))
	for i, at := range idx {
		bumped[i] = b.formulas[at]
	}
	kept := make([]SignedFormula, 0, len(b.formulas)-len(idx))
	skip := make(map[int]bool, len(idx))
	for _, at := range idx {
		skip[at] = true
	}
	for i, sf := range b.formulas {
		if !skip[i] {
			kept = append(kept, sf)
		}
	}
	b.formulas = append(kept, bumped...)
}

// gammaRound performs one saturation round (spec.md §4.6): every
// currently-reusable γ-formula is instantiated against every constant
// on the branch, and any genuinely new resulting formula is added. It
// reports whether the branch grew. maxRounds is a defensive ceiling on
// top of the fixed-point check — a bounded-saturation safety valve,
// never expected to bind on a terminating input, matching the
// "bounded saturation heuristic" non-goal of spec.md §1.
func (b *Branch) gammaRound(maxRounds int) (bool, error) {
	var gammas []SignedFormula
	for _, sf := range b.formulas {
		t, err := TypeOf(sf)
		if err != nil {
			return false, err
		}
		if t == TypeGamma {
			gammas = append(gammas, sf)
		}
	}

	constants := append([]string(nil), b.constants...)
	progressed := false
	for _, g := range gammas {
		v, ok := formula.BoundVariable(g.F)
		if !ok {
			return false, malformedInput(g, "GAMMA formula missing bound variable")
		}
		body, ok := formula.Body(g.F)
		if !ok {
			return false, malformedInput(g, "GAMMA formula missing body")
		}
		for _, c := range constants {
			inst := formula.Instantiate(body, v, formula.FunctionTerm(c))
			if b.Add(Signed(g.Sign, inst)) {
				progressed = true
			}
		}
	}

	b.roundsUsed++
	if b.roundsUsed >= maxRounds {
		return false, nil
	}
	return progressed, nil
}

// RoundsUsed reports how many γ-saturation rounds this branch went
// through. Surfaced in the trace's open-branch line as a diagnostic
// (SPEC_FULL.md "Depth/round diagnostics").
func (b *Branch) RoundsUsed() int { return b.roundsUsed }
