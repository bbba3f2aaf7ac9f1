package formula

// Example bundles a formula together with the human-readable verdict
// its author expects, so callers (the CLI repl and the tableau tests)
// can both print and check the same fixtures. Adapted from the
// teacher's CreateTrafficLightExample/CreateMutualExclusionExample
// gallery in examples.go: a handful of named constructors returning a
// ready-to-use value, now over formulas instead of Kripke structures.
type Example struct {
	Name        string
	Description string
	Formula     Formula
	Tautology   bool
}

// ExcludedMiddle is A ∨ ¬A.
func ExcludedMiddle() Formula {
	a := Atom("A")
	return Or(a, Not(a))
}

// Contradiction is A ∧ ¬A.
func Contradiction() Formula {
	a := Atom("A")
	return And(a, Not(a))
}

// SelfImplication is A → A.
func SelfImplication() Formula {
	a := Atom("A")
	return Imp(a, a)
}

// Contrapositive is (A → B) → (¬B → ¬A).
func Contrapositive() Formula {
	a, b := Atom("A"), Atom("B")
	return Imp(Imp(a, b), Imp(Not(b), Not(a)))
}

// IffReflexive is A ↔ A, which exercises release-iff during normalization.
func IffReflexive() Formula {
	a := Atom("A")
	return Iff(a, a)
}

// TrueImpliesA is ⊤ → A, which exercises absorb-constants: it reduces
// to plain A, not a tautology.
func TrueImpliesA() Formula {
	return Imp(True(), Atom("A"))
}

// ForallInstantiation is (∀x.P(x)) → P(a): a tautology, verified by
// γ-instantiating the existing constant a.
func ForallInstantiation() Formula {
	p := func(t Term) Formula { return Atom("P", t) }
	return Imp(ForAll("x", p(Var("x"))), p(FunctionTerm("a")))
}

// ExistsNotGeneral is (∃x.P(x)) → P(a): not a tautology. Saturation
// reaches a fixed point on a branch that stays open.
func ExistsNotGeneral() Formula {
	p := func(t Term) Formula { return Atom("P", t) }
	return Imp(Exists("x", p(Var("x"))), p(FunctionTerm("a")))
}

// Examples returns the bundled gallery in a stable order, keyed by name.
func Examples() []Example {
	return []Example{
		{Name: "excluded-middle", Description: "A ∨ ¬A", Formula: ExcludedMiddle(), Tautology: true},
		{Name: "contradiction", Description: "A ∧ ¬A", Formula: Contradiction(), Tautology: false},
		{Name: "self-implication", Description: "A → A", Formula: SelfImplication(), Tautology: true},
		{Name: "contrapositive", Description: "(A → B) → (¬B → ¬A)", Formula: Contrapositive(), Tautology: true},
		{Name: "iff-reflexive", Description: "A ↔ A", Formula: IffReflexive(), Tautology: true},
		{Name: "true-implies-a", Description: "⊤ → A", Formula: TrueImpliesA(), Tautology: false},
		{Name: "forall-instantiation", Description: "(∀x.P(x)) → P(a)", Formula: ForallInstantiation(), Tautology: true},
		{Name: "exists-not-general", Description: "(∃x.P(x)) → P(a)", Formula: ExistsNotGeneral(), Tautology: false},
	}
}
