package formula

import "strings"

// Term is either a variable or a function-symbol application. A Term
// with no arguments is a constant. A Term is ground when it contains
// no variables anywhere in its subterms.
type Term interface {
	String() string
	Ground() bool
	equalTerm(Term) bool
}

// Variable is a bound or free logic variable.
type Variable struct {
	Name string
}

func Var(name string) Term { return Variable{Name: name} }

func (v Variable) String() string { return v.Name }
func (v Variable) Ground() bool   { return false }

func (v Variable) equalTerm(other Term) bool {
	ov, ok := other.(Variable)
	return ok && ov.Name == v.Name
}

// FuncTerm is a function-symbol application; zero arguments makes it a
// constant, e.g. FunctionTerm("a") for the ground constant `a`.
type FuncTerm struct {
	Symbol string
	Args   []Term
}

// FunctionTerm constructs an n-ary function application. Called with no
// args it constructs a 0-ary constant, which is what the δ and γ rules
// need when they mint or reuse a ground witness.
func FunctionTerm(symbol string, args ...Term) Term {
	return FuncTerm{Symbol: symbol, Args: args}
}

func (f FuncTerm) Ground() bool {
	for _, a := range f.Args {
		if !a.Ground() {
			return false
		}
	}
	return true
}

func (f FuncTerm) String() string {
	if len(f.Args) == 0 {
		return f.Symbol
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	var sb strings.Builder
	sb.WriteString(f.Symbol)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteByte(')')
	return sb.String()
}

func (f FuncTerm) equalTerm(other Term) bool {
	of, ok := other.(FuncTerm)
	if !ok || of.Symbol != f.Symbol || len(of.Args) != len(f.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].equalTerm(of.Args[i]) {
			return false
		}
	}
	return true
}

// EqualTerm reports structural equality of two terms.
func EqualTerm(a, b Term) bool {
	return a.equalTerm(b)
}

// substTerm replaces every occurrence of variable v with term t.
func substTerm(term Term, v string, t Term) Term {
	switch x := term.(type) {
	case Variable:
		if x.Name == v {
			return t
		}
		return x
	case FuncTerm:
		if len(x.Args) == 0 {
			return x
		}
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = substTerm(a, v, t)
		}
		return FuncTerm{Symbol: x.Symbol, Args: args}
	default:
		return term
	}
}

// collectTermConstants appends every ground (0-ary) function symbol
// reachable from term to out, skipping duplicates.
func collectTermConstants(term Term, seen map[string]bool, out *[]string) {
	switch x := term.(type) {
	case FuncTerm:
		if len(x.Args) == 0 {
			if !seen[x.Symbol] {
				seen[x.Symbol] = true
				*out = append(*out, x.Symbol)
			}
			return
		}
		for _, a := range x.Args {
			collectTermConstants(a, seen, out)
		}
	}
}
