package tableau

import "github.com/pkg/errors"

// MalformedInput is a programmer-error fault: a signed formula's
// tableau type is undefined after normalization, or a rule was
// dispatched to a formula of the wrong kind. It is fatal and aborts
// the search (spec.md §4.8); it is never a branch-local outcome.
type MalformedInput struct {
	Signed string
	Reason string
}

func (e *MalformedInput) Error() string {
	return "malformed input: " + e.Reason + ": " + e.Signed
}

func malformedInput(sf SignedFormula, reason string) error {
	return errors.WithStack(&MalformedInput{Signed: sf.String(), Reason: reason})
}
