package cssbuilder

import "fmt"

// DuplicateKindError is the panic value of an append that would add a
// second element, id or pseudo-element part to the same selector. Kind is
// the part that was appended twice.
type DuplicateKindError struct {
	Kind Kind
}

func (e *DuplicateKindError) Error() string {
	return fmt.Sprintf("css selector: duplicate %s part, element, id and pseudo-element may occur at most once inside a selector", e.Kind)
}

// OutOfOrderError is the panic value of an append whose part kind comes
// before a kind already present in the selector. Kind is the part that was
// appended too late.
type OutOfOrderError struct {
	Kind Kind
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("css selector: %s part out of order, parts must be arranged as element, id, class, attribute, pseudo-class, pseudo-element", e.Kind)
}
