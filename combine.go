package cssbuilder

import "fmt"

// Combined is a complex selector produced by Combine. It holds the
// pre-rendered text only, the operands are not retained.
type Combined struct {
	rendered string
}

// String returns the combined selector text.
func (c Combined) String() string {
	return c.rendered
}

// Combine joins two selectors with a combinator token. The token is taken
// verbatim and surrounded by exactly one space on each side, so the
// descendant combinator " " produces a run of three spaces. Combine reads
// its operands once and leaves them untouched; a Combined may itself be an
// operand to a further Combine, building arbitrarily nested combinator
// trees.
func Combine(first fmt.Stringer, combinator string, second fmt.Stringer) Combined {
	return Combined{rendered: first.String() + " " + combinator + " " + second.String()}
}
