package cssbuilder

// Selector is one compound selector under construction. The zero value is
// ready to use. Every append method validates the new part, splices its
// textual fragment onto the selector and returns the receiver, so calls can
// be chained. An append that violates the uniqueness or ordering rules
// panics with a *DuplicateKindError or *OutOfOrderError and leaves the
// selector unchanged.
//
// A Selector is not safe for concurrent use; each chain of calls owns its
// instance.
type Selector struct {
	rendered string
	seen     uint8 // one bit per Kind
}

// add runs both checks before touching any state. Uniqueness is checked
// first: a repeated element, id or pseudo-element must report the duplicate,
// ordering alone would not catch adjacent repeats of the same kind.
func (s *Selector) add(k Kind, fragment string) *Selector {
	if k.unique() && s.seen&(1<<k) != 0 {
		panic(&DuplicateKindError{Kind: k})
	}
	if s.seen>>(k+1) != 0 {
		panic(&OutOfOrderError{Kind: k})
	}
	s.seen |= 1 << k
	s.rendered += fragment
	return s
}

// Element appends a type selector such as "div". At most one per selector.
func (s *Selector) Element(value string) *Selector {
	return s.add(KindElement, value)
}

// ID appends an id selector, rendered as #value. At most one per selector.
func (s *Selector) ID(value string) *Selector {
	return s.add(KindID, "#"+value)
}

// Class appends a class selector, rendered as .value.
func (s *Selector) Class(value string) *Selector {
	return s.add(KindClass, "."+value)
}

// Attr appends an attribute selector, rendered as [value]. The value text
// is spliced in verbatim, including any match operator it contains.
func (s *Selector) Attr(value string) *Selector {
	return s.add(KindAttribute, "["+value+"]")
}

// PseudoClass appends a pseudo-class selector, rendered as :value.
func (s *Selector) PseudoClass(value string) *Selector {
	return s.add(KindPseudoClass, ":"+value)
}

// PseudoElement appends a pseudo-element selector, rendered as ::value. At
// most one per selector.
func (s *Selector) PseudoElement(value string) *Selector {
	return s.add(KindPseudoElement, "::"+value)
}

// String returns the selector text built so far. It never fails and may be
// called between appends.
func (s *Selector) String() string {
	return s.rendered
}

// Element starts a new compound selector with a type selector.
func Element(value string) *Selector {
	return new(Selector).Element(value)
}

// ID starts a new compound selector with an id selector.
func ID(value string) *Selector {
	return new(Selector).ID(value)
}

// Class starts a new compound selector with a class selector.
func Class(value string) *Selector {
	return new(Selector).Class(value)
}

// Attr starts a new compound selector with an attribute selector.
func Attr(value string) *Selector {
	return new(Selector).Attr(value)
}

// PseudoClass starts a new compound selector with a pseudo-class selector.
func PseudoClass(value string) *Selector {
	return new(Selector).PseudoClass(value)
}

// PseudoElement starts a new compound selector with a pseudo-element
// selector.
func PseudoElement(value string) *Selector {
	return new(Selector).PseudoElement(value)
}
