package cssbuilder

// Kind identifies one part of a compound selector. The declaration order is
// the canonical order in which the parts must appear.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

var kindNames = [...]string{
	"element",
	"id",
	"class",
	"attribute",
	"pseudo-class",
	"pseudo-element",
}

func (k Kind) String() string {
	if k < KindElement || k > KindPseudoElement {
		return "unknown"
	}
	return kindNames[k]
}

// unique reports whether the kind may occur at most once per compound
// selector.
func (k Kind) unique() bool {
	switch k {
	case KindElement, KindID, KindPseudoElement:
		return true
	}
	return false
}
