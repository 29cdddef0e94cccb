package panel

// Kind identifies one of the widget kinds a schema document can describe.
type Kind int

const (
	// KindText is a plain text label.
	KindText Kind = iota

	// KindPicture is an image with a caption.
	KindPicture

	// KindSelector is a single-choice selector over a list of variants.
	KindSelector
)

// wireNames maps every Kind to the name used for it in schema documents.
// Entries must stay in Kind order.
var wireNames = [...]string{
	KindText:     "hz",
	KindPicture:  "picture",
	KindSelector: "selector",
}

// Kinds returns every widget kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindText, KindPicture, KindSelector}
}

// WireName returns the name identifying k in schema documents.
func (k Kind) WireName() string {
	if k < 0 || int(k) >= len(wireNames) {
		return ""
	}
	return wireNames[k]
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPicture:
		return "picture"
	case KindSelector:
		return "selector"
	default:
		return "unknown"
	}
}

// KindOf resolves a wire name to its Kind. The second result is false for
// names no widget kind claims.
func KindOf(name string) (Kind, bool) {
	for i, n := range wireNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}
