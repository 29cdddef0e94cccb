package panel

// SelectionPolicy decides what the builder does with a selectedId that
// falls outside 1..len(variants).
type SelectionPolicy int

const (
	// SelectionPassthrough keeps the value unchanged.
	SelectionPassthrough SelectionPolicy = iota

	// SelectionClamp moves the value to the nearest bound.
	SelectionClamp

	// SelectionReject omits the selector widget.
	SelectionReject
)

// String returns the string representation of the policy.
func (p SelectionPolicy) String() string {
	switch p {
	case SelectionPassthrough:
		return "passthrough"
	case SelectionClamp:
		return "clamp"
	case SelectionReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseSelectionPolicy resolves a policy by its string form.
func ParseSelectionPolicy(s string) (SelectionPolicy, bool) {
	for _, p := range []SelectionPolicy{SelectionPassthrough, SelectionClamp, SelectionReject} {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// resolve applies the policy to id for a selector with n variants.
func (p SelectionPolicy) resolve(id, n int) (int, bool) {
	if id >= 1 && id <= n {
		return id, true
	}
	switch p {
	case SelectionClamp:
		if id < 1 {
			return 1, true
		}
		return n, true
	case SelectionReject:
		return 0, false
	default:
		return id, true
	}
}
