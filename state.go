package panel

// State represents the load state of a Facade.
type State int32

const (
	// StateLoading indicates no document has been processed yet.
	StateLoading State = iota

	// StateHealthy indicates the last document was applied.
	StateHealthy

	// StateDegraded indicates the last load failed after an earlier one
	// succeeded. The earlier model remains in place.
	StateDegraded

	// StateEmpty indicates no document has ever been applied. Every widget
	// is absent and the order is empty.
	StateEmpty
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
