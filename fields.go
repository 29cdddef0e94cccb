package panel

import "github.com/zoobzio/capitan"

// Field keys for panel events.
var (
	KeyState    = capitan.NewStringKey("state")
	KeyOldState = capitan.NewStringKey("old_state")
	KeyNewState = capitan.NewStringKey("new_state")
	KeyError    = capitan.NewStringKey("error")

	// KeySource describes where a document came from.
	KeySource = capitan.NewStringKey("source")

	// KeyKind is the widget kind a skip refers to.
	KeyKind = capitan.NewStringKey("kind")

	// KeyReason explains why a widget was skipped.
	KeyReason = capitan.NewStringKey("reason")

	// KeyOrder is the view order joined with commas.
	KeyOrder = capitan.NewStringKey("order")

	KeySelectedID = capitan.NewIntKey("selected_id")
	KeyUnits      = capitan.NewIntKey("units")
	KeyDuration   = capitan.NewDurationKey("duration")
)
