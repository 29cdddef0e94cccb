package panel

import "github.com/zoobzio/capitan"

// Loading signals.
var (
	// FetchStarted is emitted when a document fetch begins.
	FetchStarted = capitan.NewSignal(
		"panel.fetch.started",
		"Schema document fetch started",
	)

	// FetchFailed is emitted when a document could not be fetched.
	FetchFailed = capitan.NewSignal(
		"panel.fetch.failed",
		"Schema document fetch failed",
	)

	// DecodeFailed is emitted when a document could not be decoded or has
	// the wrong shape.
	DecodeFailed = capitan.NewSignal(
		"panel.decode.failed",
		"Schema document decode failed",
	)

	// WidgetSkipped is emitted for every widget kind left out of a model.
	WidgetSkipped = capitan.NewSignal(
		"panel.widget.skipped",
		"Widget omitted from model",
	)

	// ModelApplied is emitted when a document has been merged into the model.
	ModelApplied = capitan.NewSignal(
		"panel.model.applied",
		"Model updated from document",
	)

	// StateChanged is emitted when the facade transitions between states.
	StateChanged = capitan.NewSignal(
		"panel.state.changed",
		"Facade state transition",
	)
)

// Model mutation signals.
var (
	// OrderShuffled is emitted after ShuffleOrder.
	OrderShuffled = capitan.NewSignal(
		"panel.order.shuffled",
		"View order shuffled",
	)

	// SelectionChanged is emitted after SetSelectedID changes a selector.
	SelectionChanged = capitan.NewSignal(
		"panel.selection.changed",
		"Selector selection set by host",
	)

	// ComposeCompleted is emitted every time a Composer rebuilds its units.
	ComposeCompleted = capitan.NewSignal(
		"panel.compose.completed",
		"Render units composed",
	)
)
