package panel

import "time"

// MetricsProvider receives callbacks on facade events for integration with
// metrics systems.
type MetricsProvider interface {
	// OnStateChange is called when the facade transitions between states.
	OnStateChange(from, to State)

	// OnLoadSuccess is called when a document has been applied. Duration
	// covers decoding, building and merging.
	OnLoadSuccess(duration time.Duration)

	// OnLoadFailure is called when loading fails. Stage is "fetch" or "decode".
	OnLoadFailure(stage string, duration time.Duration)

	// OnWidgetSkipped is called for every kind left out of a built model.
	OnWidgetSkipped(kind Kind)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Embed it to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)                {}
func (NoOpMetricsProvider) OnLoadSuccess(_ time.Duration)           {}
func (NoOpMetricsProvider) OnLoadFailure(_ string, _ time.Duration) {}
func (NoOpMetricsProvider) OnWidgetSkipped(_ Kind)                  {}
