package commands

import (
	"context"
	"log/slog"

	"github.com/zoobzio/capitan"

	"github.com/zoobzio/panel"
)

var failures = map[string]bool{
	string(panel.FetchFailed.Name()):  true,
	string(panel.DecodeFailed.Name()): true,
}

// hookSignals logs every panel signal through logger.
func hookSignals(logger *slog.Logger) {
	signals := []capitan.Signal{
		panel.FetchStarted,
		panel.FetchFailed,
		panel.DecodeFailed,
		panel.WidgetSkipped,
		panel.ModelApplied,
		panel.StateChanged,
		panel.OrderShuffled,
		panel.SelectionChanged,
		panel.ComposeCompleted,
	}
	for _, sig := range signals {
		name := string(sig.Name())
		level := slog.LevelDebug
		if failures[name] {
			level = slog.LevelWarn
		}
		capitan.Hook(sig, func(ctx context.Context, e *capitan.Event) {
			logger.Log(ctx, level, name, eventAttrs(e)...)
		})
	}
}

type (
	stringField interface {
		From(*capitan.Event) (string, bool)
	}
	intField interface {
		From(*capitan.Event) (int, bool)
	}
)

var stringFields = []struct {
	name string
	key  stringField
}{
	{"source", panel.KeySource},
	{"old_state", panel.KeyOldState},
	{"new_state", panel.KeyNewState},
	{"kind", panel.KeyKind},
	{"reason", panel.KeyReason},
	{"order", panel.KeyOrder},
	{"error", panel.KeyError},
}

var intFields = []struct {
	name string
	key  intField
}{
	{"selected_id", panel.KeySelectedID},
	{"units", panel.KeyUnits},
}

func eventAttrs(e *capitan.Event) []any {
	var attrs []any
	for _, f := range stringFields {
		if v, ok := f.key.From(e); ok {
			attrs = append(attrs, f.name, v)
		}
	}
	for _, f := range intFields {
		if v, ok := f.key.From(e); ok {
			attrs = append(attrs, f.name, v)
		}
	}
	if v, ok := panel.KeyDuration.From(e); ok {
		attrs = append(attrs, "duration", v)
	}
	return attrs
}
