package panel

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/clockz"
)

// Follow applies every document emitted by w until the watcher closes or
// ctx is done. Documents are applied on the calling goroutine, which must
// be the goroutine that owns the model. Changes arriving within the
// debounce window are coalesced and only the latest is applied; a pending
// change is applied when the watcher closes.
//
// Apply errors are recorded in the facade state and do not stop Follow.
func (f *Facade) Follow(ctx context.Context, w Watcher) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case raw, ok := <-changes:
			if !ok {
				if hasPending {
					_ = f.Apply(ctx, pending) //nolint:errcheck // Errors stored via fail
				}
				return nil
			}

			if f.debounce <= 0 {
				_ = f.Apply(ctx, raw) //nolint:errcheck // Errors stored via fail
				continue
			}

			pending = raw
			hasPending = true

			if timer == nil {
				timer = f.clock.NewTimer(f.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(f.debounce)
			}

		case <-timerC:
			if hasPending {
				_ = f.Apply(ctx, pending) //nolint:errcheck // Errors stored via fail
				hasPending = false
			}
		}
	}
}
