package panel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/clockz"
)

func TestFollow_CoalescesBurstAndAppliesPendingOnClose(t *testing.T) {
	ch := make(chan []byte, 3)
	ch <- []byte(`{"view": ["hz"], "data": []}`)
	ch <- []byte(`{"view": ["picture"], "data": []}`)
	ch <- []byte(`{"view": ["selector", "hz"], "data": []}`)
	close(ch)

	f := New().Clock(clockz.NewFakeClock())
	var got [][]string
	f.CurrentOrder().Attach(func(v []string) { got = append(got, v) })

	if err := f.Follow(context.Background(), NewSyncChannelWatcher(ch)); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	if diff := cmp.Diff([][]string{{"selector", "hz"}}, got); diff != "" {
		t.Errorf("applied orders mismatch (-want +got):\n%s", diff)
	}
	if f.State() != StateHealthy {
		t.Errorf("expected healthy, got %s", f.State())
	}
}

func TestFollow_NoDebounceAppliesEveryChange(t *testing.T) {
	ch := make(chan []byte, 3)
	ch <- []byte(`{"view": ["a"], "data": []}`)
	ch <- []byte(`{"view": ["b"], "data": []}`)
	ch <- []byte(`{"view": ["c"], "data": []}`)
	close(ch)

	f := New().Debounce(0)
	calls := 0
	f.CurrentOrder().Attach(func([]string) { calls++ })

	if err := f.Follow(context.Background(), NewSyncChannelWatcher(ch)); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 notifications, got %d", calls)
	}
}

func TestFollow_BadDocumentDoesNotStop(t *testing.T) {
	ch := make(chan []byte, 2)
	ch <- []byte("garbage")
	ch <- []byte(fullDoc)
	close(ch)

	f := New().Debounce(0).ErrorHistorySize(5)
	if err := f.Follow(context.Background(), NewSyncChannelWatcher(ch)); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	if f.State() != StateHealthy {
		t.Errorf("expected healthy, got %s", f.State())
	}
	if _, ok := f.TextWidget(); !ok {
		t.Error("expected text widget from second document")
	}
}

func TestFollow_ContextCanceled(t *testing.T) {
	ch := make(chan []byte)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Follow(ctx, NewSyncChannelWatcher(ch))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type failingWatcher struct{}

func (failingWatcher) Watch(context.Context) (<-chan []byte, error) {
	return nil, errors.New("cannot watch")
}

func TestFollow_WatchError(t *testing.T) {
	if err := New().Follow(context.Background(), failingWatcher{}); err == nil {
		t.Error("expected watcher error")
	}
}

func TestFollow_DebounceTimerApplies(t *testing.T) {
	clock := clockz.NewFakeClock()
	ch := make(chan []byte, 1)
	ch <- []byte(`{"view": ["hz"], "data": []}`)

	f := New().Clock(clock).Debounce(100 * time.Millisecond)
	applied := make(chan []string, 1)
	f.CurrentOrder().Attach(func(v []string) { applied <- v })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f.Follow(ctx, NewSyncChannelWatcher(ch))
	}()

	// Allow goroutine to receive the change and start the timer
	time.Sleep(10 * time.Millisecond)

	select {
	case v := <-applied:
		t.Fatalf("applied %v before debounce elapsed", v)
	default:
	}

	clock.Advance(150 * time.Millisecond)
	clock.BlockUntilReady()

	select {
	case v := <-applied:
		if diff := cmp.Diff([]string{"hz"}, v); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for debounced apply")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
