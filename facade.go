package panel

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"
)

// DefaultDebounce is the default debounce duration for Follow.
const DefaultDebounce = 100 * time.Millisecond

// Facade owns the model built from schema documents. It exposes read
// accessors per widget kind and the mutations a host may trigger.
//
// The model is created once, by New, and only ever mutated in place, so
// listeners attached to its cells survive reloads. Until a document has
// been applied every widget is absent and the order is empty.
//
// Model access is single-threaded. Fetch is the only method that may run
// on another goroutine; hand its result to Settle on the model's goroutine.
type Facade struct {
	pipeline pipz.Chainable[*Request]
	builder  Builder
	codec    Codec
	clock    clockz.Clock
	metrics  MetricsProvider
	debounce time.Duration
	rand     *rand.Rand

	model *ModelState

	state        atomic.Int32
	applied      atomic.Bool
	lastError    atomic.Pointer[error]
	errorHistory *errorRing
}

// New creates a Facade with an empty model. Options configure the fetch
// pipeline used by Fetch and Load.
//
// Example:
//
//	facade := panel.New(
//	    panel.WithRetry(3),
//	    panel.WithTimeout(5*time.Second),
//	).SelectionPolicy(panel.SelectionClamp)
//
//	if err := facade.Load(ctx, panel.NewHTTPSource(panel.DefaultURL, nil)); err != nil {
//	    log.Printf("schema unavailable, rendering empty: %v", err)
//	}
func New(opts ...Option) *Facade {
	f := &Facade{
		pipeline: buildPipeline(opts),
		builder:  NewBuilder(SelectionPassthrough),
		codec:    JSONCodec{},
		clock:    clockz.RealClock,
		debounce: DefaultDebounce,
		model:    NewModelState(),
	}
	f.state.Store(int32(StateLoading))
	return f
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Codec sets the codec for decoding documents. Default: JSONCodec.
func (f *Facade) Codec(codec Codec) *Facade {
	f.codec = codec
	return f
}

// Clock sets the clock used for timing and debouncing.
func (f *Facade) Clock(clock clockz.Clock) *Facade {
	f.clock = clock
	return f
}

// Metrics sets a metrics provider.
func (f *Facade) Metrics(provider MetricsProvider) *Facade {
	f.metrics = provider
	return f
}

// Debounce sets how long Follow waits for further changes before applying
// one. Zero or less applies every change immediately. Default: 100ms.
func (f *Facade) Debounce(d time.Duration) *Facade {
	f.debounce = d
	return f
}

// ErrorHistorySize sets the number of recent errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
func (f *Facade) ErrorHistorySize(n int) *Facade {
	f.errorHistory = newErrorRing(n)
	return f
}

// SelectionPolicy sets how out-of-range selections are built.
// Default: SelectionPassthrough.
func (f *Facade) SelectionPolicy(p SelectionPolicy) *Facade {
	f.builder = NewBuilder(p)
	return f
}

// Rand sets the random source used by ShuffleOrder.
func (f *Facade) Rand(r *rand.Rand) *Facade {
	f.rand = r
	return f
}

// -----------------------------------------------------------------------------
// Load state
// -----------------------------------------------------------------------------

// State returns the current load state.
func (f *Facade) State() State {
	return State(f.state.Load())
}

// LastError returns the last load error, or nil after a successful load.
func (f *Facade) LastError() error {
	ptr := f.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns recent load errors, oldest first. Returns nil unless
// ErrorHistorySize was set.
func (f *Facade) ErrorHistory() []error {
	return f.errorHistory.all()
}

// -----------------------------------------------------------------------------
// Loading
// -----------------------------------------------------------------------------

// Fetch runs the fetch pipeline against src and returns the raw document.
// It does not touch the model.
func (f *Facade) Fetch(ctx context.Context, src Source) ([]byte, error) {
	capitan.Emit(ctx, FetchStarted, KeySource.Field(sourceName(src)))

	out, err := f.pipeline.Process(ctx, &Request{Source: src})
	if err != nil {
		return nil, err
	}
	return out.Raw, nil
}

// Load fetches from src and applies the result. A failure leaves the model
// as it was and is returned for logging only; the facade stays renderable.
func (f *Facade) Load(ctx context.Context, src Source) error {
	start := f.clock.Now()
	raw, err := f.Fetch(ctx, src)
	if err != nil {
		f.fail(ctx, "fetch", f.clock.Since(start), err)
		return fmt.Errorf("fetch failed: %w", err)
	}
	return f.Apply(ctx, raw)
}

// Settle completes a fetch performed elsewhere: it applies raw, or records
// fetchErr if it is non-nil.
func (f *Facade) Settle(ctx context.Context, raw []byte, fetchErr error) error {
	if fetchErr != nil {
		f.fail(ctx, "fetch", 0, fetchErr)
		return fmt.Errorf("fetch failed: %w", fetchErr)
	}
	return f.Apply(ctx, raw)
}

// Apply decodes raw, builds a model from it and merges that model into the
// owned one. On failure the previous model is retained.
func (f *Facade) Apply(ctx context.Context, raw []byte) error {
	start := f.clock.Now()

	doc, err := Decode(f.codec, raw)
	if err != nil {
		f.fail(ctx, "decode", f.clock.Since(start), err)
		return fmt.Errorf("decode failed: %w", err)
	}

	next, skips := f.builder.build(doc)
	for _, s := range skips {
		capitan.Emit(ctx, WidgetSkipped,
			KeyKind.Field(s.Kind.String()),
			KeyReason.Field(s.Reason),
		)
		if f.metrics != nil {
			f.metrics.OnWidgetSkipped(s.Kind)
		}
	}

	f.lastError.Store(nil)
	f.errorHistory.clear()
	f.applied.Store(true)
	f.transitionState(ctx, f.State(), StateHealthy)

	f.merge(next)

	elapsed := f.clock.Since(start)
	capitan.Emit(ctx, ModelApplied,
		KeyOrder.Field(strings.Join(doc.Order, ",")),
		KeyDuration.Field(elapsed),
	)
	if f.metrics != nil {
		f.metrics.OnLoadSuccess(elapsed)
	}
	return nil
}

// merge copies next into the owned model. The selector cell and the order
// cell are kept; their values change through Set so bound listeners hear it.
// The order is written last so composition sees the merged widgets.
func (f *Facade) merge(next *ModelState) {
	m := f.model
	m.Text = next.Text
	m.Picture = next.Picture

	switch {
	case next.Selector == nil:
		m.Selector = nil
	case m.Selector == nil:
		m.Selector = next.Selector
	default:
		m.Selector.Name = next.Selector.Name
		m.Selector.Variants = next.Selector.Variants
		if id := next.Selector.SelectedID.Value(); id != m.Selector.SelectedID.Value() {
			m.Selector.SelectedID.Set(id)
		}
	}

	m.Order.Set(next.Order.Value())
}

func (f *Facade) fail(ctx context.Context, stage string, elapsed time.Duration, err error) {
	e := err
	f.lastError.Store(&e)
	f.errorHistory.push(err)
	f.transitionState(ctx, f.State(), f.failureState())

	signal := FetchFailed
	if stage == "decode" {
		signal = DecodeFailed
	}
	capitan.Emit(ctx, signal, KeyError.Field(err.Error()))
	if f.metrics != nil {
		f.metrics.OnLoadFailure(stage, elapsed)
	}
}

// failureState depends on whether a document has ever been applied.
func (f *Facade) failureState() State {
	if !f.applied.Load() {
		return StateEmpty
	}
	return StateDegraded
}

func (f *Facade) transitionState(ctx context.Context, oldState, newState State) {
	if oldState == newState {
		return
	}
	f.state.Store(int32(newState))
	capitan.Emit(ctx, StateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
	if f.metrics != nil {
		f.metrics.OnStateChange(oldState, newState)
	}
}

// -----------------------------------------------------------------------------
// Host surface
// -----------------------------------------------------------------------------

// CurrentOrder returns the live order cell.
func (f *Facade) CurrentOrder() *Observable[[]string] {
	return f.model.Order
}

// TextWidget returns the text widget, or false if it is absent.
func (f *Facade) TextWidget() (TextWidget, bool) {
	if f.model.Text == nil {
		return TextWidget{}, false
	}
	return *f.model.Text, true
}

// PictureWidget returns the picture widget, or false if it is absent.
func (f *Facade) PictureWidget() (PictureWidget, bool) {
	if f.model.Picture == nil {
		return PictureWidget{}, false
	}
	return *f.model.Picture, true
}

// SelectorWidget returns the selector widget, or false if it is absent.
// The returned value shares its SelectedID cell with the model.
func (f *Facade) SelectorWidget() (SelectorWidget, bool) {
	if f.model.Selector == nil {
		return SelectorWidget{}, false
	}
	return *f.model.Selector, true
}

// SetSelectedID selects variant n on behalf of the host. The change goes
// through Set, so a bound control is told about it. No-op without a selector.
func (f *Facade) SetSelectedID(n int) {
	sel := f.model.Selector
	if sel == nil {
		return
	}
	sel.SelectedID.Set(n)
	capitan.Emit(context.Background(), SelectionChanged, KeySelectedID.Field(n))
}

// ShuffleOrder replaces the order with a random permutation of itself and
// notifies the order listener once. The permutation may equal the old order.
func (f *Facade) ShuffleOrder() {
	order := append([]string{}, f.model.Order.Value()...)
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if f.rand != nil {
		f.rand.Shuffle(len(order), swap)
	} else {
		rand.Shuffle(len(order), swap)
	}

	f.model.Order.Set(order)
	capitan.Emit(context.Background(), OrderShuffled, KeyOrder.Field(strings.Join(order, ",")))
}
