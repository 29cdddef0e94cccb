package panel

// Observable holds a value and notifies a single outward listener when the
// value is changed from the model side.
//
// Two mutators exist so that a two-way binding never loops:
//
//   - Set is used when the model changes; the listener is notified.
//   - ApplyExternal is used when the bound peer reports its own change; the
//     listener is not notified, so the peer never hears its own update.
//
// Observable is not safe for concurrent use. All calls, including listener
// delivery, happen on one logical thread.
type Observable[T any] struct {
	value    T
	listener func(T)
	gen      uint64
}

// NewObservable creates an Observable holding the initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set replaces the value and synchronously invokes the listener, if any,
// with the new value. The listener may read the cell; reads never notify.
func (o *Observable[T]) Set(v T) {
	o.value = v
	if fn := o.listener; fn != nil {
		fn(v)
	}
}

// ApplyExternal replaces the value without invoking the listener.
func (o *Observable[T]) ApplyExternal(v T) {
	o.value = v
}

// Attach installs fn as the outward listener, replacing any previous one.
func (o *Observable[T]) Attach(fn func(T)) {
	o.attach(fn)
}

// attach installs fn and returns the slot generation it now owns.
func (o *Observable[T]) attach(fn func(T)) uint64 {
	o.gen++
	o.listener = fn
	return o.gen
}

// Detach clears the outward listener.
func (o *Observable[T]) Detach() {
	o.gen++
	o.listener = nil
}

// Attached reports whether a listener is installed.
func (o *Observable[T]) Attached() bool {
	return o.listener != nil
}
