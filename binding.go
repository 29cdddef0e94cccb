package panel

// Binding pairs an Observable with a control. It owns the cell's listener
// slot from Bind until Unbind.
//
// Model-side changes (Observable.Set) reach the control through the
// onModelChange callback. Control-side changes are reported with Changed,
// which goes through ApplyExternal and therefore never echoes back.
type Binding[T any] struct {
	cell  *Observable[T]
	gen   uint64
	bound bool
}

// Bind attaches onModelChange to cell, replacing whatever listener was
// installed before. Callers that rebind a control to a new cell must Unbind
// the previous Binding first.
func Bind[T any](cell *Observable[T], onModelChange func(T)) *Binding[T] {
	b := &Binding[T]{cell: cell, bound: true}
	b.gen = cell.attach(func(v T) {
		if b.bound {
			onModelChange(v)
		}
	})
	return b
}

// Changed reports a control-originated value into the cell.
func (b *Binding[T]) Changed(v T) {
	if !b.bound {
		return
	}
	b.cell.ApplyExternal(v)
}

// Unbind stops delivery to the control. The cell's listener slot is only
// cleared if no other binding has replaced this one since.
func (b *Binding[T]) Unbind() {
	if !b.bound {
		return
	}
	b.bound = false
	if b.cell.gen == b.gen {
		b.cell.Detach()
	}
}

// Cell returns the bound Observable.
func (b *Binding[T]) Cell() *Observable[T] {
	return b.cell
}
