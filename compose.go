package panel

import (
	"context"
	"strings"

	"github.com/zoobzio/capitan"
)

// RenderUnit describes one widget for a renderer. Only the field matching
// Kind is populated.
type RenderUnit struct {
	Kind     Kind
	Text     TextWidget
	Picture  PictureWidget
	Selector SelectorWidget
}

// Name returns the name of the described widget.
func (u RenderUnit) Name() string {
	switch u.Kind {
	case KindText:
		return u.Text.Name
	case KindPicture:
		return u.Picture.Name
	case KindSelector:
		return u.Selector.Name
	default:
		return ""
	}
}

// Accessor reads the widgets of a model. Facade implements it.
type Accessor interface {
	TextWidget() (TextWidget, bool)
	PictureWidget() (PictureWidget, bool)
	SelectorWidget() (SelectorWidget, bool)
}

// Compose turns an order into render units.
//
// A name whose widget is absent contributes nothing and composition goes
// on. A name no widget kind claims ends composition: later names are not
// looked at, even if their widgets exist.
func Compose(order []string, state Accessor) []RenderUnit {
	units := make([]RenderUnit, 0, len(order))
	for _, name := range order {
		kind, ok := KindOf(name)
		if !ok {
			break
		}
		if u, ok := unitFor(kind, state); ok {
			units = append(units, u)
		}
	}
	return units
}

func unitFor(kind Kind, state Accessor) (RenderUnit, bool) {
	u := RenderUnit{Kind: kind}
	var ok bool
	switch kind {
	case KindText:
		u.Text, ok = state.TextWidget()
	case KindPicture:
		u.Picture, ok = state.PictureWidget()
	case KindSelector:
		u.Selector, ok = state.SelectorWidget()
	}
	return u, ok
}

// OrderedAccessor is an Accessor with a live order cell.
type OrderedAccessor interface {
	Accessor
	CurrentOrder() *Observable[[]string]
}

// Composer re-runs Compose every time the order cell changes and hands
// the result to a render callback.
type Composer struct {
	state   OrderedAccessor
	render  func([]RenderUnit)
	binding *Binding[[]string]
	units   []RenderUnit
}

// NewComposer creates a Composer. It does nothing until Start.
func NewComposer(state OrderedAccessor, render func([]RenderUnit)) *Composer {
	return &Composer{state: state, render: render}
}

// Start takes over the order cell's listener slot and renders the current
// order once. Calling Start again rebinds.
func (c *Composer) Start() {
	c.Stop()
	order := c.state.CurrentOrder()
	c.binding = Bind(order, c.run)
	c.run(order.Value())
}

// Stop releases the order cell.
func (c *Composer) Stop() {
	if c.binding != nil {
		c.binding.Unbind()
		c.binding = nil
	}
}

// Units returns the most recently composed units.
func (c *Composer) Units() []RenderUnit {
	return c.units
}

func (c *Composer) run(order []string) {
	c.units = Compose(order, c.state)
	capitan.Emit(context.Background(), ComposeCompleted,
		KeyUnits.Field(len(c.units)),
		KeyOrder.Field(strings.Join(order, ",")),
	)
	if c.render != nil {
		c.render(c.units)
	}
}
