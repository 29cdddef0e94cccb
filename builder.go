package panel

// Skip records why a widget kind was left out of a built model.
type Skip struct {
	Kind   Kind
	Reason string
}

// Skip reasons.
const (
	reasonAbsent         = "no view data"
	reasonNoText         = "missing text"
	reasonNoURL          = "missing url"
	reasonNoSelection    = "missing selectedId"
	reasonNoVariants     = "no variants"
	reasonOutOfRangePick = "selectedId out of range"
)

// Builder translates schema documents into models.
type Builder struct {
	policy SelectionPolicy
}

// NewBuilder creates a Builder applying the given selection policy.
func NewBuilder(policy SelectionPolicy) Builder {
	return Builder{policy: policy}
}

// Build translates doc using SelectionPassthrough.
func Build(doc RawDocument) *ModelState {
	return NewBuilder(SelectionPassthrough).Build(doc)
}

// Build translates doc into a fresh model. Widgets whose required fields
// are absent are omitted. The order is copied as is, including names with
// no built widget. Build performs no I/O and is deterministic.
func (b Builder) Build(doc RawDocument) *ModelState {
	m, _ := b.build(doc)
	return m
}

// build is Build plus the list of omitted kinds.
func (b Builder) build(doc RawDocument) (*ModelState, []Skip) {
	m := &ModelState{
		Order: NewObservable(append([]string{}, doc.Order...)),
	}
	var skips []Skip

	for _, k := range Kinds() {
		view, ok := doc.view(k.WireName())
		if !ok {
			skips = append(skips, Skip{Kind: k, Reason: reasonAbsent})
			continue
		}

		var reason string
		switch k {
		case KindText:
			m.Text, reason = textWidget(view)
		case KindPicture:
			m.Picture, reason = pictureWidget(view)
		case KindSelector:
			m.Selector, reason = selectorWidget(view, b.policy)
		}
		if reason != "" {
			skips = append(skips, Skip{Kind: k, Reason: reason})
		}
	}

	return m, skips
}

func textWidget(v RawView) (*TextWidget, string) {
	if v.Fields.Text == nil {
		return nil, reasonNoText
	}
	return &TextWidget{Name: v.Name, Text: *v.Fields.Text}, ""
}

func pictureWidget(v RawView) (*PictureWidget, string) {
	if v.Fields.Text == nil {
		return nil, reasonNoText
	}
	if v.Fields.URL == nil {
		return nil, reasonNoURL
	}
	return &PictureWidget{Name: v.Name, Text: *v.Fields.Text, URL: *v.Fields.URL}, ""
}

func selectorWidget(v RawView, policy SelectionPolicy) (*SelectorWidget, string) {
	if v.Fields.SelectedID == nil {
		return nil, reasonNoSelection
	}
	if len(v.Fields.Variants) == 0 {
		return nil, reasonNoVariants
	}
	id, ok := policy.resolve(*v.Fields.SelectedID, len(v.Fields.Variants))
	if !ok {
		return nil, reasonOutOfRangePick
	}
	return &SelectorWidget{
		Name:       v.Name,
		SelectedID: NewObservable(id),
		Variants:   append([]Variant{}, v.Fields.Variants...),
	}, ""
}
