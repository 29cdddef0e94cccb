package panel

import "errors"

// Document shape errors.
var (
	// ErrMissingOrder is returned when a document has no "view" list.
	ErrMissingOrder = errors.New("document has no view order")

	// ErrMissingViews is returned when a document has no "data" list.
	ErrMissingViews = errors.New("document has no view data")

	// ErrUnnamedView is returned when a "data" entry has no name.
	ErrUnnamedView = errors.New("view data entry has no name")
)

// RawDocument is the decoded schema document.
//
// Order and Views are sourced independently: a name in Order need not have
// an entry in Views, and the reverse.
type RawDocument struct {
	Order []string  `json:"view" yaml:"view"`
	Views []RawView `json:"data" yaml:"data"`
}

// RawView carries the content of one named view.
type RawView struct {
	Name   string    `json:"name" yaml:"name"`
	Fields RawFields `json:"data" yaml:"data"`
}

// RawFields holds every field a view may carry. All are optional on the
// wire; nil means absent.
type RawFields struct {
	Text       *string   `json:"text,omitempty" yaml:"text,omitempty"`
	URL        *string   `json:"url,omitempty" yaml:"url,omitempty"`
	SelectedID *int      `json:"selectedId,omitempty" yaml:"selectedId,omitempty"`
	Variants   []Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Variant is one selectable option of a selector.
type Variant struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Validate checks the document shape. Missing widget fields are not shape
// errors; they only cause the affected widget to be omitted.
func (d RawDocument) Validate() error {
	if d.Order == nil {
		return ErrMissingOrder
	}
	if d.Views == nil {
		return ErrMissingViews
	}
	for _, v := range d.Views {
		if v.Name == "" {
			return ErrUnnamedView
		}
	}
	return nil
}

// view returns the first view carrying the given name.
func (d RawDocument) view(name string) (RawView, bool) {
	for _, v := range d.Views {
		if v.Name == name {
			return v, true
		}
	}
	return RawView{}, false
}
