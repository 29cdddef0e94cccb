package panel

// TextWidget is a text label.
type TextWidget struct {
	Name string
	Text string
}

// PictureWidget is an image with a caption.
type PictureWidget struct {
	Name string
	Text string
	URL  string
}

// SelectorWidget is a single-choice selector. SelectedID is 1-based.
type SelectorWidget struct {
	Name       string
	SelectedID *Observable[int]
	Variants   []Variant
}

// Selected returns the variant at the current 1-based selection, or false
// if the selection is outside 1..len(Variants).
func (s SelectorWidget) Selected() (Variant, bool) {
	i := s.SelectedID.Value() - 1
	if i < 0 || i >= len(s.Variants) {
		return Variant{}, false
	}
	return s.Variants[i], true
}

// ModelState is the validated model built from a schema document. Each
// widget is nil when the document did not describe it completely.
type ModelState struct {
	Text     *TextWidget
	Picture  *PictureWidget
	Selector *SelectorWidget
	Order    *Observable[[]string]
}

// NewModelState returns a state with no widgets and an empty order.
func NewModelState() *ModelState {
	return &ModelState{Order: NewObservable([]string{})}
}
