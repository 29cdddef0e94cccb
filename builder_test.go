package panel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild_AllWidgetsPresent(t *testing.T) {
	m := Build(mustDecode(fullDoc))

	if m.Text == nil || m.Picture == nil || m.Selector == nil {
		t.Fatalf("expected all widgets, got text=%v picture=%v selector=%v", m.Text, m.Picture, m.Selector)
	}
	if diff := cmp.Diff(TextWidget{Name: "hz", Text: "Hello"}, *m.Text); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
	wantPicture := PictureWidget{Name: "picture", Text: "Logo", URL: "https://example.com/logo.png"}
	if diff := cmp.Diff(wantPicture, *m.Picture); diff != "" {
		t.Errorf("picture mismatch (-want +got):\n%s", diff)
	}
	if m.Selector.Name != "selector" {
		t.Errorf("expected selector name, got %q", m.Selector.Name)
	}
	if m.Selector.SelectedID.Value() != 1 {
		t.Errorf("expected selectedID 1, got %d", m.Selector.SelectedID.Value())
	}
	if diff := cmp.Diff([]Variant{{1, "One"}, {2, "Two"}, {3, "Three"}}, m.Selector.Variants); diff != "" {
		t.Errorf("variants mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"hz", "picture", "selector"}, m.Order.Value()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_MissingPictureURL(t *testing.T) {
	m, skips := NewBuilder(SelectionPassthrough).build(mustDecode(noPictureURLDoc))

	if m.Picture != nil {
		t.Errorf("expected picture absent, got %+v", m.Picture)
	}
	if m.Text == nil {
		t.Error("expected text present")
	}
	if m.Selector == nil {
		t.Error("expected selector present")
	}
	if diff := cmp.Diff([]Skip{{Kind: KindPicture, Reason: reasonNoURL}}, skips); diff != "" {
		t.Errorf("skips mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		view   RawView
		kind   Kind
		reason string
	}{
		{"text without text", RawView{Name: "hz"}, KindText, reasonNoText},
		{"picture without text", RawView{Name: "picture", Fields: RawFields{URL: ptr("u")}}, KindPicture, reasonNoText},
		{"picture without url", RawView{Name: "picture", Fields: RawFields{Text: ptr("t")}}, KindPicture, reasonNoURL},
		{"selector without selection", RawView{Name: "selector", Fields: RawFields{Variants: []Variant{{1, "a"}}}}, KindSelector, reasonNoSelection},
		{"selector without variants", RawView{Name: "selector", Fields: RawFields{SelectedID: ptr(1)}}, KindSelector, reasonNoVariants},
		{"selector with empty variants", RawView{Name: "selector", Fields: RawFields{SelectedID: ptr(1), Variants: []Variant{}}}, KindSelector, reasonNoVariants},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := RawDocument{Order: []string{}, Views: []RawView{tt.view}}
			m, skips := NewBuilder(SelectionPassthrough).build(doc)

			if m.Text != nil || m.Picture != nil || m.Selector != nil {
				t.Errorf("expected no widgets, got %+v", m)
			}
			var found bool
			for _, s := range skips {
				if s.Kind == tt.kind {
					found = true
					if s.Reason != tt.reason {
						t.Errorf("expected reason %q, got %q", tt.reason, s.Reason)
					}
				}
			}
			if !found {
				t.Errorf("expected a skip for %s", tt.kind)
			}
		})
	}
}

func TestBuild_AbsentViewsAreSkipped(t *testing.T) {
	m, skips := NewBuilder(SelectionPassthrough).build(RawDocument{Order: []string{"hz"}, Views: []RawView{}})

	if m.Text != nil || m.Picture != nil || m.Selector != nil {
		t.Errorf("expected no widgets, got %+v", m)
	}
	want := []Skip{
		{Kind: KindText, Reason: reasonAbsent},
		{Kind: KindPicture, Reason: reasonAbsent},
		{Kind: KindSelector, Reason: reasonAbsent},
	}
	if diff := cmp.Diff(want, skips); diff != "" {
		t.Errorf("skips mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_OrderCopiedUnvalidated(t *testing.T) {
	doc := RawDocument{
		Order: []string{"bogus", "hz", "hz", "selector"},
		Views: []RawView{{Name: "hz", Fields: RawFields{Text: ptr("x")}}},
	}
	m := Build(doc)

	if diff := cmp.Diff(doc.Order, m.Order.Value()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	doc.Order[0] = "changed"
	if m.Order.Value()[0] != "bogus" {
		t.Error("expected built order to be a copy")
	}
}

func TestBuild_SelectionPolicies(t *testing.T) {
	doc := RawDocument{
		Order: []string{"selector"},
		Views: []RawView{{Name: "selector", Fields: RawFields{
			SelectedID: ptr(5),
			Variants:   []Variant{{1, "a"}, {2, "b"}},
		}}},
	}

	if m := NewBuilder(SelectionPassthrough).Build(doc); m.Selector == nil || m.Selector.SelectedID.Value() != 5 {
		t.Errorf("passthrough: expected selectedID 5, got %+v", m.Selector)
	}
	if m := NewBuilder(SelectionClamp).Build(doc); m.Selector == nil || m.Selector.SelectedID.Value() != 2 {
		t.Errorf("clamp: expected selectedID 2, got %+v", m.Selector)
	}
	if m := NewBuilder(SelectionReject).Build(doc); m.Selector != nil {
		t.Errorf("reject: expected selector absent, got %+v", m.Selector)
	}
}

func TestBuild_FreshCellsPerCall(t *testing.T) {
	doc := mustDecode(fullDoc)
	a := Build(doc)
	b := Build(doc)

	if a.Order == b.Order {
		t.Error("expected distinct order cells")
	}
	if a.Selector.SelectedID == b.Selector.SelectedID {
		t.Error("expected distinct selection cells")
	}

	a.Selector.SelectedID.Set(3)
	if b.Selector.SelectedID.Value() != 1 {
		t.Error("expected builds not to share state")
	}
}

func TestSelectorWidget_Selected(t *testing.T) {
	s := SelectorWidget{SelectedID: NewObservable(2), Variants: []Variant{{1, "a"}, {2, "b"}}}

	v, ok := s.Selected()
	if !ok || v.Text != "b" {
		t.Errorf("expected variant b, got %+v, %v", v, ok)
	}

	s.SelectedID.Set(3)
	if _, ok := s.Selected(); ok {
		t.Error("expected out-of-range selection to report false")
	}
	s.SelectedID.Set(0)
	if _, ok := s.Selected(); ok {
		t.Error("expected zero selection to report false")
	}
}
