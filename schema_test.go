package panel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRawDocument_DecodesWireNames(t *testing.T) {
	doc := mustDecode(fullDoc)

	if diff := cmp.Diff([]string{"hz", "picture", "selector"}, doc.Order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	sel, ok := doc.view("selector")
	if !ok {
		t.Fatal("expected selector view")
	}
	if sel.Fields.SelectedID == nil || *sel.Fields.SelectedID != 1 {
		t.Errorf("expected selectedId 1, got %v", sel.Fields.SelectedID)
	}
	want := []Variant{{1, "One"}, {2, "Two"}, {3, "Three"}}
	if diff := cmp.Diff(want, sel.Fields.Variants); diff != "" {
		t.Errorf("variants mismatch (-want +got):\n%s", diff)
	}
}

func TestRawDocument_AbsentFieldsAreNil(t *testing.T) {
	doc := mustDecode(`{"view": ["hz"], "data": [{"name": "hz", "data": {}}]}`)

	f := doc.Views[0].Fields
	if f.Text != nil || f.URL != nil || f.SelectedID != nil || f.Variants != nil {
		t.Errorf("expected every field absent, got %+v", f)
	}
}

func TestRawDocument_Validate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"missing view", `{"data": []}`, ErrMissingOrder},
		{"missing data", `{"view": []}`, ErrMissingViews},
		{"unnamed view", `{"view": [], "data": [{"data": {}}]}`, ErrUnnamedView},
		{"empty lists", `{"view": [], "data": []}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(JSONCodec{}, []byte(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRawDocument_ShapeMismatch(t *testing.T) {
	if _, err := Decode(JSONCodec{}, []byte(`{"view": "hz", "data": []}`)); err == nil {
		t.Error("expected error for non-list view")
	}
	if _, err := Decode(JSONCodec{}, []byte(`{"view": [], "data": [{"name": "selector", "data": {"selectedId": "one"}}]}`)); err == nil {
		t.Error("expected error for non-integer selectedId")
	}
}

func TestRawDocument_FirstViewWins(t *testing.T) {
	doc := mustDecode(`{"view": [], "data": [
		{"name": "hz", "data": {"text": "first"}},
		{"name": "hz", "data": {"text": "second"}}
	]}`)

	v, ok := doc.view("hz")
	if !ok || v.Fields.Text == nil || *v.Fields.Text != "first" {
		t.Errorf("expected first hz view, got %+v", v)
	}
}
