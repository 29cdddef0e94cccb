// Package paneltest provides fixtures and assertions for testing code that
// uses panel facades.
package paneltest

import (
	"context"
	"testing"

	"github.com/zoobzio/panel"
)

// SampleJSON is a complete schema document describing all three widget
// kinds, in the shape served at panel.DefaultURL.
const SampleJSON = `{
  "view": ["hz", "selector", "picture", "hz"],
  "data": [
    {"name": "hz", "data": {"text": "Текстовый блок"}},
    {"name": "picture", "data": {"url": "https://pryaniky.com/static/img/logo-a-512.png", "text": "Пряники"}},
    {"name": "selector", "data": {
      "selectedId": 1,
      "variants": [
        {"id": 1, "text": "Вариант раз"},
        {"id": 2, "text": "Вариант два"},
        {"id": 3, "text": "Вариант три"}
      ]
    }}
  ]
}`

// SampleYAML is SampleJSON in YAML form.
const SampleYAML = `view: [hz, selector, picture, hz]
data:
  - name: hz
    data:
      text: Текстовый блок
  - name: picture
    data:
      url: https://pryaniky.com/static/img/logo-a-512.png
      text: Пряники
  - name: selector
    data:
      selectedId: 1
      variants:
        - {id: 1, text: Вариант раз}
        - {id: 2, text: Вариант два}
        - {id: 3, text: Вариант три}
`

// NewLoadedFacade returns a facade that has applied doc, failing the test
// if it could not be applied.
func NewLoadedFacade(t *testing.T, doc string) *panel.Facade {
	t.Helper()
	f := panel.New()
	if err := f.Apply(context.Background(), []byte(doc)); err != nil {
		t.Fatalf("failed to apply document: %v", err)
	}
	return f
}

// NewFollowedFacade returns a facade with debouncing disabled and a channel
// for feeding it documents through Follow.
func NewFollowedFacade(t *testing.T) (*panel.Facade, chan<- []byte, panel.Watcher) {
	t.Helper()
	ch := make(chan []byte, 10)
	f := panel.New().Debounce(0)
	return f, ch, panel.NewSyncChannelWatcher(ch)
}

// RequireState fails the test immediately if the facade is not in the
// expected state.
func RequireState(t *testing.T, f *panel.Facade, expected panel.State) {
	t.Helper()
	if got := f.State(); got != expected {
		t.Fatalf("expected state %s, got %s", expected, got)
	}
}

// RequireEmpty fails the test unless every widget is absent and the order
// is empty.
func RequireEmpty(t *testing.T, f *panel.Facade) {
	t.Helper()
	if _, ok := f.TextWidget(); ok {
		t.Fatal("expected no text widget")
	}
	if _, ok := f.PictureWidget(); ok {
		t.Fatal("expected no picture widget")
	}
	if _, ok := f.SelectorWidget(); ok {
		t.Fatal("expected no selector widget")
	}
	if order := f.CurrentOrder().Value(); len(order) != 0 {
		t.Fatalf("expected empty order, got %v", order)
	}
}

// Names returns the widget names of units, in order.
func Names(units []panel.RenderUnit) []string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name()
	}
	return names
}
