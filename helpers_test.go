package panel

import "context"

const fullDoc = `{
  "view": ["hz", "picture", "selector"],
  "data": [
    {"name": "hz", "data": {"text": "Hello"}},
    {"name": "picture", "data": {"text": "Logo", "url": "https://example.com/logo.png"}},
    {"name": "selector", "data": {
      "selectedId": 1,
      "variants": [
        {"id": 1, "text": "One"},
        {"id": 2, "text": "Two"},
        {"id": 3, "text": "Three"}
      ]
    }}
  ]
}`

const noPictureURLDoc = `{
  "view": ["hz", "picture", "selector"],
  "data": [
    {"name": "hz", "data": {"text": "Hello"}},
    {"name": "picture", "data": {"text": "Logo"}},
    {"name": "selector", "data": {"selectedId": 2, "variants": [{"id": 1, "text": "One"}, {"id": 2, "text": "Two"}]}}
  ]
}`

func ptr[T any](v T) *T {
	return &v
}

func mustDecode(raw string) RawDocument {
	doc, err := Decode(JSONCodec{}, []byte(raw))
	if err != nil {
		panic(err)
	}
	return doc
}

func loaded(raw string) *Facade {
	f := New()
	if err := f.Apply(context.Background(), []byte(raw)); err != nil {
		panic(err)
	}
	return f
}
