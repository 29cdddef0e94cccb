package panel

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec defines the deserialization contract for schema documents.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// YAMLCodec implements Codec using gopkg.in/yaml.v3. Field names match the
// JSON wire format.
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

var (
	_ Codec = JSONCodec{}
	_ Codec = YAMLCodec{}
)

// CodecFor returns the codec registered for a format name ("json", "yaml"
// or "yml").
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

// CodecForPath picks a codec from a file extension, defaulting to JSON.
func CodecForPath(path string) Codec {
	if c, err := CodecFor(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return c
	}
	return JSONCodec{}
}

// Decode unmarshals raw with c and validates the document shape.
func Decode(c Codec, raw []byte) (RawDocument, error) {
	var doc RawDocument
	if err := c.Unmarshal(raw, &doc); err != nil {
		return RawDocument{}, err
	}
	if err := doc.Validate(); err != nil {
		return RawDocument{}, err
	}
	return doc, nil
}
