package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Format names a supported document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat accepts a format name or a file extension ("yml", ".toml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatOf picks the format from a file name's extension.
func FormatOf(filename string) (Format, error) {
	return ParseFormat(filepath.Ext(filename))
}

// FromJSON decodes data and validates the result. The decoded value is
// returned even when validation fails.
func FromJSON[T validator.Validatable](data []byte) (T, error) {
	return decode[T](JSON, data)
}

// FromYAML decodes data and validates the result.
func FromYAML[T validator.Validatable](data []byte) (T, error) {
	return decode[T](YAML, data)
}

// FromTOML decodes data and validates the result.
func FromTOML[T validator.Validatable](data []byte) (T, error) {
	return decode[T](TOML, data)
}

// From decodes data in format f and validates the result.
func From[T validator.Validatable](f Format, data []byte) (T, error) {
	return decode[T](f, data)
}

// FromReader reads r fully and behaves like From.
func FromReader[T validator.Validatable](f Format, r io.Reader) (T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, parseError(f, err)
	}
	return decode[T](f, data)
}

func decode[T validator.Validatable](f Format, data []byte) (T, error) {
	var v T
	if err := Unmarshal(f, data, &v); err != nil {
		return v, parseError(f, err)
	}
	if err := v.Validate(); err != nil {
		return v, validationError(f, err)
	}
	return v, nil
}

// Unmarshal decodes without validating.
func Unmarshal(f Format, data []byte, v any) error {
	switch f {
	case JSON:
		return json.Unmarshal(data, v)
	case YAML:
		return yaml.Unmarshal(data, v)
	case TOML:
		_, err := toml.Decode(string(data), v)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Marshal encodes v in format f. JSON output is indented.
func Marshal(f Format, v any) ([]byte, error) {
	switch f {
	case JSON:
		return ToJSON(v)
	case YAML:
		return ToYAML(v)
	case TOML:
		return ToTOML(v)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// ToJSON encodes v as indented JSON without HTML escaping.
func ToJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToYAML encodes v as YAML with two-space indentation.
func ToYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToTOML encodes v as TOML. v must be a struct or a map.
func ToTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render encodes v in format f through its JSON form, so MarshalJSON methods
// apply and YAML keeps the JSON key order.
func Render(f Format, v any) ([]byte, error) {
	switch f {
	case JSON:
		return ToJSON(v)
	case YAML, TOML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if f == TOML {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
		return ToTOML(typedNumbers(m))
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)
	return ToYAML(&node)
}

// typedNumbers replaces json.Number leaves with int64, uint64 or float64 so
// TOML keeps integers as integers.
func typedNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = typedNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = typedNumbers(e)
		}
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if n, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	}
	return v
}

// blockStyle drops the flow and quoting styles a JSON source leaves on the nodes.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
