package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// decodeBundle runs one format's unmarshal step between the shared
// cancellation and shape checks.
func decodeBundle(
	ctx context.Context,
	cancelled, failed error,
	unmarshal func(dst *map[string]any) error,
) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(cancelled, err)
	}
	var data map[string]any
	if err := unmarshal(&data); err != nil {
		return nil, errors.Join(failed, err)
	}
	return bundleFromMap(data)
}

func hasExt(ext string, known ...string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return slices.Contains(known, ext)
}

// JSONParser reads bundles shaped {"<lang>": {"<group>": {"<id>": "..."}}}.
type JSONParser struct{}

func NewJSONParser() *JSONParser { return &JSONParser{} }

func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	return decodeBundle(ctx, ErrJSONParsingCancelled, ErrFailedToParseJSON, func(dst *map[string]any) error {
		return json.Unmarshal([]byte(content), dst)
	})
}

func (p *JSONParser) SupportsFileExtension(ext string) bool { return hasExt(ext, "json") }

// YAMLParser reads the same layout as JSONParser from YAML documents.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	return decodeBundle(ctx, ErrYAMLParsingCancelled, ErrFailedToParseYAML, func(dst *map[string]any) error {
		return yaml.Unmarshal([]byte(content), dst)
	})
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool { return hasExt(ext, "yaml", "yml") }

// TOMLParser reads bundles laid out as one table per language:
//
//	[de.validation]
//	minimum = "`%{value}` muss `>= %{minimum}` sein"
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser { return &TOMLParser{} }

func (p *TOMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	return decodeBundle(ctx, ErrTOMLParsingCancelled, ErrFailedToParseTOML, func(dst *map[string]any) error {
		_, err := toml.Decode(content, dst)
		return err
	})
}

func (p *TOMLParser) SupportsFileExtension(ext string) bool { return hasExt(ext, "toml") }
