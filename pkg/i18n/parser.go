package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes a translation bundle. The outer map is keyed by language
// code, the inner one holds (possibly nested) message ids.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext (with or without
	// the leading dot) are handled by this parser.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, or nil when none fits.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}

// MultiParser dispatches on file extension, so one directory may mix formats.
type MultiParser struct{}

// NewMultiParser returns a parser accepting every supported format.
func NewMultiParser() *MultiParser {
	return &MultiParser{}
}

// Parse handles content of unknown origin as YAML, which also accepts JSON.
// Adapters call ParseFile, which knows the file name.
func (p *MultiParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	return NewYAMLParser().Parse(ctx, content)
}

// ParseFile parses content using the parser registered for filename.
func (p *MultiParser) ParseFile(ctx context.Context, filename, content string) (map[string]map[string]any, error) {
	parser := NewParserForFile(filename)
	if parser == nil {
		return nil, ErrFailedToParseFile
	}
	return parser.Parse(ctx, content)
}

// SupportsFileExtension implements Parser.
func (p *MultiParser) SupportsFileExtension(ext string) bool {
	return NewParserForFile("x."+strings.TrimPrefix(ext, ".")) != nil
}

type fileParser interface {
	ParseFile(ctx context.Context, filename, content string) (map[string]map[string]any, error)
}

func parseNamed(ctx context.Context, p Parser, filename, content string) (map[string]map[string]any, error) {
	if fp, ok := p.(fileParser); ok {
		return fp.ParseFile(ctx, filename, content)
	}
	return p.Parse(ctx, content)
}

// bundleFromMap checks that every top-level entry is a language map.
func bundleFromMap(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, &BundleError{Lang: lang, Got: val}
		}
		result[lang] = transMap
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
