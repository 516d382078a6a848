package i18n

import (
	"fmt"
	"net/http"
)

// LangExtractor is a function type that extracts language information from an HTTP request.
// It returns an empty string when the request carries no usable preference.
type LangExtractor func(r *http.Request) string

// BundleError reports a top-level bundle entry that is not a language map.
type BundleError struct {
	Lang string
	Got  any
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("invalid bundle structure for language %q: expected map, got %T", e.Lang, e.Got)
}

// Is lets errors.Is match ErrInvalidBundleStructure.
func (e *BundleError) Is(target error) bool {
	return target == ErrInvalidBundleStructure
}

// ErrLanguageNotSupported indicates that the requested language is not available
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
