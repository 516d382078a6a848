package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidJSON     = errors.New("payload is not valid JSON")
	ErrSchemaViolation = errors.New("payload does not match schema")
	ErrCompile         = errors.New("schema compilation failed")
	ErrUnsupportedType = errors.New("type cannot be described by a schema")
)

// Violation is one schema failure located by a JSON pointer into the payload.
type Violation struct {
	Path    string `json:"path"`
	Keyword string `json:"keyword"`
	Message string `json:"message"`
}

// ViolationError lists every schema failure of a payload.
type ViolationError struct {
	Type       string      `json:"type"`
	Violations []Violation `json:"violations"`
}

func (e *ViolationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		path := v.Path
		if path == "" {
			path = "/"
		}
		parts[i] = fmt.Sprintf("%s: %s", path, v.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchemaViolation, e.Type, strings.Join(parts, "; "))
}

func (e *ViolationError) Unwrap() error {
	return ErrSchemaViolation
}
