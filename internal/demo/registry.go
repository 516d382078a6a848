package demo

import (
	"net/http"
	"reflect"
	"slices"

	"github.com/dmitrymomot/valtree/pkg/binder"
	"github.com/dmitrymomot/valtree/pkg/format"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Entry describes one demo type for the CLI and the HTTP API.
type Entry struct {
	Name string
	Type reflect.Type
	// Decode parses data and validates the result. A validation failure
	// returns the decoded value along with a *format.Error.
	Decode func(f format.Format, data []byte) (any, error)
	// Bind extracts the type from a JSON request body.
	Bind func(b *binder.Binder, r *http.Request) (any, error)
}

var registry = map[string]Entry{}

func register[T validator.Validatable](name string) {
	registry[name] = Entry{
		Name: name,
		Type: reflect.TypeFor[T](),
		Decode: func(f format.Format, data []byte) (any, error) {
			return format.From[T](f, data)
		},
		Bind: func(b *binder.Binder, r *http.Request) (any, error) {
			return binder.JSON[T](b, r)
		},
	}
}

func init() {
	register[Signup]("signup")
	register[Address]("address")
	register[Order]("order")
	register[LineItem]("line_item")
	register[Feedback]("feedback")
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Names lists the registered type names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
