package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Errors is the aggregate error tree. Exactly three shapes implement it:
// NewTypeErrors for scalars, *ArrayErrors for sequences and *ObjectErrors for
// keyed values.
type Errors interface {
	error
	json.Marshaler
	// IsEmpty reports whether the tree holds no failure at any depth.
	IsEmpty() bool
	// Count returns the number of leaf errors at every depth.
	Count() int
	shape() string
}

// NewTypeErrors holds failures of a bare scalar or single-field wrapper.
type NewTypeErrors VecErrors

// ArrayErrors holds failures about a sequence itself (Errors) and, sparsely,
// the trees of elements that failed (Items).
type ArrayErrors struct {
	Errors VecErrors
	Items  *orderedmap.OrderedMap[int, Errors]
}

// ObjectErrors holds failures about a keyed value itself (Errors) and, sparsely,
// the trees of properties that failed, keyed by external name.
type ObjectErrors struct {
	Errors     VecErrors
	Properties *orderedmap.OrderedMap[string, Errors]
}

// NewArrayErrors returns an array tree with the given sequence-level failures.
func NewArrayErrors(errs ...Error) *ArrayErrors {
	return &ArrayErrors{
		Errors: VecErrors(errs),
		Items:  orderedmap.New[int, Errors](),
	}
}

// NewObjectErrors returns an object tree with the given value-level failures.
func NewObjectErrors(errs ...Error) *ObjectErrors {
	return &ObjectErrors{
		Errors:     VecErrors(errs),
		Properties: orderedmap.New[string, Errors](),
	}
}

func (n NewTypeErrors) shape() string { return "newtype" }
func (n NewTypeErrors) IsEmpty() bool { return len(n) == 0 }
func (n NewTypeErrors) Count() int    { return len(n) }

func (n NewTypeErrors) Error() string { return summary(n) }

func (n NewTypeErrors) MarshalJSON() ([]byte, error) { return marshalTree(n) }

func (a *ArrayErrors) shape() string { return "array" }

func (a *ArrayErrors) IsEmpty() bool {
	return len(a.Errors) == 0 && a.Len() == 0
}

func (a *ArrayErrors) Count() int {
	n := len(a.Errors)
	for pair := a.oldest(); pair != nil; pair = pair.Next() {
		n += pair.Value.Count()
	}
	return n
}

func (a *ArrayErrors) Error() string { return summary(a) }

func (a *ArrayErrors) MarshalJSON() ([]byte, error) { return marshalTree(a) }

// Len returns the number of failed elements.
func (a *ArrayErrors) Len() int {
	if a.Items == nil {
		return 0
	}
	return a.Items.Len()
}

// Item returns the tree recorded for index i.
func (a *ArrayErrors) Item(i int) (Errors, bool) {
	if a.Items == nil {
		return nil, false
	}
	return a.Items.Get(i)
}

// SetItem records the tree of element i. Empty trees are skipped so Items
// stays sparse; an existing entry is merged with e.
func (a *ArrayErrors) SetItem(i int, e Errors) {
	if e == nil || e.IsEmpty() {
		return
	}
	if a.Items == nil {
		a.Items = orderedmap.New[int, Errors]()
	}
	if prev, ok := a.Items.Get(i); ok {
		e = Merge(prev, e)
	}
	a.Items.Set(i, e)
}

// Indices lists the failed element indices in insertion order.
func (a *ArrayErrors) Indices() []int {
	out := make([]int, 0, a.Len())
	for pair := a.oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func (a *ArrayErrors) oldest() *orderedmap.Pair[int, Errors] {
	if a.Items == nil {
		return nil
	}
	return a.Items.Oldest()
}

func (o *ObjectErrors) shape() string { return "object" }

func (o *ObjectErrors) IsEmpty() bool {
	return len(o.Errors) == 0 && o.Len() == 0
}

func (o *ObjectErrors) Count() int {
	n := len(o.Errors)
	for pair := o.oldest(); pair != nil; pair = pair.Next() {
		n += pair.Value.Count()
	}
	return n
}

func (o *ObjectErrors) Error() string { return summary(o) }

func (o *ObjectErrors) MarshalJSON() ([]byte, error) { return marshalTree(o) }

// Len returns the number of failed properties.
func (o *ObjectErrors) Len() int {
	if o.Properties == nil {
		return 0
	}
	return o.Properties.Len()
}

// Property returns the tree recorded under key.
func (o *ObjectErrors) Property(key string) (Errors, bool) {
	if o.Properties == nil {
		return nil, false
	}
	return o.Properties.Get(key)
}

// SetProperty records the tree of a property. Empty trees are skipped; an
// existing entry is merged with e.
func (o *ObjectErrors) SetProperty(key string, e Errors) {
	if e == nil || e.IsEmpty() {
		return
	}
	if o.Properties == nil {
		o.Properties = orderedmap.New[string, Errors]()
	}
	if prev, ok := o.Properties.Get(key); ok {
		e = Merge(prev, e)
	}
	o.Properties.Set(key, e)
}

// Keys lists the failed property keys in insertion order.
func (o *ObjectErrors) Keys() []string {
	out := make([]string, 0, o.Len())
	for pair := o.oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func (o *ObjectErrors) oldest() *orderedmap.Pair[string, Errors] {
	if o.Properties == nil {
		return nil
	}
	return o.Properties.Oldest()
}

// Err converts a tree into an error value, returning nil for an empty or nil tree.
func Err(e Errors) error {
	if e == nil || e.IsEmpty() {
		return nil
	}
	return e
}

// Tree recovers the error tree from a Validate result. A nil error yields an
// empty NewTypeErrors; an error that is not a tree is normalized into custom
// errors the same way custom rules are.
func Tree(err error) Errors {
	if err == nil {
		return NewTypeErrors(nil)
	}
	var tree Errors
	if errors.As(err, &tree) {
		return tree
	}
	return NewTypeErrors(normalize(err))
}

func summary(e Errors) string {
	flat := Flatten(e)
	if len(flat) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(flat))
	for i, f := range flat {
		if f.Path == "" {
			parts[i] = f.Message
			continue
		}
		parts[i] = fmt.Sprintf("%s: %s", f.Path, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
