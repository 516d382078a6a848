package validator

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Merge combines two trees filed under the same address. It never mutates a
// or b and the result shares no node with them. The operation is associative and an empty NewTypeErrors (or nil) is an
// identity on either side:
//
//   - NewType ⊕ NewType concatenates the lists
//   - NewType ⊕ Array moves the list into the array's own errors, keeping items
//   - Array ⊕ Array concatenates errors and unions items, merging on collision
//   - Object ⊕ Object concatenates errors and unions properties likewise
//
// Any other combination means a field was composed as both keyed and
// sequential, which is a wiring bug: Merge panics with an error wrapping
// ErrShapeMismatch.
func Merge(a, b Errors) Errors {
	if isIdentity(a) {
		return Clone(b)
	}
	if isIdentity(b) {
		return Clone(a)
	}

	switch x := a.(type) {
	case NewTypeErrors:
		switch y := b.(type) {
		case NewTypeErrors:
			return NewTypeErrors(concat(VecErrors(x), VecErrors(y)))
		case *ArrayErrors:
			return &ArrayErrors{Errors: concat(VecErrors(x), y.Errors), Items: cloneItems(y.Items)}
		}
	case *ArrayErrors:
		switch y := b.(type) {
		case NewTypeErrors:
			return &ArrayErrors{Errors: concat(x.Errors, VecErrors(y)), Items: cloneItems(x.Items)}
		case *ArrayErrors:
			return &ArrayErrors{Errors: concat(x.Errors, y.Errors), Items: unionItems(x.Items, y.Items)}
		}
	case *ObjectErrors:
		if y, ok := b.(*ObjectErrors); ok {
			return &ObjectErrors{Errors: concat(x.Errors, y.Errors), Properties: unionProperties(x.Properties, y.Properties)}
		}
	}
	panic(fmt.Errorf("%w: %s with %s", ErrShapeMismatch, a.shape(), b.shape()))
}

// MergeAll folds trees left to right.
func MergeAll(trees ...Errors) Errors {
	var acc Errors = NewTypeErrors(nil)
	for _, t := range trees {
		acc = Merge(acc, t)
	}
	return acc
}

// Clone returns a deep copy of e. A nil e yields an empty NewTypeErrors.
func Clone(e Errors) Errors {
	switch t := e.(type) {
	case nil:
		return NewTypeErrors(nil)
	case NewTypeErrors:
		return NewTypeErrors(cloneVec(VecErrors(t)))
	case *ArrayErrors:
		if t == nil {
			return NewTypeErrors(nil)
		}
		return &ArrayErrors{Errors: cloneVec(t.Errors), Items: cloneItems(t.Items)}
	case *ObjectErrors:
		if t == nil {
			return NewTypeErrors(nil)
		}
		return &ObjectErrors{Errors: cloneVec(t.Errors), Properties: unionProperties(t.Properties, nil)}
	}
	return e
}

func cloneVec(v VecErrors) VecErrors {
	if v == nil {
		return nil
	}
	return concat(v, nil)
}

func isIdentity(e Errors) bool {
	if e == nil {
		return true
	}
	n, ok := e.(NewTypeErrors)
	return ok && len(n) == 0
}

func concat(a, b VecErrors) VecErrors {
	out := make(VecErrors, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func cloneItems(src *orderedmap.OrderedMap[int, Errors]) *orderedmap.OrderedMap[int, Errors] {
	return unionItems(src, nil)
}

func unionItems(a, b *orderedmap.OrderedMap[int, Errors]) *orderedmap.OrderedMap[int, Errors] {
	out := orderedmap.New[int, Errors]()
	for _, m := range []*orderedmap.OrderedMap[int, Errors]{a, b} {
		if m == nil {
			continue
		}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if prev, ok := out.Get(pair.Key); ok {
				out.Set(pair.Key, Merge(prev, pair.Value))
				continue
			}
			out.Set(pair.Key, Clone(pair.Value))
		}
	}
	return out
}

func unionProperties(a, b *orderedmap.OrderedMap[string, Errors]) *orderedmap.OrderedMap[string, Errors] {
	out := orderedmap.New[string, Errors]()
	for _, m := range []*orderedmap.OrderedMap[string, Errors]{a, b} {
		if m == nil {
			continue
		}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if prev, ok := out.Get(pair.Key); ok {
				out.Set(pair.Key, Merge(prev, pair.Value))
				continue
			}
			out.Set(pair.Key, Clone(pair.Value))
		}
	}
	return out
}
