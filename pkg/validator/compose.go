package validator

// Validatable is implemented by values that validate themselves. Validate
// returns nil or an error holding an Errors tree, and never mutates the value.
type Validatable interface {
	Validate() error
}

// Value applies rules to a scalar and returns its failures as NewTypeErrors.
func Value[T any](v T, rules ...Checker[T]) Errors {
	return NewTypeErrors(Apply(v, rules...))
}

// Each returns an element validator applying rules to every element, for use
// with Slice.
func Each[T any](rules ...Checker[T]) func(T) Errors {
	return func(v T) Errors {
		return Value(v, rules...)
	}
}

// Optional succeeds trivially on nil and otherwise applies inner to the
// pointed-to value. It is the only branch of the engine that short-circuits.
func Optional[T any](v *T, inner func(T) Errors) Errors {
	if v == nil || inner == nil {
		return NewTypeErrors(nil)
	}
	return inner(*v)
}

// Slice validates a sequence. Whole-sequence rules fill the array's own
// errors; each, when non-nil, runs on every element and its non-empty trees
// are recorded under the element index. The result is always *ArrayErrors.
// Fixed-size arrays are validated through a slice of them (arr[:]).
func Slice[T any](items []T, each func(T) Errors, rules ...Checker[[]T]) Errors {
	tree := NewArrayErrors(Apply(items, rules...)...)
	if each == nil {
		return tree
	}
	for i, item := range items {
		tree.SetItem(i, each(item))
	}
	return tree
}

// Nested delegates to the value's own validation and returns its full tree.
func Nested[T Validatable](v T) Errors {
	return Tree(v.Validate())
}

// NestedPtr is Nested for types whose Validate has a pointer receiver.
func NestedPtr[T any, PT interface {
	*T
	Validatable
}](v T) Errors {
	return Tree(PT(&v).Validate())
}

// Compose runs several validators over the same value and merges their trees,
// for fields that are both constrained as a scalar and validated as a whole.
func Compose[T any](v T, parts ...func(T) Errors) Errors {
	var acc Errors = NewTypeErrors(nil)
	for _, part := range parts {
		acc = Merge(acc, part(v))
	}
	return acc
}
