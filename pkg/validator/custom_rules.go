package validator

import "errors"

// Custom wraps a user predicate. The returned error may be nil, an Error,
// VecErrors, NewTypeErrors, a joined error (errors.Join) of those, or any
// other error, whose text becomes a KindCustom error. Every form normalizes
// into VecErrors; duplicates are kept.
func Custom[T any](fn func(T) error) Checker[T] {
	return CheckerFunc[T](func(v T) VecErrors {
		return normalize(fn(v))
	})
}

// CustomErrors wraps a user predicate that already returns a list.
func CustomErrors[T any](fn func(T) VecErrors) Checker[T] {
	return CheckerFunc[T](fn)
}

func normalize(err error) VecErrors {
	switch e := err.(type) {
	case nil:
		return nil
	case Error:
		return VecErrors{e}
	case *Error:
		if e == nil {
			return nil
		}
		return VecErrors{*e}
	case VecErrors:
		return e
	case NewTypeErrors:
		return VecErrors(e)
	case interface{ Unwrap() []error }:
		var out VecErrors
		for _, inner := range e.Unwrap() {
			out = append(out, normalize(inner)...)
		}
		return out
	}

	var single Error
	if errors.As(err, &single) {
		return VecErrors{single}
	}
	var list VecErrors
	if errors.As(err, &list) {
		return list
	}
	return VecErrors{CustomError(err.Error())}
}
