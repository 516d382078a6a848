package validator

// Checker evaluates constraints on a value of type T and returns every failure.
type Checker[T any] interface {
	Check(value T) VecErrors
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc[T any] func(value T) VecErrors

// Check implements Checker.
func (f CheckerFunc[T]) Check(value T) VecErrors {
	return f(value)
}

// Rule is a single constraint: a pure evaluator producing params on failure
// and the strategy used to format them. Rules are values and are meant to be
// built once per call site and reused.
type Rule[T any, P Params] struct {
	eval   func(T) (P, bool)
	format Format[P]
}

// NewRule builds a rule from an evaluator that reports ok=false on violation.
func NewRule[T any, P Params](eval func(T) (P, bool)) Rule[T, P] {
	return Rule[T, P]{eval: eval}
}

// Evaluate runs the evaluator without building an Error.
func (r Rule[T, P]) Evaluate(value T) (P, bool) {
	return r.eval(value)
}

// Check implements Checker.
func (r Rule[T, P]) Check(value T) VecErrors {
	p, ok := r.eval(value)
	if ok {
		return nil
	}
	return VecErrors{NewError(Message[P]{Params: p, Format: r.format})}
}

// WithMessage overrides the text with a fixed string.
func (r Rule[T, P]) WithMessage(text string) Rule[T, P] {
	r.format = FixedFormat[P](text)
	return r
}

// WithFormatter overrides the text with a function of the params.
func (r Rule[T, P]) WithFormatter(fn func(P) string) Rule[T, P] {
	r.format = FuncFormat(fn)
	return r
}

// WithLocalized resolves the text through a Localizer at render time.
func (r Rule[T, P]) WithLocalized(id string, args ...string) Rule[T, P] {
	r.format = LocalizedFormat[P](id, args...)
	return r
}

// WithFormat sets any formatting strategy.
func (r Rule[T, P]) WithFormat(f Format[P]) Rule[T, P] {
	r.format = f
	return r
}

// Apply evaluates every rule against value and collects all failures in
// declaration order. It never stops early.
func Apply[T any](value T, rules ...Checker[T]) VecErrors {
	var errs VecErrors
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		errs = append(errs, rule.Check(value)...)
	}
	return errs
}
