package validator

// CheckEnumerate reports whether value equals at least one candidate.
// Comparison goes through Literal, so numbers match across Go types.
func CheckEnumerate(value any, candidates []Literal) (EnumerateParams, bool) {
	v := LiteralOf(value)
	p := EnumerateParams{Value: v, Candidates: candidates}
	for _, c := range candidates {
		if v.Equal(c) {
			return p, true
		}
	}
	return p, false
}

// Enumerate requires value to be one of candidates.
func Enumerate[T any](candidates ...T) Rule[T, EnumerateParams] {
	lits := make([]Literal, len(candidates))
	for i, c := range candidates {
		lits[i] = LiteralOf(c)
	}
	return enumerate[T](lits)
}

// EnumerateAny is Enumerate with candidates of related but different types,
// for example an int field checked against float or uint literals.
func EnumerateAny[T any](candidates ...any) Rule[T, EnumerateParams] {
	lits := make([]Literal, len(candidates))
	for i, c := range candidates {
		lits[i] = LiteralOf(c)
	}
	return enumerate[T](lits)
}

func enumerate[T any](lits []Literal) Rule[T, EnumerateParams] {
	return NewRule(func(v T) (EnumerateParams, bool) { return CheckEnumerate(v, lits) })
}
