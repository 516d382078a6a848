package validator

import "github.com/rivo/uniseg"

// Length counts user-perceived characters (extended grapheme clusters), so a
// base letter followed by combining marks counts once.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// CheckMinLength reports whether s has at least min grapheme clusters.
func CheckMinLength(s string, min int) (MinLengthParams, bool) {
	n := Length(s)
	return MinLengthParams{Length: n, MinLength: min}, n >= min
}

// CheckMaxLength reports whether s has at most max grapheme clusters.
func CheckMaxLength(s string, max int) (MaxLengthParams, bool) {
	n := Length(s)
	return MaxLengthParams{Length: n, MaxLength: max}, n <= max
}

// MinLength requires at least min grapheme clusters.
func MinLength(min int) Rule[string, MinLengthParams] {
	return NewRule(func(s string) (MinLengthParams, bool) { return CheckMinLength(s, min) })
}

// MaxLength requires at most max grapheme clusters.
func MaxLength(max int) Rule[string, MaxLengthParams] {
	return NewRule(func(s string) (MaxLengthParams, bool) { return CheckMaxLength(s, max) })
}
