package validator

import "regexp"

// CheckPattern reports whether re matches s.
func CheckPattern(s string, re *regexp.Regexp) (PatternParams, bool) {
	return PatternParams{Pattern: re.String()}, re.MatchString(s)
}

// Pattern requires s to match re. The expression is compiled by the caller,
// typically once in a package-level variable, and reused for every call.
func Pattern(re *regexp.Regexp) Rule[string, PatternParams] {
	if re == nil {
		panic("validator: Pattern requires a compiled expression")
	}
	return NewRule(func(s string) (PatternParams, bool) { return CheckPattern(s, re) })
}

// MustPattern compiles expr once and returns the rule. Panics on a bad
// expression, like regexp.MustCompile.
func MustPattern(expr string) Rule[string, PatternParams] {
	return Pattern(regexp.MustCompile(expr))
}
