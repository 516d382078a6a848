package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is the typed snapshot a failing rule produces. It is enough to
// re-derive the default text and to feed a localized bundle.
type Params interface {
	Kind() Kind
	// DefaultMessage renders the built-in English text.
	DefaultMessage() string
	// Args returns key/value pairs for named placeholder substitution.
	Args() []string
}

// MinimumParams describes a failed inclusive lower bound.
type MinimumParams[T Number] struct {
	Value   T
	Minimum T
}

func (p MinimumParams[T]) Kind() Kind { return KindMinimum }

func (p MinimumParams[T]) DefaultMessage() string {
	return fmt.Sprintf("`%v` must be `>= %v`", p.Value, p.Minimum)
}

func (p MinimumParams[T]) Args() []string {
	return []string{"value", fmt.Sprint(p.Value), "minimum", fmt.Sprint(p.Minimum)}
}

// MaximumParams describes a failed inclusive upper bound.
type MaximumParams[T Number] struct {
	Value   T
	Maximum T
}

func (p MaximumParams[T]) Kind() Kind { return KindMaximum }

func (p MaximumParams[T]) DefaultMessage() string {
	return fmt.Sprintf("`%v` must be `<= %v`", p.Value, p.Maximum)
}

func (p MaximumParams[T]) Args() []string {
	return []string{"value", fmt.Sprint(p.Value), "maximum", fmt.Sprint(p.Maximum)}
}

// ExclusiveMinimumParams describes a failed exclusive lower bound.
type ExclusiveMinimumParams[T Number] struct {
	Value            T
	ExclusiveMinimum T
}

func (p ExclusiveMinimumParams[T]) Kind() Kind { return KindExclusiveMinimum }

func (p ExclusiveMinimumParams[T]) DefaultMessage() string {
	return fmt.Sprintf("`%v` must be `> %v`", p.Value, p.ExclusiveMinimum)
}

func (p ExclusiveMinimumParams[T]) Args() []string {
	return []string{"value", fmt.Sprint(p.Value), "exclusive_minimum", fmt.Sprint(p.ExclusiveMinimum)}
}

// ExclusiveMaximumParams describes a failed exclusive upper bound.
type ExclusiveMaximumParams[T Number] struct {
	Value            T
	ExclusiveMaximum T
}

func (p ExclusiveMaximumParams[T]) Kind() Kind { return KindExclusiveMaximum }

func (p ExclusiveMaximumParams[T]) DefaultMessage() string {
	return fmt.Sprintf("`%v` must be `< %v`", p.Value, p.ExclusiveMaximum)
}

func (p ExclusiveMaximumParams[T]) Args() []string {
	return []string{"value", fmt.Sprint(p.Value), "exclusive_maximum", fmt.Sprint(p.ExclusiveMaximum)}
}

// Bound is one side of a range.
type Bound[T Number] struct {
	Value     T
	Exclusive bool
}

// Inclusive returns a bound that admits v itself.
func Inclusive[T Number](v T) Bound[T] { return Bound[T]{Value: v} }

// Exclusive returns a bound that rejects v itself.
func Exclusive[T Number](v T) Bound[T] { return Bound[T]{Value: v, Exclusive: true} }

func (b Bound[T]) op() string {
	if b.Exclusive {
		return "<"
	}
	return "<="
}

// RangeParams describes a value outside a two-sided range. The kind follows
// the side that failed and its exclusivity.
type RangeParams[T Number] struct {
	Value T
	Min   Bound[T]
	Max   Bound[T]
}

func (p RangeParams[T]) belowMin() bool {
	if p.Min.Exclusive {
		return !(p.Value > p.Min.Value)
	}
	return !(p.Value >= p.Min.Value)
}

func (p RangeParams[T]) Kind() Kind {
	switch {
	case p.belowMin() && p.Min.Exclusive:
		return KindExclusiveMinimum
	case p.belowMin():
		return KindMinimum
	case p.Max.Exclusive:
		return KindExclusiveMaximum
	default:
		return KindMaximum
	}
}

func (p RangeParams[T]) DefaultMessage() string {
	return fmt.Sprintf("`%v` must be in `%v %s value %s %v`",
		p.Value, p.Min.Value, p.Min.op(), p.Max.op(), p.Max.Value)
}

// Args carries both bounds. Exclusive bounds are repeated under the
// exclusive_* keys so the per-kind templates resolve too.
func (p RangeParams[T]) Args() []string {
	args := []string{
		"value", fmt.Sprint(p.Value),
		"minimum", fmt.Sprint(p.Min.Value),
		"maximum", fmt.Sprint(p.Max.Value),
	}
	if p.Min.Exclusive {
		args = append(args, "exclusive_minimum", fmt.Sprint(p.Min.Value))
	}
	if p.Max.Exclusive {
		args = append(args, "exclusive_maximum", fmt.Sprint(p.Max.Value))
	}
	return args
}

// MultipleOfParams describes a value that is not a multiple of the divisor.
type MultipleOfParams[T Number] struct {
	Value      T
	MultipleOf T
}

func (p MultipleOfParams[T]) Kind() Kind { return KindMultipleOf }

func (p MultipleOfParams[T]) DefaultMessage() string {
	return fmt.Sprintf("`%v` must be multiple of `%v`", p.Value, p.MultipleOf)
}

func (p MultipleOfParams[T]) Args() []string {
	return []string{"value", fmt.Sprint(p.Value), "multiple_of", fmt.Sprint(p.MultipleOf)}
}

// MinLengthParams describes a string shorter than allowed, in grapheme clusters.
type MinLengthParams struct {
	Length    int
	MinLength int
}

func (p MinLengthParams) Kind() Kind { return KindMinLength }

func (p MinLengthParams) DefaultMessage() string {
	return fmt.Sprintf("the length of the value must be `>= %d`", p.MinLength)
}

func (p MinLengthParams) Args() []string {
	return []string{"length", strconv.Itoa(p.Length), "min_length", strconv.Itoa(p.MinLength)}
}

// MaxLengthParams describes a string longer than allowed, in grapheme clusters.
type MaxLengthParams struct {
	Length    int
	MaxLength int
}

func (p MaxLengthParams) Kind() Kind { return KindMaxLength }

func (p MaxLengthParams) DefaultMessage() string {
	return fmt.Sprintf("the length of the value must be `<= %d`", p.MaxLength)
}

func (p MaxLengthParams) Args() []string {
	return []string{"length", strconv.Itoa(p.Length), "max_length", strconv.Itoa(p.MaxLength)}
}

// PatternParams describes a string that does not match a regular expression.
type PatternParams struct {
	Pattern string
}

func (p PatternParams) Kind() Kind { return KindPattern }

func (p PatternParams) DefaultMessage() string {
	return fmt.Sprintf("the value must match the pattern of \"%s\"", p.Pattern)
}

func (p PatternParams) Args() []string {
	return []string{"pattern", p.Pattern}
}

// MinItemsParams describes a sequence with too few elements.
type MinItemsParams struct {
	Length   int
	MinItems int
}

func (p MinItemsParams) Kind() Kind { return KindMinItems }

func (p MinItemsParams) DefaultMessage() string {
	return fmt.Sprintf("the length of the items must be `>= %d`", p.MinItems)
}

func (p MinItemsParams) Args() []string {
	return []string{"length", strconv.Itoa(p.Length), "min_items", strconv.Itoa(p.MinItems)}
}

// MaxItemsParams describes a sequence with too many elements.
type MaxItemsParams struct {
	Length   int
	MaxItems int
}

func (p MaxItemsParams) Kind() Kind { return KindMaxItems }

func (p MaxItemsParams) DefaultMessage() string {
	return fmt.Sprintf("the length of the items must be `<= %d`", p.MaxItems)
}

func (p MaxItemsParams) Args() []string {
	return []string{"length", strconv.Itoa(p.Length), "max_items", strconv.Itoa(p.MaxItems)}
}

// UniqueItemsParams describes a sequence holding equal elements. First and
// Duplicate are the indices of the first equal pair found.
type UniqueItemsParams struct {
	First     int
	Duplicate int
}

func (p UniqueItemsParams) Kind() Kind { return KindUniqueItems }

func (p UniqueItemsParams) DefaultMessage() string {
	return "the items must be unique"
}

func (p UniqueItemsParams) Args() []string {
	return []string{"first", strconv.Itoa(p.First), "duplicate", strconv.Itoa(p.Duplicate)}
}

// MinPropertiesParams describes a map with too few entries.
type MinPropertiesParams struct {
	Size          int
	MinProperties int
}

func (p MinPropertiesParams) Kind() Kind { return KindMinProperties }

func (p MinPropertiesParams) DefaultMessage() string {
	return fmt.Sprintf("the size of the properties must be `>= %d`", p.MinProperties)
}

func (p MinPropertiesParams) Args() []string {
	return []string{"size", strconv.Itoa(p.Size), "min_properties", strconv.Itoa(p.MinProperties)}
}

// MaxPropertiesParams describes a map with too many entries.
type MaxPropertiesParams struct {
	Size          int
	MaxProperties int
}

func (p MaxPropertiesParams) Kind() Kind { return KindMaxProperties }

func (p MaxPropertiesParams) DefaultMessage() string {
	return fmt.Sprintf("the size of the properties must be `<= %d`", p.MaxProperties)
}

func (p MaxPropertiesParams) Args() []string {
	return []string{"size", strconv.Itoa(p.Size), "max_properties", strconv.Itoa(p.MaxProperties)}
}

// EnumerateParams describes a value outside a fixed candidate list.
type EnumerateParams struct {
	Value      Literal
	Candidates []Literal
}

func (p EnumerateParams) Kind() Kind { return KindEnumerate }

func (p EnumerateParams) DefaultMessage() string {
	return fmt.Sprintf("`%s` must be in [%s]", p.Value, p.candidates())
}

func (p EnumerateParams) Args() []string {
	return []string{"value", p.Value.String(), "candidates", p.candidates()}
}

func (p EnumerateParams) candidates() string {
	parts := make([]string, len(p.Candidates))
	for i, c := range p.Candidates {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// CustomParams carries the text produced by a user-supplied rule.
type CustomParams struct {
	Message string
}

func (p CustomParams) Kind() Kind { return KindCustom }

func (p CustomParams) DefaultMessage() string { return p.Message }

func (p CustomParams) Args() []string {
	return []string{"message", p.Message}
}
