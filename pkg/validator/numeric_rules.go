package validator

import (
	"fmt"
	"math"
	"reflect"
)

// Number is the constraint for numeric rule inputs.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// CheckMinimum reports whether value >= minimum.
func CheckMinimum[T Number](value, minimum T) (MinimumParams[T], bool) {
	return MinimumParams[T]{Value: value, Minimum: minimum}, value >= minimum
}

// CheckMaximum reports whether value <= maximum.
func CheckMaximum[T Number](value, maximum T) (MaximumParams[T], bool) {
	return MaximumParams[T]{Value: value, Maximum: maximum}, value <= maximum
}

// CheckExclusiveMinimum reports whether value > minimum.
func CheckExclusiveMinimum[T Number](value, minimum T) (ExclusiveMinimumParams[T], bool) {
	return ExclusiveMinimumParams[T]{Value: value, ExclusiveMinimum: minimum}, value > minimum
}

// CheckExclusiveMaximum reports whether value < maximum.
func CheckExclusiveMaximum[T Number](value, maximum T) (ExclusiveMaximumParams[T], bool) {
	return ExclusiveMaximumParams[T]{Value: value, ExclusiveMaximum: maximum}, value < maximum
}

// CheckRange reports whether value lies between both bounds.
func CheckRange[T Number](value T, min, max Bound[T]) (RangeParams[T], bool) {
	p := RangeParams[T]{Value: value, Min: min, Max: max}
	if p.belowMin() {
		return p, false
	}
	if max.Exclusive {
		return p, value < max.Value
	}
	return p, value <= max.Value
}

// CheckMultipleOf reports whether value is an exact multiple of divisor.
// Floats use the IEEE 754 remainder, so 12.5 is a multiple of 0.5.
// A zero divisor never matches.
func CheckMultipleOf[T Number](value, divisor T) (MultipleOfParams[T], bool) {
	return MultipleOfParams[T]{Value: value, MultipleOf: divisor}, isMultipleOf(value, divisor)
}

func isMultipleOf[T Number](value, divisor T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Remainder(float64(value), float64(divisor)) == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		d := uint64(divisor)
		return d != 0 && uint64(value)%d == 0
	default:
		d := int64(divisor)
		return d != 0 && int64(value)%d == 0
	}
}

// Minimum requires value >= minimum.
func Minimum[T Number](minimum T) Rule[T, MinimumParams[T]] {
	return NewRule(func(v T) (MinimumParams[T], bool) { return CheckMinimum(v, minimum) })
}

// Maximum requires value <= maximum.
func Maximum[T Number](maximum T) Rule[T, MaximumParams[T]] {
	return NewRule(func(v T) (MaximumParams[T], bool) { return CheckMaximum(v, maximum) })
}

// ExclusiveMinimum requires value > minimum.
func ExclusiveMinimum[T Number](minimum T) Rule[T, ExclusiveMinimumParams[T]] {
	return NewRule(func(v T) (ExclusiveMinimumParams[T], bool) { return CheckExclusiveMinimum(v, minimum) })
}

// ExclusiveMaximum requires value < maximum.
func ExclusiveMaximum[T Number](maximum T) Rule[T, ExclusiveMaximumParams[T]] {
	return NewRule(func(v T) (ExclusiveMaximumParams[T], bool) { return CheckExclusiveMaximum(v, maximum) })
}

// Range requires value between min and max, each side inclusive or exclusive.
func Range[T Number](min, max Bound[T]) Rule[T, RangeParams[T]] {
	return NewRule(func(v T) (RangeParams[T], bool) { return CheckRange(v, min, max) })
}

// MultipleOf requires value to be a multiple of divisor.
// Panics if divisor is zero: such a rule can never pass.
func MultipleOf[T Number](divisor T) Rule[T, MultipleOfParams[T]] {
	if divisor == 0 {
		panic(fmt.Sprintf("validator: MultipleOf divisor must not be zero (%T)", divisor))
	}
	return NewRule(func(v T) (MultipleOfParams[T], bool) { return CheckMultipleOf(v, divisor) })
}
