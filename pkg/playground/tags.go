package playground

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	gp "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

// TagMessageID returns the localization id of a tag without a constraint kind.
func TagMessageID(tag string) string {
	return "validation.tag." + tag
}

func leafError(fe gp.FieldError) validator.Error {
	if e, ok := kindError(fe); ok {
		return e
	}
	return tagError(fe)
}

// localized renders under the kind's default message id when a localizer is
// available.
func localized[P validator.Params](p P) validator.Error {
	return validator.NewError(validator.Message[P]{Params: p, Format: validator.LocalizedFormat[P]("")})
}

func tagError(fe gp.FieldError) validator.Error {
	text := fmt.Sprintf("failed on the `%s` rule", fe.Tag())
	if fe.Param() != "" {
		text = fmt.Sprintf("failed on the `%s=%s` rule", fe.Tag(), fe.Param())
	}
	params := validator.CustomParams{Message: text}
	return validator.NewError(validator.Message[validator.CustomParams]{
		Params: params,
		Format: validator.LocalizedFormat[validator.CustomParams](TagMessageID(fe.Tag()), "field", fe.Field(), "param", fe.Param()),
	})
}

// kindError maps tags that have a constraint kind for the field's type.
func kindError(fe gp.FieldError) (validator.Error, bool) {
	value := deref(reflect.ValueOf(fe.Value()))
	param := fe.Param()

	switch fe.Tag() {
	case "min", "gte", "max", "lte":
		lower := fe.Tag() == "min" || fe.Tag() == "gte"
		switch fe.Kind() {
		case reflect.String:
			n, err := strconv.Atoi(param)
			if err != nil || !value.IsValid() {
				return validator.Error{}, false
			}
			length := validator.Length(value.String())
			if lower {
				return localized(validator.MinLengthParams{Length: length, MinLength: n}), true
			}
			return localized(validator.MaxLengthParams{Length: length, MaxLength: n}), true
		case reflect.Slice, reflect.Array:
			n, err := strconv.Atoi(param)
			if err != nil || !value.IsValid() {
				return validator.Error{}, false
			}
			if lower {
				return localized(validator.MinItemsParams{Length: value.Len(), MinItems: n}), true
			}
			return localized(validator.MaxItemsParams{Length: value.Len(), MaxItems: n}), true
		case reflect.Map:
			n, err := strconv.Atoi(param)
			if err != nil || !value.IsValid() {
				return validator.Error{}, false
			}
			if lower {
				return localized(validator.MinPropertiesParams{Size: value.Len(), MinProperties: n}), true
			}
			return localized(validator.MaxPropertiesParams{Size: value.Len(), MaxProperties: n}), true
		}
		if lower {
			return numberError(value, param, minimum)
		}
		return numberError(value, param, maximum)
	case "gt":
		return numberError(value, param, exclusiveMinimum)
	case "lt":
		return numberError(value, param, exclusiveMaximum)
	case "oneof":
		if !value.IsValid() {
			return validator.Error{}, false
		}
		fields := strings.Fields(param)
		candidates := make([]validator.Literal, 0, len(fields))
		for _, f := range fields {
			candidates = append(candidates, candidate(fe.Kind(), f))
		}
		return localized(validator.EnumerateParams{
			Value:      validator.LiteralOf(value.Interface()),
			Candidates: candidates,
		}), true
	case "unique":
		if !value.IsValid() || (value.Kind() != reflect.Slice && value.Kind() != reflect.Array) {
			return validator.Error{}, false
		}
		first, dup := firstDuplicate(value)
		if dup < 0 {
			return validator.Error{}, false
		}
		return localized(validator.UniqueItemsParams{First: first, Duplicate: dup}), true
	}
	return validator.Error{}, false
}

type bound uint8

const (
	minimum bound = iota
	maximum
	exclusiveMinimum
	exclusiveMaximum
)

func numberError(value reflect.Value, param string, b bound) (validator.Error, bool) {
	if !value.IsValid() {
		return validator.Error{}, false
	}
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		limit, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return validator.Error{}, false
		}
		return boundError(value.Int(), limit, b), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		limit, err := strconv.ParseUint(param, 10, 64)
		if err != nil {
			return validator.Error{}, false
		}
		return boundError(value.Uint(), limit, b), true
	case reflect.Float32, reflect.Float64:
		limit, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return validator.Error{}, false
		}
		return boundError(value.Float(), limit, b), true
	}
	return validator.Error{}, false
}

func boundError[T validator.Number](value, limit T, b bound) validator.Error {
	switch b {
	case minimum:
		return localized(validator.MinimumParams[T]{Value: value, Minimum: limit})
	case maximum:
		return localized(validator.MaximumParams[T]{Value: value, Maximum: limit})
	case exclusiveMinimum:
		return localized(validator.ExclusiveMinimumParams[T]{Value: value, ExclusiveMinimum: limit})
	default:
		return localized(validator.ExclusiveMaximumParams[T]{Value: value, ExclusiveMaximum: limit})
	}
}

func candidate(kind reflect.Kind, raw string) validator.Literal {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return validator.LiteralOf(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return validator.LiteralOf(n)
		}
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return validator.LiteralOf(n)
		}
	}
	return validator.LiteralOf(raw)
}

func firstDuplicate(items reflect.Value) (int, int) {
	for j := 1; j < items.Len(); j++ {
		b := items.Index(j)
		if !b.Type().Comparable() {
			return -1, -1
		}
		for i := range j {
			if items.Index(i).Interface() == b.Interface() {
				return i, j
			}
		}
	}
	return -1, -1
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
