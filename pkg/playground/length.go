package playground

import (
	"fmt"
	"reflect"
	"strconv"

	gp "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

// lengthTags compare a string's length with the tag parameter. The engine
// counts runes; these count grapheme clusters like validator.MinLength.
var lengthTags = map[string]func(length, n int) bool{
	"min": func(l, n int) bool { return l >= n },
	"gte": func(l, n int) bool { return l >= n },
	"max": func(l, n int) bool { return l <= n },
	"lte": func(l, n int) bool { return l <= n },
	"len": func(l, n int) bool { return l == n },
	"gt":  func(l, n int) bool { return l > n },
	"lt":  func(l, n int) bool { return l < n },
}

func registerLengthTags(engine *gp.Validate) {
	builtin := gp.New(gp.WithRequiredStructEnabled())
	for tag, cmp := range lengthTags {
		if err := engine.RegisterValidation(tag, graphemeLength(builtin, tag, cmp)); err != nil {
			panic(err)
		}
	}
}

// graphemeLength checks strings itself and hands every other kind to an
// untouched engine so numbers, slices, maps and times keep their rules.
func graphemeLength(builtin *gp.Validate, tag string, cmp func(length, n int) bool) gp.Func {
	return func(fl gp.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			if !field.CanInterface() {
				return true
			}
			expr := tag
			if fl.Param() != "" {
				expr += "=" + fl.Param()
			}
			return builtin.Var(field.Interface(), expr) == nil
		}
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("playground: bad %s parameter %q: %v", tag, fl.Param(), err))
		}
		return cmp(validator.Length(field.String()), n)
	}
}
