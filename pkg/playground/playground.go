package playground

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	gp "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

// Validator validates tagged structs and reports failures as validator.Errors.
// It is safe for concurrent use.
type Validator struct {
	engine *gp.Validate
}

// Option configures a Validator.
type Option func(*gp.Validate)

// WithTagName sets the struct tag holding the field's external name. The
// default is "json".
func WithTagName(tag string) Option {
	return func(v *gp.Validate) {
		v.RegisterTagNameFunc(tagNameFunc(tag))
	}
}

// WithValidation registers a custom tag.
func WithValidation(tag string, fn gp.Func) Option {
	return func(v *gp.Validate) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// New returns a Validator with required-struct checks enabled and json field
// names. String lengths are counted in grapheme clusters.
func New(opts ...Option) *Validator {
	engine := gp.New(gp.WithRequiredStructEnabled())
	engine.RegisterTagNameFunc(tagNameFunc("json"))
	registerLengthTags(engine)
	for _, opt := range opts {
		opt(engine)
	}
	return &Validator{engine: engine}
}

// Engine exposes the underlying go-playground instance.
func (v *Validator) Engine() *gp.Validate {
	return v.engine
}

// Struct validates s. It returns nil, an error tree, or the engine's own
// error for invalid input such as a nil pointer.
func (v *Validator) Struct(s any) error {
	err := v.engine.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs gp.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	return validator.Err(Convert(fieldErrs))
}

// Var validates a single value against a tag expression and returns its
// failures as NewTypeErrors.
func (v *Validator) Var(value any, tag string) validator.Errors {
	err := v.engine.Var(value, tag)
	var fieldErrs gp.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return validator.NewTypeErrors(nil)
	}
	out := make(validator.VecErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, leafError(fe))
	}
	return validator.NewTypeErrors(out)
}

// Convert files each field error under the path its namespace describes.
func Convert(errs gp.ValidationErrors) validator.Errors {
	var tree validator.Errors = validator.NewObjectErrors()
	for _, fe := range errs {
		tree = validator.Merge(tree, subtree(fe))
	}
	return tree
}

type segment struct {
	key     string
	index   int
	isIndex bool
}

func subtree(fe gp.FieldError) validator.Errors {
	leaf := leafError(fe)

	var node validator.Errors
	switch fe.Kind() {
	case reflect.Struct, reflect.Map:
		node = validator.NewObjectErrors(leaf)
	case reflect.Slice, reflect.Array:
		node = validator.NewArrayErrors(leaf)
	default:
		node = validator.NewTypeErrors{leaf}
	}

	segs := parseNamespace(fe.Namespace())
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].isIndex {
			arr := validator.NewArrayErrors()
			arr.SetItem(segs[i].index, node)
			node = arr
			continue
		}
		obj := validator.NewObjectErrors()
		obj.SetProperty(segs[i].key, node)
		node = obj
	}
	if _, ok := node.(*validator.ObjectErrors); !ok {
		// Errors reported on the root value itself.
		return validator.NewObjectErrors(leaf)
	}
	return node
}

// parseNamespace splits "Order.items[1].tags[0]" into its segments, dropping
// the root type name. Numeric brackets are sequence indexes, others map keys.
func parseNamespace(ns string) []segment {
	parts := strings.Split(ns, ".")
	if len(parts) <= 1 {
		return nil
	}
	var out []segment
	for _, part := range parts[1:] {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			out = append(out, segment{key: name})
		}
		for rest != "" {
			inner, after, ok := strings.Cut(rest, "]")
			if !ok {
				break
			}
			if idx, err := strconv.Atoi(inner); err == nil {
				out = append(out, segment{index: idx, isIndex: true})
			} else {
				out = append(out, segment{key: inner})
			}
			rest = strings.TrimPrefix(after, "[")
		}
	}
	return out
}

func tagNameFunc(tag string) func(reflect.StructField) string {
	return func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	}
}
