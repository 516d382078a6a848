package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Query extracts a T from the URL query string. Field names come from the
// `query` tag, then the `json` tag, then the lowercased field name; `-` skips
// a field. Repeated keys and comma-separated values fill slices, pointers
// stay nil when the key is absent. There is no schema stage for queries.
func Query[T any](b *Binder, r *http.Request) (T, error) {
	var out T
	ctx := r.Context()
	t := reflect.TypeFor[T]()

	if err := bindValues(&out, r.URL.Query()); err != nil {
		b.reject(ctx, t, StageParse, err)
		return out, parseRejection(err)
	}
	if err := validate(ctx, b, &out); err != nil {
		return out, err
	}
	return out, nil
}

func bindValues(v any, values url.Values) error {
	rv := reflect.ValueOf(v).Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %s", ErrInvalidTarget, rv.Type())
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}
		name, skip := paramName(sf)
		if skip {
			continue
		}
		raw, ok := values[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := setField(field, sf.Type, raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToParseQuery, name, err)
		}
	}
	return nil
}

func paramName(sf reflect.StructField) (string, bool) {
	for _, key := range []string{"query", "json"} {
		tag, ok := sf.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", true
		}
		if name != "" {
			return name, false
		}
	}
	return strings.ToLower(sf.Name), false
}

func setField(field reflect.Value, typ reflect.Type, raw []string) error {
	switch typ.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(typ.Elem()))
		}
		return setField(field.Elem(), typ.Elem(), raw)
	case reflect.Slice:
		var all []string
		for _, v := range raw {
			for _, part := range strings.Split(v, ",") {
				all = append(all, strings.TrimSpace(part))
			}
		}
		slice := reflect.MakeSlice(typ, len(all), len(all))
		for i, v := range all {
			if err := setScalar(slice.Index(i), typ.Elem(), v); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		field.Set(slice)
		return nil
	default:
		return setScalar(field, typ, raw[0])
	}
}

func setScalar(field reflect.Value, typ reflect.Type, value string) error {
	switch typ.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", typ)
	}
	return nil
}
