package validator

import (
	"math"
	"reflect"
	"strconv"
)

// LiteralKind classifies the dynamic type held by a Literal.
type LiteralKind uint8

const (
	LiteralNull LiteralKind = iota
	LiteralBool
	LiteralInt
	LiteralUint
	LiteralFloat
	LiteralString
	LiteralOther
)

// Literal is an immutable snapshot of a scalar used as a rule input or a
// compared value. Numbers of different Go types compare by numeric value, so
// int(1), uint8(1) and 1.0 are equal literals.
type Literal struct {
	kind  LiteralKind
	b     bool
	i     int64
	u     uint64
	f     float64
	s     string
	other any
}

// LiteralOf captures v, unwrapping named types through their underlying kind.
func LiteralOf(v any) Literal {
	if v == nil {
		return Literal{kind: LiteralNull}
	}
	if l, ok := v.(Literal); ok {
		return l
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Literal{kind: LiteralBool, b: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Literal{kind: LiteralInt, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Literal{kind: LiteralUint, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return Literal{kind: LiteralFloat, f: rv.Float()}
	case reflect.String:
		return Literal{kind: LiteralString, s: rv.String()}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Literal{kind: LiteralNull}
		}
		return LiteralOf(rv.Elem().Interface())
	default:
		return Literal{kind: LiteralOther, other: v}
	}
}

// Kind reports the literal's class.
func (l Literal) Kind() LiteralKind { return l.kind }

// Value returns the captured value in its widest Go representation.
func (l Literal) Value() any {
	switch l.kind {
	case LiteralBool:
		return l.b
	case LiteralInt:
		return l.i
	case LiteralUint:
		return l.u
	case LiteralFloat:
		return l.f
	case LiteralString:
		return l.s
	case LiteralOther:
		return l.other
	default:
		return nil
	}
}

// IsNumber reports whether the literal holds an integer or float.
func (l Literal) IsNumber() bool {
	return l.kind == LiteralInt || l.kind == LiteralUint || l.kind == LiteralFloat
}

// Equal compares two literals. Numbers compare across int, uint and float.
func (l Literal) Equal(o Literal) bool {
	if l.IsNumber() && o.IsNumber() {
		return numbersEqual(l, o)
	}
	if l.kind != o.kind {
		return false
	}
	switch l.kind {
	case LiteralNull:
		return true
	case LiteralBool:
		return l.b == o.b
	case LiteralString:
		return l.s == o.s
	default:
		return reflect.DeepEqual(l.other, o.other)
	}
}

// numbersEqual compares across kinds without rounding: a float equals an
// integer only when it is integral and converts back to exactly that integer.
func numbersEqual(a, b Literal) bool {
	if a.kind > b.kind {
		a, b = b, a
	}
	switch {
	case a.kind == LiteralInt && b.kind == LiteralInt:
		return a.i == b.i
	case a.kind == LiteralUint && b.kind == LiteralUint:
		return a.u == b.u
	case a.kind == LiteralFloat && b.kind == LiteralFloat:
		return a.f == b.f
	case a.kind == LiteralInt && b.kind == LiteralUint:
		return a.i >= 0 && uint64(a.i) == b.u
	case a.kind == LiteralInt && b.kind == LiteralFloat:
		return b.f >= -(1<<63) && b.f < 1<<63 && b.f == math.Trunc(b.f) && int64(b.f) == a.i
	case a.kind == LiteralUint && b.kind == LiteralFloat:
		return b.f >= 0 && b.f < 1<<64 && b.f == math.Trunc(b.f) && uint64(b.f) == a.u
	}
	return false
}

// String renders the literal the way it appears in default messages:
// strings are quoted, numbers use the shortest exact representation.
func (l Literal) String() string {
	switch l.kind {
	case LiteralNull:
		return "null"
	case LiteralBool:
		return strconv.FormatBool(l.b)
	case LiteralInt:
		return strconv.FormatInt(l.i, 10)
	case LiteralUint:
		return strconv.FormatUint(l.u, 10)
	case LiteralFloat:
		return strconv.FormatFloat(l.f, 'g', -1, 64)
	case LiteralString:
		return strconv.Quote(l.s)
	default:
		return reflectString(l.other)
	}
}

func reflectString(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return "<" + reflect.TypeOf(v).String() + ">"
}
