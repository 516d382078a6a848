package validator

import (
	"encoding/json"
	"strings"
)

type message interface {
	Render(loc Localizer) (string, error)
	String() string
	MessageID() string
	params() Params
}

// Error is a single rule failure: a kind plus its deferred message.
type Error struct {
	msg message
}

// NewError wraps a message into an Error. The kind comes from the params.
func NewError[P Params](m Message[P]) Error {
	return Error{msg: m}
}

// ErrorOf is shorthand for an Error with the default strategy.
func ErrorOf[P Params](p P) Error {
	return NewError(NewMessage(p))
}

// CustomError builds a KindCustom error with fixed text.
func CustomError(text string) Error {
	return ErrorOf(CustomParams{Message: text})
}

// Kind reports the constraint family.
func (e Error) Kind() Kind {
	if e.msg == nil {
		return 0
	}
	return e.msg.params().Kind()
}

// Params returns the typed snapshot captured when the rule failed.
func (e Error) Params() Params {
	if e.msg == nil {
		return nil
	}
	return e.msg.params()
}

// MessageID returns the localization id, or "" when the message is not localized.
func (e Error) MessageID() string {
	if e.msg == nil {
		return ""
	}
	return e.msg.MessageID()
}

// Render produces the display text, consulting loc for localized messages.
func (e Error) Render(loc Localizer) (string, error) {
	if e.msg == nil {
		return "", nil
	}
	return e.msg.Render(loc)
}

// String renders without a localizer.
func (e Error) String() string {
	if e.msg == nil {
		return ""
	}
	return e.msg.String()
}

// Error implements error so custom rules can return an Error directly.
func (e Error) Error() string {
	return e.String()
}

// MarshalJSON encodes the default rendering.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// VecErrors is the ordered list of failures that apply directly to one value,
// in rule declaration order.
type VecErrors []Error

// Error implements error.
func (v VecErrors) Error() string {
	return strings.Join(v.Strings(), "; ")
}

// Strings renders every error without a localizer.
func (v VecErrors) Strings() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.String()
	}
	return out
}

// Render renders every error with loc and stops at the first failure.
func (v VecErrors) Render(loc Localizer) ([]string, error) {
	out := make([]string, len(v))
	for i, e := range v {
		s, err := e.Render(loc)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Kinds lists the kinds in order, mostly useful in tests and logs.
func (v VecErrors) Kinds() []Kind {
	out := make([]Kind, len(v))
	for i, e := range v {
		out[i] = e.Kind()
	}
	return out
}
