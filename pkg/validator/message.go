package validator

// Localizer resolves a message id plus named arguments into display text.
// Implementations return an error wrapping ErrMessageNotFound for unknown ids.
type Localizer interface {
	Localize(id string, args ...string) (string, error)
}

// LocalizerFunc adapts a function to Localizer.
type LocalizerFunc func(id string, args ...string) (string, error)

// Localize implements Localizer.
func (f LocalizerFunc) Localize(id string, args ...string) (string, error) {
	return f(id, args...)
}

type formatKind uint8

const (
	formatDefault formatKind = iota
	formatFixed
	formatFunc
	formatLocalized
)

// Format is the strategy used to turn params into text. The zero value is the
// default strategy.
type Format[P Params] struct {
	kind formatKind
	text string
	fn   func(P) string
	id   string
	args []string
}

// DefaultFormat renders with the params' built-in text.
func DefaultFormat[P Params]() Format[P] {
	return Format[P]{}
}

// FixedFormat always renders text unchanged.
func FixedFormat[P Params](text string) Format[P] {
	return Format[P]{kind: formatFixed, text: text}
}

// FuncFormat renders by calling fn. A nil fn falls back to the default strategy.
func FuncFormat[P Params](fn func(P) string) Format[P] {
	if fn == nil {
		return Format[P]{}
	}
	return Format[P]{kind: formatFunc, fn: fn}
}

// LocalizedFormat resolves id through a Localizer at render time. The params'
// own arguments are always passed; args are appended after them. An empty id
// selects the kind's default id ("validation.<kind>").
func LocalizedFormat[P Params](id string, args ...string) Format[P] {
	return Format[P]{kind: formatLocalized, id: id, args: args}
}

// IsLocalized reports whether rendering needs a Localizer.
func (f Format[P]) IsLocalized() bool {
	return f.kind == formatLocalized
}

// Message pairs rule params with a formatting strategy. Nothing is rendered
// until Render or String is called.
type Message[P Params] struct {
	Params P
	Format Format[P]
}

// NewMessage returns a message using the default strategy.
func NewMessage[P Params](p P) Message[P] {
	return Message[P]{Params: p}
}

// Render produces the display text. Only the localized strategy consults loc
// and only it can fail, with a *LocalizeError wrapping ErrNoLocalizer (nil
// loc) or the localizer's own error.
func (m Message[P]) Render(loc Localizer) (string, error) {
	switch m.Format.kind {
	case formatFixed:
		return m.Format.text, nil
	case formatFunc:
		return m.Format.fn(m.Params), nil
	case formatLocalized:
		if loc == nil {
			return "", &LocalizeError{ID: m.id(), Err: ErrNoLocalizer}
		}
		text, err := loc.Localize(m.id(), m.args()...)
		if err != nil {
			return "", &LocalizeError{ID: m.id(), Err: err}
		}
		return text, nil
	default:
		return m.Params.DefaultMessage(), nil
	}
}

// String renders without a localizer. Localized messages fall back to the
// params' default text.
func (m Message[P]) String() string {
	if m.Format.kind == formatLocalized {
		return m.Params.DefaultMessage()
	}
	s, _ := m.Render(nil)
	return s
}

// MessageID returns the id a localized message resolves, or "" for other strategies.
func (m Message[P]) MessageID() string {
	if m.Format.kind != formatLocalized {
		return ""
	}
	return m.id()
}

func (m Message[P]) id() string {
	if m.Format.id != "" {
		return m.Format.id
	}
	return m.Params.Kind().MessageID()
}

func (m Message[P]) args() []string {
	own := m.Params.Args()
	out := make([]string, 0, len(own)+len(m.Format.args))
	out = append(out, own...)
	return append(out, m.Format.args...)
}

func (m Message[P]) params() Params {
	return m.Params
}
