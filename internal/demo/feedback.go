package demo

import (
	"github.com/dmitrymomot/valtree/pkg/playground"
)

var tagged = playground.New()

// Feedback declares its constraints with struct tags and validates through
// the go-playground bridge, producing the same error tree as the hand-written types.
type Feedback struct {
	Email   string   `json:"email" yaml:"email" toml:"email" validate:"required,email"`
	Rating  int      `json:"rating" yaml:"rating" toml:"rating" validate:"gte=1,lte=5"`
	Topic   string   `json:"topic" yaml:"topic" toml:"topic" validate:"oneof=bug idea praise"`
	Message string   `json:"message" yaml:"message" toml:"message" validate:"min=10,max=2000"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty" validate:"max=3,unique,dive,min=2"`
}

// Validate implements validator.Validatable.
func (f Feedback) Validate() error {
	return tagged.Struct(f)
}
