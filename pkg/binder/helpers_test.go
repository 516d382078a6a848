package binder_test

import (
	"github.com/dmitrymomot/valtree/pkg/validator"
)

type signup struct {
	Email string   `json:"email"`
	Age   int      `json:"age"`
	Tags  []string `json:"tags,omitempty"`
	Nick  *string  `json:"nick,omitempty"`
}

func (s signup) Validate() error {
	return validator.NewObject().
		Field("email", validator.Value(s.Email, validator.MinLength(3))).
		Field("age", validator.Value(s.Age, validator.Minimum(18).WithLocalized("validation.minimum"))).
		Field("tags", validator.Slice(s.Tags, validator.Each(validator.MaxLength(5)))).
		Field("nick", validator.Optional(s.Nick, validator.Each(validator.MinLength(2)))).
		Err()
}

type search struct {
	Term     string   `query:"q"`
	Page     int      `query:"page"`
	Tags     []string `json:"tags"`
	Active   *bool    `query:"active"`
	Internal string   `query:"-"`
	Limit    uint
}

func (s *search) Validate() error {
	return validator.NewObject().
		Field("q", validator.Value(s.Term, validator.MinLength(1))).
		Field("page", validator.Value(s.Page, validator.Minimum(1))).
		Err()
}

type plain struct {
	Name string `json:"name"`
}
