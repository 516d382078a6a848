package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

type renamed struct {
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email"`
	Internal  string `json:"-"`
	Plain     string
	Same      string `json:"Same"`
}

func TestRenamesFromTags(t *testing.T) {
	t.Parallel()

	m := validator.RenamesFromTags[renamed]("json")
	assert.Equal(t, validator.RenameMap{
		"FirstName": "first_name",
		"Email":     "email",
	}, m)

	assert.Equal(t, "first_name", m.Key("FirstName"))
	assert.Equal(t, "Plain", m.Key("Plain"))

	assert.Equal(t, m, validator.RenamesFromTags[*renamed]("json"))
	assert.Empty(t, validator.RenamesFromTags[renamed]("yaml"))
}
