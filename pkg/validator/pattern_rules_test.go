package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

var zipRule = validator.MustPattern(`^\d{5}$`)

func TestPattern(t *testing.T) {
	t.Parallel()

	t.Run("matches", func(t *testing.T) {
		assert.Empty(t, zipRule.Check("12345"))
	})

	t.Run("reports the pattern", func(t *testing.T) {
		errs := zipRule.Check("1234a")
		require.Len(t, errs, 1)
		assert.Equal(t, validator.KindPattern, errs[0].Kind())
		assert.Equal(t, validator.PatternParams{Pattern: `^\d{5}$`}, errs[0].Params())
		assert.Equal(t, `the value must match the pattern of "^\d{5}$"`, errs[0].String())
	})

	t.Run("one compiled rule serves many calls", func(t *testing.T) {
		for _, v := range []string{"00000", "99999", "12345"} {
			assert.Empty(t, zipRule.Check(v))
		}
		assert.Len(t, zipRule.Check(""), 1)
	})

	t.Run("accepts a precompiled expression", func(t *testing.T) {
		rule := validator.Pattern(regexp.MustCompile(`(?i)^[a-z]+$`))
		assert.Empty(t, rule.Check("Hello"))
	})

	t.Run("nil expression panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.Pattern(nil) })
	})

	t.Run("bad expression panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.MustPattern(`(`) })
	})
}
