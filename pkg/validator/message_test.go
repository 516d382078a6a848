package validator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

func TestMessageStrategies(t *testing.T) {
	t.Parallel()

	params := validator.MinimumParams[int]{Value: 4, Minimum: 5}

	t.Run("default", func(t *testing.T) {
		m := validator.NewMessage(params)
		s, err := m.Render(nil)
		require.NoError(t, err)
		assert.Equal(t, "`4` must be `>= 5`", s)
		assert.Empty(t, m.MessageID())
	})

	t.Run("fixed", func(t *testing.T) {
		m := validator.Message[validator.MinimumParams[int]]{
			Params: params,
			Format: validator.FixedFormat[validator.MinimumParams[int]]("too small"),
		}
		assert.Equal(t, "too small", m.String())
	})

	t.Run("func", func(t *testing.T) {
		m := validator.Message[validator.MinimumParams[int]]{
			Params: params,
			Format: validator.FuncFormat(func(p validator.MinimumParams[int]) string {
				return fmt.Sprintf("need %d more", p.Minimum-p.Value)
			}),
		}
		assert.Equal(t, "need 1 more", m.String())
	})

	t.Run("nil func falls back to default", func(t *testing.T) {
		m := validator.Message[validator.MinimumParams[int]]{
			Params: params,
			Format: validator.FuncFormat[validator.MinimumParams[int]](nil),
		}
		assert.Equal(t, "`4` must be `>= 5`", m.String())
	})
}

func TestLocalizedMessage(t *testing.T) {
	t.Parallel()

	var gotID string
	var gotArgs []string
	loc := validator.LocalizerFunc(func(id string, args ...string) (string, error) {
		gotID, gotArgs = id, args
		return "zu klein", nil
	})

	rule := validator.Minimum(5).WithLocalized("age.minimum", "field", "age")
	errs := rule.Check(4)
	require.Len(t, errs, 1)

	t.Run("renders through the localizer", func(t *testing.T) {
		s, err := errs[0].Render(loc)
		require.NoError(t, err)
		assert.Equal(t, "zu klein", s)
		assert.Equal(t, "age.minimum", gotID)
		assert.Equal(t, []string{"value", "4", "minimum", "5", "field", "age"}, gotArgs)
	})

	t.Run("needs a localizer", func(t *testing.T) {
		_, err := errs[0].Render(nil)
		assert.ErrorIs(t, err, validator.ErrNoLocalizer)
	})

	t.Run("string falls back to default text", func(t *testing.T) {
		assert.Equal(t, "`4` must be `>= 5`", errs[0].String())
		assert.Equal(t, "age.minimum", errs[0].MessageID())
	})

	t.Run("default id comes from the kind", func(t *testing.T) {
		e := validator.MaxLength(1).WithLocalized("").Check("ab")[0]
		assert.Equal(t, "validation.max_length", e.MessageID())
	})

	t.Run("unknown id surfaces the localizer error", func(t *testing.T) {
		strict := validator.LocalizerFunc(func(id string, _ ...string) (string, error) {
			return "", fmt.Errorf("%w: %s", validator.ErrMessageNotFound, id)
		})
		_, err := validator.FlattenLocalized(validator.NewTypeErrors(errs), strict)
		assert.ErrorIs(t, err, validator.ErrMessageNotFound)

		var locErr *validator.LocalizeError
		require.ErrorAs(t, err, &locErr)
		assert.Equal(t, "age.minimum", locErr.ID)
	})
}

func TestRuleOverrides(t *testing.T) {
	t.Parallel()

	base := validator.MinLength(3)
	fixed := base.WithMessage("too short")
	formatted := base.WithFormatter(func(p validator.MinLengthParams) string {
		return strings.Repeat("*", p.MinLength-p.Length)
	})

	assert.Equal(t, "the length of the value must be `>= 3`", base.Check("a")[0].String())
	assert.Equal(t, "too short", fixed.Check("a")[0].String())
	assert.Equal(t, "**", formatted.Check("a")[0].String())
	assert.Equal(t, validator.KindMinLength, fixed.Check("a")[0].Kind())
}

func TestVecErrorsRender(t *testing.T) {
	t.Parallel()

	errs := validator.Apply("",
		validator.MinLength(1).WithLocalized("required"),
		validator.MustPattern(`^x`).WithMessage("must start with x"),
	)
	loc := validator.LocalizerFunc(func(id string, _ ...string) (string, error) {
		return "[" + id + "]", nil
	})

	out, err := errs.Render(loc)
	require.NoError(t, err)
	assert.Equal(t, []string{"[required]", "must start with x"}, out)
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unique_items", validator.KindUniqueItems.String())
	assert.Equal(t, "validation.exclusive_minimum", validator.KindExclusiveMinimum.MessageID())

	text, err := validator.KindCustom.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "custom", string(text))
}
