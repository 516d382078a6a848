package validator_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

func TestItemsCount(t *testing.T) {
	t.Parallel()

	t.Run("min items", func(t *testing.T) {
		assert.Empty(t, validator.MinItems[int](2).Check([]int{1, 2}))
		errs := validator.MinItems[int](2).Check([]int{1})
		require.Len(t, errs, 1)
		assert.Equal(t, "the length of the items must be `>= 2`", errs[0].String())
	})

	t.Run("max items", func(t *testing.T) {
		assert.Empty(t, validator.MaxItems[string](1).Check(nil))
		errs := validator.MaxItems[string](1).Check([]string{"a", "b"})
		require.Len(t, errs, 1)
		assert.Equal(t, validator.MaxItemsParams{Length: 2, MaxItems: 1}, errs[0].Params())
	})

	t.Run("both violated on one field yields two errors", func(t *testing.T) {
		tree := validator.Slice([]int{1, 2, 3}, nil,
			validator.MinItems[int](5),
			validator.MaxItems[int](2),
		)
		arr, ok := tree.(*validator.ArrayErrors)
		require.True(t, ok)
		assert.Equal(t, []validator.Kind{validator.KindMinItems, validator.KindMaxItems}, arr.Errors.Kinds())
	})
}

func TestUniqueItems(t *testing.T) {
	t.Parallel()

	t.Run("reports first duplicate pair", func(t *testing.T) {
		errs := validator.UniqueItems[int]().Check([]int{1, 2, 3, 2})
		require.Len(t, errs, 1)
		assert.Equal(t, validator.KindUniqueItems, errs[0].Kind())
		assert.Equal(t, validator.UniqueItemsParams{First: 1, Duplicate: 3}, errs[0].Params())
		assert.Equal(t, "the items must be unique", errs[0].String())
	})

	t.Run("hash and pairwise paths agree", func(t *testing.T) {
		eq := func(a, b int) bool { return a == b }
		inputs := [][]int{
			nil,
			{1},
			{1, 1},
			{1, 2, 3},
			{3, 1, 2, 1, 3},
			{5, 4, 3, 2, 1, 0, 5},
			{7, 8, 9, 8, 7},
		}
		for _, in := range inputs {
			hp, hok := validator.CheckUniqueItems(in)
			pp, pok := validator.CheckUniqueItemsFunc(in, eq)
			assert.Equal(t, hok, pok, "input %v", in)
			assert.Equal(t, hp, pp, "input %v", in)
		}
	})

	t.Run("non-hashable elements use pairwise equality", func(t *testing.T) {
		type tagged struct {
			Tags []string
		}
		rule := validator.UniqueItemsFunc(func(a, b tagged) bool { return reflect.DeepEqual(a, b) })

		assert.Empty(t, rule.Check([]tagged{{Tags: []string{"a"}}, {Tags: []string{"b"}}}))
		assert.Len(t, rule.Check([]tagged{{Tags: []string{"a"}}, {Tags: []string{"a"}}}), 1)
	})

	t.Run("interface elements holding unhashable values do not panic", func(t *testing.T) {
		rule := validator.UniqueItems[any]()

		var errs validator.VecErrors
		require.NotPanics(t, func() {
			errs = rule.Check([]any{[]int{1}, []int{1}})
		})
		require.Len(t, errs, 1)
		assert.Equal(t, validator.UniqueItemsParams{First: 0, Duplicate: 1}, errs[0].Params())

		mixed := []any{1, map[string]int{"a": 1}, "x", nil, map[string]int{"a": 2}, 1}
		params, ok := validator.CheckUniqueItems(mixed)
		assert.False(t, ok)
		assert.Equal(t, validator.UniqueItemsParams{First: 0, Duplicate: 5}, params)

		_, ok = validator.CheckUniqueItems([]any{[]int{1}, []int{2}, nil, 3})
		assert.True(t, ok)
	})

	t.Run("interface elements agree with the pairwise path", func(t *testing.T) {
		inputs := [][]any{
			{1, "1", 1.0},
			{nil, 2, nil},
			{[]string{"a"}, "a", []string{"a"}},
		}
		for _, in := range inputs {
			hp, hok := validator.CheckUniqueItems(in)
			pp, pok := validator.CheckUniqueItemsFunc(in, func(a, b any) bool { return reflect.DeepEqual(a, b) })
			assert.Equal(t, hok, pok, "input %v", in)
			assert.Equal(t, hp, pp, "input %v", in)
		}
	})
}

func TestProperties(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2, "c": 3}

	assert.Empty(t, validator.MinProperties[string, int](3).Check(m))
	assert.Empty(t, validator.MaxProperties[string, int](3).Check(m))

	errs := validator.MinProperties[string, int](4).Check(m)
	require.Len(t, errs, 1)
	assert.Equal(t, "the size of the properties must be `>= 4`", errs[0].String())

	errs = validator.MaxProperties[string, int](2).Check(m)
	require.Len(t, errs, 1)
	assert.Equal(t, validator.KindMaxProperties, errs[0].Kind())
	assert.Equal(t, "the size of the properties must be `<= 2`", errs[0].String())
}
