package playground_test

import (
	"testing"

	gp "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/playground"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

type address struct {
	Street string `json:"street" validate:"required"`
	Zip    string `json:"zip" validate:"len=5"`
}

type item struct {
	Name string `json:"name" validate:"min=2"`
}

type order struct {
	ID      string   `json:"id" validate:"required"`
	Qty     int      `json:"qty" validate:"gte=1,lte=10"`
	Items   []item   `json:"items" validate:"min=1,dive"`
	Status  string   `json:"status" validate:"oneof=new paid"`
	Address address  `json:"address"`
	Tags    []string `json:"tags" validate:"unique"`
	Price   float64  `json:"price" validate:"gt=0"`
}

func validOrder() order {
	return order{
		ID:      "o-1",
		Qty:     2,
		Items:   []item{{Name: "pen"}},
		Status:  "new",
		Address: address{Street: "Main", Zip: "12345"},
		Tags:    []string{"a", "b"},
		Price:   9.5,
	}
}

func flatPaths(tree validator.Errors) []string {
	flat := validator.Flatten(tree)
	out := make([]string, len(flat))
	for i, f := range flat {
		out[i] = f.Path
	}
	return out
}

func TestStruct(t *testing.T) {
	t.Parallel()

	v := playground.New()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, v.Struct(validOrder()))
	})

	t.Run("failures land on json paths", func(t *testing.T) {
		t.Parallel()
		o := validOrder()
		o.ID = ""
		o.Qty = 0
		o.Items = []item{{Name: "ok"}, {Name: "x"}}
		o.Status = "lost"
		o.Address = address{Zip: "123"}
		o.Tags = []string{"a", "b", "a"}
		o.Price = 0

		err := v.Struct(o)
		require.Error(t, err)
		tree := validator.Tree(err)

		assert.Equal(t, []string{
			"/properties/id",
			"/properties/qty",
			"/properties/items/items/1/properties/name",
			"/properties/status",
			"/properties/address/properties/street",
			"/properties/address/properties/zip",
			"/properties/tags",
			"/properties/price",
		}, flatPaths(tree))

		obj, ok := tree.(*validator.ObjectErrors)
		require.True(t, ok)

		qty, ok := obj.Property("qty")
		require.True(t, ok)
		require.Equal(t, 1, qty.Count())
		assert.Equal(t, "validation failed: `0` must be `>= 1`", qty.Error())

		status, _ := obj.Property("status")
		assert.Equal(t, []validator.Kind{validator.KindEnumerate}, validator.VecErrors(status.(validator.NewTypeErrors)).Kinds())

		tags, _ := obj.Property("tags")
		arr, ok := tags.(*validator.ArrayErrors)
		require.True(t, ok)
		require.Len(t, arr.Errors, 1)
		params, ok := arr.Errors[0].Params().(validator.UniqueItemsParams)
		require.True(t, ok)
		assert.Equal(t, validator.UniqueItemsParams{First: 0, Duplicate: 2}, params)

		price, _ := obj.Property("price")
		assert.Equal(t, []validator.Kind{validator.KindExclusiveMinimum}, validator.VecErrors(price.(validator.NewTypeErrors)).Kinds())

		items, _ := obj.Property("items")
		assert.Equal(t, []int{1}, items.(*validator.ArrayErrors).Indices())
	})

	t.Run("string length counts graphemes", func(t *testing.T) {
		t.Parallel()
		o := validOrder()
		o.Items = []item{{Name: "é"}}
		tree := validator.Tree(v.Struct(o))
		flat := validator.Flatten(tree)
		require.Len(t, flat, 1)
		assert.Equal(t, "the length of the value must be `>= 2`", flat[0].Message)
	})

	t.Run("invalid input is not a tree", func(t *testing.T) {
		t.Parallel()
		err := v.Struct(nil)
		require.Error(t, err)
		var tree validator.Errors
		assert.NotErrorAs(t, err, &tree)
	})
}

func TestTagMessagesAreLocalized(t *testing.T) {
	t.Parallel()

	o := validOrder()
	o.ID = ""
	tree := validator.Tree(playground.New().Struct(o))

	var gotID string
	var gotArgs []string
	loc := validator.LocalizerFunc(func(id string, args ...string) (string, error) {
		gotID, gotArgs = id, args
		return "Pflichtfeld", nil
	})
	flat, err := validator.FlattenLocalized(tree, loc)
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Equal(t, "Pflichtfeld", flat[0].Message)
	assert.Equal(t, playground.TagMessageID("required"), gotID)
	assert.Equal(t, []string{"message", "failed on the `required` rule", "field", "id", "param", ""}, gotArgs)

	plain := validator.Flatten(tree)
	assert.Equal(t, "failed on the `required` rule", plain[0].Message)
}

func TestVar(t *testing.T) {
	t.Parallel()

	v := playground.New()
	tree := v.Var(3, "gte=5")
	assert.Equal(t, "validation failed: `3` must be `>= 5`", tree.Error())
	assert.True(t, v.Var(7, "gte=5").IsEmpty())
}

func TestStringLengthTags(t *testing.T) {
	t.Parallel()

	v := playground.New()
	combining := "e\u0301"

	tests := []struct {
		name  string
		value any
		tag   string
		fails bool
	}{
		{name: "min counts one cluster", value: combining, tag: "min=2", fails: true},
		{name: "max counts one cluster", value: combining + "a", tag: "max=2"},
		{name: "len counts clusters", value: combining + combining, tag: "len=2"},
		{name: "gt on string", value: combining, tag: "gt=1", fails: true},
		{name: "lt on string", value: "ab", tag: "lt=3"},
		{name: "min on int keeps value semantics", value: 5, tag: "min=2"},
		{name: "max on int keeps value semantics", value: 5, tag: "max=2", fails: true},
		{name: "min on slice keeps item count", value: []int{1}, tag: "min=2", fails: true},
		{name: "len on map keeps size", value: map[string]int{"a": 1}, tag: "len=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tree := v.Var(tt.value, tt.tag)
			assert.Equal(t, tt.fails, !tree.IsEmpty())
		})
	}

	t.Run("failure carries grapheme length", func(t *testing.T) {
		t.Parallel()
		tree := v.Var(combining, "min=2")
		errs := tree.(validator.NewTypeErrors)
		require.Len(t, errs, 1)
		assert.Equal(t, validator.MinLengthParams{Length: 1, MinLength: 2}, errs[0].Params())
	})
}

func TestCustomValidation(t *testing.T) {
	t.Parallel()

	type code struct {
		Value string `json:"value" validate:"upper"`
	}
	v := playground.New(playground.WithValidation("upper", func(fl gp.FieldLevel) bool {
		s := fl.Field().String()
		return s != "" && s[0] >= 'A' && s[0] <= 'Z'
	}))
	tree := validator.Tree(v.Struct(code{Value: "abc"}))
	assert.Equal(t, []string{"/properties/value"}, flatPaths(tree))
	assert.NotNil(t, v.Engine())
}
