package validator_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

func decode(t *testing.T, e validator.Errors) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, e)), &out))
	return out
}

func TestDocumentShapes(t *testing.T) {
	t.Parallel()

	t.Run("newtype", func(t *testing.T) {
		got := decode(t, validator.Value(4, validator.Minimum(5)))
		assert.Equal(t, map[string]any{
			"errors": []any{"`4` must be `>= 5`"},
		}, got)
	})

	t.Run("array with no failed items still has an items map", func(t *testing.T) {
		got := decode(t, validator.Slice([]int{1, 2, 3, 2}, nil, validator.UniqueItems[int]()))
		assert.Equal(t, map[string]any{
			"errors": []any{"the items must be unique"},
			"items":  map[string]any{},
		}, got)
	})

	t.Run("nested object", func(t *testing.T) {
		got := decode(t, validator.Tree(outer{Val: inner{Inner: -1}}.Validate()))
		assert.Equal(t, map[string]any{
			"errors": []any{},
			"properties": map[string]any{
				"val": map[string]any{
					"errors": []any{},
					"properties": map[string]any{
						"inner": map[string]any{
							"errors": []any{"`-1` must be `>= 0`"},
						},
					},
				},
			},
		}, got)
	})

	t.Run("empty newtype serializes an empty list", func(t *testing.T) {
		assert.JSONEq(t, `{"errors":[]}`, mustJSON(t, validator.NewTypeErrors(nil)))
	})
}

func TestDocumentKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	root := validator.NewObjectErrors()
	root.SetProperty("zeta", validator.NewTypeErrors{leaf("z")})
	root.SetProperty("alpha", validator.NewTypeErrors{leaf("a")})

	raw := mustJSON(t, root)
	assert.Less(t, strings.Index(raw, `"zeta"`), strings.Index(raw, `"alpha"`))
}

func TestMarshalIndent(t *testing.T) {
	t.Parallel()

	data, err := validator.MarshalIndent(validator.NewTypeErrors{leaf("x")}, nil, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"errors\": [\n    \"x\"\n  ]\n}", string(data))
}

func TestToDocumentLocalized(t *testing.T) {
	t.Parallel()

	loc := validator.LocalizerFunc(func(id string, args ...string) (string, error) {
		return "localized:" + id, nil
	})
	tree := validator.Value(4, validator.Minimum(5).WithLocalized(""))

	doc, err := validator.ToDocument(tree, loc)
	require.NoError(t, err)
	assert.Equal(t, []string{"localized:validation.minimum"}, doc.Errors)
	assert.False(t, doc.IsEmpty())

	doc, err = validator.ToDocument(tree, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"`4` must be `>= 5`"}, doc.Errors)
}

func TestMarshalIndentKeepsOperators(t *testing.T) {
	t.Parallel()

	data, err := validator.MarshalIndent(validator.Value(4, validator.Minimum(5)), nil, "", " ")
	require.NoError(t, err)
	assert.Contains(t, string(data), "`4` must be `>= 5`")
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	root := validator.NewObjectErrors(leaf("root"))
	items := validator.NewArrayErrors()
	items.SetItem(3, validator.NewTypeErrors{leaf("bad")})
	root.SetProperty("tags", items)

	var doc validator.Document
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, root)), &doc))

	assert.Equal(t, []string{"root"}, doc.Errors)
	require.NotNil(t, doc.Properties)
	tags, ok := doc.Properties.Get("tags")
	require.True(t, ok)
	require.NotNil(t, tags.Items)
	item, ok := tags.Items.Get("3")
	require.True(t, ok)
	assert.Equal(t, []string{"bad"}, item.Errors)
	assert.False(t, doc.IsEmpty())
}
