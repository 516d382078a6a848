package validator_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("pre-order with pointer paths", func(t *testing.T) {
		items := validator.NewArrayErrors(leaf("too many"))
		items.SetItem(4, validator.NewTypeErrors{leaf("bad item")})

		root := validator.NewObjectErrors(leaf("root"))
		root.SetProperty("name", validator.NewTypeErrors{leaf("bad name")})
		root.SetProperty("items", items)

		assert.Equal(t, []validator.FlatError{
			{Path: "", Message: "root"},
			{Path: "/properties/name", Message: "bad name"},
			{Path: "/properties/items", Message: "too many"},
			{Path: "/properties/items/items/4", Message: "bad item"},
		}, validator.Flatten(root))
	})

	t.Run("keys are escaped", func(t *testing.T) {
		root := validator.NewObjectErrors()
		root.SetProperty("a/b~c", validator.NewTypeErrors{leaf("x")})
		flat := validator.Flatten(root)
		require.Len(t, flat, 1)
		assert.Equal(t, "/properties/a~1b~0c", flat[0].Path)
	})

	t.Run("empty tree", func(t *testing.T) {
		assert.Empty(t, validator.Flatten(validator.NewTypeErrors(nil)))
		assert.Empty(t, validator.Flatten(nil))
	})
}

func TestPrefixPaths(t *testing.T) {
	t.Parallel()

	flat := []validator.FlatError{{Path: "", Message: "a"}, {Path: "/items/0", Message: "b"}}
	got := validator.PrefixPaths(validator.PropertySegment("tags"), flat)
	assert.Equal(t, "/properties/tags", got[0].Path)
	assert.Equal(t, "/properties/tags/items/0", got[1].Path)
	assert.Equal(t, "", flat[0].Path)
	assert.Equal(t, "/items/12", validator.ItemSegment(12))
}

func TestRegroup(t *testing.T) {
	t.Parallel()

	paths, messages := validator.Regroup([]validator.FlatError{
		{Path: "/properties/b", Message: "1"},
		{Path: "", Message: "2"},
		{Path: "/properties/b", Message: "3"},
	})
	assert.Equal(t, []string{"/properties/b", ""}, paths)
	assert.Equal(t, []string{"1", "3"}, messages["/properties/b"])
	assert.Equal(t, []string{"2"}, messages[""])
}

func TestFlattenMatchesDocument(t *testing.T) {
	t.Parallel()

	escape := strings.NewReplacer("~", "~0", "/", "~1")
	var walk func(prefix string, d *validator.Document, out *[]string)
	walk = func(prefix string, d *validator.Document, out *[]string) {
		for _, m := range d.Errors {
			*out = append(*out, prefix+"|"+m)
		}
		if d.Items != nil {
			for pair := d.Items.Oldest(); pair != nil; pair = pair.Next() {
				walk(prefix+"/items/"+pair.Key, pair.Value, out)
			}
		}
		if d.Properties != nil {
			for pair := d.Properties.Oldest(); pair != nil; pair = pair.Next() {
				walk(prefix+"/properties/"+escape.Replace(pair.Key), pair.Value, out)
			}
		}
	}

	r := rand.New(rand.NewPCG(3, 5))
	seq := 0
	for range 100 {
		tree := randomTree(r, 4, &seq)

		paths, messages := validator.Regroup(validator.Flatten(tree))
		var fromFlat []string
		for _, p := range paths {
			for _, m := range messages[p] {
				fromFlat = append(fromFlat, p+"|"+m)
			}
		}

		doc, err := validator.ToDocument(tree, nil)
		require.NoError(t, err)
		var fromDoc []string
		walk("", doc, &fromDoc)

		slices.Sort(fromFlat)
		slices.Sort(fromDoc)
		require.Equal(t, fromDoc, fromFlat)
		require.Len(t, fromFlat, tree.Count())
	}
}

func TestErrorsText(t *testing.T) {
	t.Parallel()

	root := validator.NewObjectErrors()
	root.SetProperty("age", validator.Value(4, validator.Minimum(5)))
	assert.Equal(t, "validation failed: /properties/age: `4` must be `>= 5`", root.Error())
}
