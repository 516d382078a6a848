package validator_test

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func leaf(text string) validator.Error {
	return validator.CustomError(text)
}

var treeKeys = []string{"a", "b/c", "~d", "e"}

// randomSequential builds trees that only use the NewType and Array shapes,
// which merge with each other at every depth.
func randomSequential(r *rand.Rand, depth int, seq *int) validator.Errors {
	next := func() validator.Error {
		*seq++
		return leaf(fmt.Sprintf("e%d", *seq))
	}
	if depth == 0 || r.IntN(3) == 0 {
		n := r.IntN(3)
		out := make(validator.NewTypeErrors, 0, n)
		for range n {
			out = append(out, next())
		}
		return out
	}
	arr := validator.NewArrayErrors()
	for range r.IntN(3) {
		arr.Errors = append(arr.Errors, next())
	}
	for range r.IntN(4) {
		arr.SetItem(r.IntN(4), randomSequential(r, depth-1, seq))
	}
	return arr
}

// randomTree builds trees of every shape without merging siblings.
func randomTree(r *rand.Rand, depth int, seq *int) validator.Errors {
	next := func() validator.Error {
		*seq++
		return leaf(fmt.Sprintf("m%d", *seq))
	}
	own := func() []validator.Error {
		var out []validator.Error
		for range r.IntN(3) {
			out = append(out, next())
		}
		return out
	}
	if depth == 0 {
		return validator.NewTypeErrors(append(own(), next()))
	}
	switch r.IntN(3) {
	case 0:
		return validator.NewTypeErrors(own())
	case 1:
		arr := validator.NewArrayErrors(own()...)
		for i := range r.IntN(4) {
			arr.SetItem(i*2, randomTree(r, depth-1, seq))
		}
		return arr
	default:
		obj := validator.NewObjectErrors(own()...)
		for _, key := range treeKeys[:r.IntN(len(treeKeys)+1)] {
			obj.SetProperty(key, randomTree(r, depth-1, seq))
		}
		return obj
	}
}
