// Package playground bridges github.com/go-playground/validator/v10 into the
// error tree of package validator.
//
// Types that describe their constraints with `validate` struct tags get the
// same tree, wire document and localization as types with hand-written
// Validate methods. Field names come from the json tag. Tags with a matching
// constraint kind map onto it (min/max/gte/lte on numbers, strings,
// slices and maps; gt/lt; oneof; unique) and localize under the kind's id;
// every other tag becomes a custom error localized under "validation.tag.<tag>".
//
//	v := playground.New()
//	if err := v.Struct(req); err != nil {
//		tree := validator.Tree(err)
//		...
//	}
package playground
