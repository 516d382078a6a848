package validator

import (
	"strconv"
	"strings"
)

// FlatError is one leaf message addressed by a JSON-pointer-style path made of
// /properties/<key> and /items/<index> segments. The root path is "".
type FlatError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Flatten walks the tree depth-first in insertion order and returns one record
// per leaf, rendered without a localizer.
func Flatten(e Errors) []FlatError {
	flat, _ := flatten(e, nil, false)
	return flat
}

// FlattenLocalized is Flatten rendering through loc. It fails on the first
// message the localizer cannot resolve.
func FlattenLocalized(e Errors, loc Localizer) ([]FlatError, error) {
	return flatten(e, loc, true)
}

// PrefixPaths re-addresses records flattened from a subtree under prefix.
func PrefixPaths(prefix string, flat []FlatError) []FlatError {
	out := make([]FlatError, len(flat))
	for i, f := range flat {
		out[i] = FlatError{Path: prefix + f.Path, Message: f.Message}
	}
	return out
}

// PropertySegment returns the path segment for an object key, escaped per RFC 6901.
func PropertySegment(key string) string {
	return "/properties/" + escapePointer(key)
}

// ItemSegment returns the path segment for an array index.
func ItemSegment(index int) string {
	return "/items/" + strconv.Itoa(index)
}

// Regroup collects flattened records by path, preserving first-seen path order
// in the returned key slice.
func Regroup(flat []FlatError) (paths []string, messages map[string][]string) {
	messages = make(map[string][]string)
	for _, f := range flat {
		if _, ok := messages[f.Path]; !ok {
			paths = append(paths, f.Path)
		}
		messages[f.Path] = append(messages[f.Path], f.Message)
	}
	return paths, messages
}

func flatten(e Errors, loc Localizer, localized bool) ([]FlatError, error) {
	var out []FlatError
	if e == nil {
		return out, nil
	}

	own, children := parts(e)
	for _, item := range own {
		msg, err := renderOne(item, loc, localized)
		if err != nil {
			return nil, err
		}
		out = append(out, FlatError{Message: msg})
	}

	for _, child := range children {
		sub, err := flatten(child.tree, loc, localized)
		if err != nil {
			return nil, err
		}
		out = append(out, PrefixPaths(child.segment, sub)...)
	}
	return out, nil
}

type childTree struct {
	segment string
	tree    Errors
}

func parts(e Errors) (VecErrors, []childTree) {
	switch t := e.(type) {
	case NewTypeErrors:
		return VecErrors(t), nil
	case *ArrayErrors:
		children := make([]childTree, 0, t.Len())
		for pair := t.oldest(); pair != nil; pair = pair.Next() {
			children = append(children, childTree{segment: ItemSegment(pair.Key), tree: pair.Value})
		}
		return t.Errors, children
	case *ObjectErrors:
		children := make([]childTree, 0, t.Len())
		for pair := t.oldest(); pair != nil; pair = pair.Next() {
			children = append(children, childTree{segment: PropertySegment(pair.Key), tree: pair.Value})
		}
		return t.Errors, children
	}
	return nil, nil
}

func renderOne(e Error, loc Localizer, localized bool) (string, error) {
	if !localized {
		return e.String(), nil
	}
	return e.Render(loc)
}

func escapePointer(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
