package validator

import "reflect"

// CheckMinItems reports whether items has at least min elements.
func CheckMinItems[T any](items []T, min int) (MinItemsParams, bool) {
	return MinItemsParams{Length: len(items), MinItems: min}, len(items) >= min
}

// CheckMaxItems reports whether items has at most max elements.
func CheckMaxItems[T any](items []T, max int) (MaxItemsParams, bool) {
	return MaxItemsParams{Length: len(items), MaxItems: max}, len(items) <= max
}

// CheckUniqueItems reports whether all elements are distinct, in O(n) using a set.
// When T is an interface type and some element holds an unhashable value
// (a slice, a map, a func), it compares pairs instead and never panics.
func CheckUniqueItems[T comparable](items []T) (UniqueItemsParams, bool) {
	if reflect.TypeFor[T]().Kind() == reflect.Interface && !allHashable(items) {
		return CheckUniqueItemsFunc(items, func(a, b T) bool { return dynamicEqual(a, b) })
	}
	seen := make(map[T]int, len(items))
	for i, item := range items {
		if first, ok := seen[item]; ok {
			return UniqueItemsParams{First: first, Duplicate: i}, false
		}
		seen[item] = i
	}
	return UniqueItemsParams{First: -1, Duplicate: -1}, true
}

// CheckUniqueItemsFunc reports whether all elements are distinct under eq,
// comparing every pair. The first reported pair matches CheckUniqueItems when
// eq is ==: the earliest index that repeats a previous element.
func CheckUniqueItemsFunc[T any](items []T, eq func(a, b T) bool) (UniqueItemsParams, bool) {
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if eq(items[j], items[i]) {
				return UniqueItemsParams{First: j, Duplicate: i}, false
			}
		}
	}
	return UniqueItemsParams{First: -1, Duplicate: -1}, true
}

func allHashable[T any](items []T) bool {
	for _, item := range items {
		if v := reflect.ValueOf(any(item)); v.IsValid() && !v.Comparable() {
			return false
		}
	}
	return true
}

// dynamicEqual is == for comparable values and reflect.DeepEqual otherwise.
func dynamicEqual(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if (!va.IsValid() || va.Comparable()) && (!vb.IsValid() || vb.Comparable()) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// CheckMinProperties reports whether m has at least min entries.
func CheckMinProperties[K comparable, V any](m map[K]V, min int) (MinPropertiesParams, bool) {
	return MinPropertiesParams{Size: len(m), MinProperties: min}, len(m) >= min
}

// CheckMaxProperties reports whether m has at most max entries.
func CheckMaxProperties[K comparable, V any](m map[K]V, max int) (MaxPropertiesParams, bool) {
	return MaxPropertiesParams{Size: len(m), MaxProperties: max}, len(m) <= max
}

// MinItems requires at least min elements.
func MinItems[T any](min int) Rule[[]T, MinItemsParams] {
	return NewRule(func(items []T) (MinItemsParams, bool) { return CheckMinItems(items, min) })
}

// MaxItems requires at most max elements.
func MaxItems[T any](max int) Rule[[]T, MaxItemsParams] {
	return NewRule(func(items []T) (MaxItemsParams, bool) { return CheckMaxItems(items, max) })
}

// UniqueItems requires pairwise-distinct elements of a hashable type.
func UniqueItems[T comparable]() Rule[[]T, UniqueItemsParams] {
	return NewRule(CheckUniqueItems[T])
}

// UniqueItemsFunc requires pairwise-distinct elements under eq, for element
// types that cannot be map keys.
func UniqueItemsFunc[T any](eq func(a, b T) bool) Rule[[]T, UniqueItemsParams] {
	return NewRule(func(items []T) (UniqueItemsParams, bool) { return CheckUniqueItemsFunc(items, eq) })
}

// MinProperties requires at least min map entries.
func MinProperties[K comparable, V any](min int) Rule[map[K]V, MinPropertiesParams] {
	return NewRule(func(m map[K]V) (MinPropertiesParams, bool) { return CheckMinProperties(m, min) })
}

// MaxProperties requires at most max map entries.
func MaxProperties[K comparable, V any](max int) Rule[map[K]V, MaxPropertiesParams] {
	return NewRule(func(m map[K]V) (MaxPropertiesParams, bool) { return CheckMaxProperties(m, max) })
}
