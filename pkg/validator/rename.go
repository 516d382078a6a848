package validator

import (
	"reflect"
	"strings"
	"sync"
)

// RenameMap maps a field's internal name to its external (wire) name.
type RenameMap map[string]string

// Key returns the external name for name, or name itself when unmapped.
func (m RenameMap) Key(name string) string {
	if ext, ok := m[name]; ok {
		return ext
	}
	return name
}

type renameKey struct {
	typ reflect.Type
	tag string
}

var renameCache sync.Map // renameKey -> RenameMap

// RenamesFromTags derives a RenameMap from struct tags of T (or *T). The tag
// value up to the first comma is the external name; "-" and empty names keep
// the Go field name. Results are memoized per type and tag.
func RenamesFromTags[T any](tag string) RenameMap {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	key := renameKey{typ: t, tag: tag}
	if cached, ok := renameCache.Load(key); ok {
		return cached.(RenameMap)
	}

	m := make(RenameMap)
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "" || name == "-" || name == f.Name {
				continue
			}
			m[f.Name] = name
		}
	}

	actual, _ := renameCache.LoadOrStore(key, m)
	return actual.(RenameMap)
}
