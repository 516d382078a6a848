package schema

import "reflect"

// Check validates payload against the schema of T.
func Check[T any](c *Cache, payload []byte) error {
	return c.Check(reflect.TypeFor[T](), payload)
}

// Of returns the raw schema document of T.
func Of[T any](c *Cache) ([]byte, error) {
	return c.Schema(reflect.TypeFor[T]())
}
