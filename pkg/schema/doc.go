// Package schema keeps an explicit cache of JSON Schemas derived from Go
// types. A schema is reflected from the type with invopop/jsonschema and
// compiled with santhosh-tekuri/jsonschema at most once per reflect.Type, the
// first time it is needed. Payloads are then checked against the compiled
// schema before they are decoded, which catches structural problems (wrong
// JSON types, missing required or unknown properties) ahead of validation.
//
// The cache is an ordinary value owned by the caller, usually created at
// start-up and shared by request handlers:
//
//	cache := schema.New(schema.WithLogger(log))
//	if err := schema.Check[demo.Signup](cache, body); err != nil {
//		var verr *schema.ViolationError
//		if errors.As(err, &verr) { ... }
//	}
package schema
