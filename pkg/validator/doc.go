// Package validator is a structural validation engine: it evaluates declarative
// constraints over a value whose shape mirrors named and positional fields and
// returns a mergeable error tree describing every violation at every nesting
// level. Evaluation never stops at the first failure.
//
// # Architecture
//
// The package is split by concern, one source file per family:
//
//   - literal.go, params.go   – typed, immutable snapshots of a rule's inputs
//   - message.go              – deferred formatting strategies (default, fixed,
//     function, localized) behind Message[P]
//   - error.go, tree.go       – the Error leaf, VecErrors and the three-shape
//     Errors tree (NewTypeErrors, ArrayErrors, ObjectErrors)
//   - merge.go                – Merge, the associative combination of trees
//   - *_rules.go              – rule constructors and pure evaluators
//   - compose.go, object.go   – recursion over optional, sequence and nested
//     values and the ObjectBuilder used by hand-written Validate methods
//   - flatten.go, document.go – (path, message) flattening and the wire document
//
// There is no hidden global state except memoized rename maps, so the package
// is goroutine-safe: independent values can be validated concurrently.
//
// # Usage
//
// A type opts into validation by implementing Validatable. The Validate method
// is the explicit call sequence a code generator would otherwise emit:
//
//	var codePattern = validator.MustPattern(`^[A-Z]{3}$`)
//
//	type Address struct {
//		Code string `json:"code"`
//	}
//
//	func (a Address) Validate() error {
//		return validator.NewObject().
//			Field("code", validator.Value(a.Code, codePattern)).
//			Err()
//	}
//
//	type Signup struct {
//		Age     int       `json:"age"`
//		Tags    []string  `json:"tags"`
//		Address *Address  `json:"address"`
//	}
//
//	func (s Signup) Validate() error {
//		return validator.NewObject().
//			Field("age", validator.Value(s.Age, validator.Minimum(18))).
//			Field("tags", validator.Slice(s.Tags,
//				validator.Each(validator.MaxLength(16)),
//				validator.UniqueItems[string](),
//			)).
//			Field("address", validator.Optional(s.Address, validator.Nested[Address])).
//			Err()
//	}
//
// # Messages
//
// Rules return parameters, never rendered text. A Message pairs the parameters
// with a formatting strategy and renders only when asked, so the same tree can
// be rendered in several locales:
//
//	rule := validator.Minimum(18).WithLocalized("signup.too_young")
//	flat, err := validator.FlattenLocalized(tree, translator.Localizer("de"))
//
// # Error Handling
//
// Constraint failures are values: every shape of Errors implements error and
// can be recovered from a Validate result with Tree. Merging an ObjectErrors
// with a sequential shape is a wiring bug and panics with ErrShapeMismatch.
package validator
