// Package format decodes JSON, YAML and TOML into validatable values and
// validates them in one step.
//
// Every reader returns a *Error on failure whose Stage tells a malformed
// document (StageParse) apart from a well-formed one that violates its
// constraints (StageValidation). Validation failures carry the error tree:
//
//	signup, err := format.FromYAML[demo.Signup](data)
//	var ferr *format.Error
//	if errors.As(err, &ferr) && ferr.Stage == format.StageValidation {
//		doc, _ := validator.ToDocument(ferr.Tree, nil)
//		...
//	}
//
// The writers (ToJSON, ToYAML, ToTOML) are thin encoders used to echo values
// and error documents back in the caller's format.
package format
