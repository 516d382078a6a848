// Package binder turns HTTP requests into validated values.
//
// An extractor runs three stages and stops at the first that fails:
//
//  1. schema: the raw JSON body is checked against the JSON Schema derived
//     from the target type (only when the Binder holds a schema cache);
//  2. parse: the body or query string is decoded strictly into the type;
//  3. validation: the value's Validate method runs and its error tree is kept.
//
// Failures are returned as *Rejection, which records the stage. Render and
// Binder.WriteRejection turn a rejection into a response: 400 for schema and
// parse failures, 422 with the error tree document for validation failures.
// A message the localizer cannot render falls back to its default text and
// the miss is logged.
//
//	b := binder.New(binder.WithSchemaCache(schema.New()))
//
//	func create(w http.ResponseWriter, r *http.Request) {
//		req, err := binder.JSON[SignupRequest](b, r)
//		if err != nil {
//			b.WriteRejection(w, r, err, translator.LocalizerFromContext(r.Context()))
//			return
//		}
//		// req passed every stage
//	}
package binder
