// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses a client supplied X-Request-ID header when it is
// short and made of [a-zA-Z0-9_-]; otherwise it generates a UUIDv4. The id is
// stored in the request context, echoed in the response header and can be
// added to every log record through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
