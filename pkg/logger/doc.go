// Package logger builds *slog.Logger values for valtree and keeps attribute
// names consistent.
//
// New takes functional options: an output format, a level, static attributes
// and ContextExtractor callbacks that add request-scoped values (request id,
// client address, negotiated locale) to every record logged with a context.
// WithEnvironment applies the development, staging or production preset.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "valtree"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "request rejected", logger.Stage("validation"), logger.Path("/properties/age"))
//
// The attribute helpers (Error, Path, Stage, Locale, Kind, Type, ...) return
// an empty slog.Attr for empty input so they can be passed unconditionally.
package logger
