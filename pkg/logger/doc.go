// Package logger builds *slog.Logger values and defines the attribute
// helpers used across the module.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("formrequest")),
//		logger.WithContextExtractors(requestid.Extractor),
//	)
//
// Context extractors run on every record, so request-scoped values such as
// the request id are attached without building a logger per request.
package logger
