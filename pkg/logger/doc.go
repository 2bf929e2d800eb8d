// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes taken from context.Context.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// on each emitted record:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "submission accepted", logger.Component("personaldata"))
//
// Attribute helpers in attr.go keep key names consistent. Form handlers log
// field names and reason codes through Field, Reason and InvalidFields and
// never the submitted values.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
