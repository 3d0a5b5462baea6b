// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped attributes from context.Context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "application rejected",
//		logger.Position(state.Position),
//		logger.Fields(errs.Fields()...),
//	)
//
// New picks a text or JSON handler and wraps it with LogHandlerDecorator,
// which runs every ContextExtractor on each record.
//
// Attribute helpers keep key names consistent. Fields logs field names only;
// applicant-entered values are never logged. Error returns an empty Attr for
// a nil error, so it can be passed unconditionally.
package logger
