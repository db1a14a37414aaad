// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent keys for the validation engine
// and the command-line tool.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so values stored in a context.Context (a run id, for example)
// show up without passing them around.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "inputfilter"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "validation finished",
//	    logger.Valid(ok),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Configuration
//
//   - WithDevelopment, WithStaging, WithProduction and WithEnvironment set presets.
//   - WithFormat, WithTextFormatter and WithJSONFormatter override the format.
//   - WithLevel sets the minimum level; ParseLevel and ParseFormat read them from strings.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors and WithContextValue inject attributes from context.
//
// Output goes to stderr by default. Discard returns a logger that drops everything.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
