// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, applies static attributes and, when ContextExtractor callbacks are
// registered, wraps the handler so each record carries their attributes.
//
//	log := logger.New(
//	    logger.WithCLI("validate"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.Info("rules loaded", logger.Path(path), logger.Locale("en"))
//
// Error returns an empty attribute for a nil error.
package logger
