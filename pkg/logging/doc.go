// Package logging configures the structured logger shared by the server.
//
// It wraps log/slog so every component logs through the same handler with the
// same level and output format:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatJSON,
//	})
//	logger.Info("server started", "addr", ":3000")
//
// Components accept a *slog.Logger through an option. When none is supplied
// they use Nop so that library code never writes to stderr on its own.
package logging
