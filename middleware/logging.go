package middleware

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/midway"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *midway.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs a warning for requests slower than this (default: disabled)
	SlowRequestThreshold time.Duration
}

// Logging creates a request/response logging middleware with default configuration.
func Logging() midway.Handler {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithConfig creates a logging middleware with custom configuration.
// It logs once on the way in and once on the way out, so entries bracket
// everything deeper in the chain including the render.
func LoggingWithConfig(cfg LoggingConfig) midway.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(ctx *midway.Context, next midway.Next) (midway.Response, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		r := ctx.Request()
		attrs := []any{
			slog.String("request_id", ctx.RequestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		}

		cfg.Logger.Log(ctx, cfg.LogLevel, "request started", attrs...)
		start := time.Now()

		resp, err := next()

		duration := time.Since(start)
		attrs = append(attrs, slog.Duration("duration", duration))

		switch {
		case err != nil:
			cfg.Logger.Error("request failed", append(attrs, slog.Any("error", err))...)
		case cfg.SlowRequestThreshold > 0 && duration > cfg.SlowRequestThreshold:
			cfg.Logger.Warn("slow request", attrs...)
		default:
			cfg.Logger.Log(ctx, cfg.LogLevel, "request completed", attrs...)
		}

		return resp, err
	}
}
