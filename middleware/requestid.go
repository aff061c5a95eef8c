package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/midway"
)

// LocalsRequestIDKey is the Locals key under which the request ID is stored.
const LocalsRequestIDKey = "request_id"

// DefaultRequestIDHeader is the header carrying the request ID.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *midway.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// It generates a new UUID per request and exposes it through the context,
// Locals, and the response header.
func RequestID() midway.Handler {
	return RequestIDWithConfig(RequestIDConfig{UseExisting: true})
}

// RequestIDWithConfig creates a request ID middleware with custom configuration.
// The ID is stored in ctx.RequestID and ctx.Locals so later handlers and the
// renderer can correlate their work, and echoed in the response header.
func RequestIDWithConfig(cfg RequestIDConfig) midway.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultRequestIDHeader
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx *midway.Context, next midway.Next) (midway.Response, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		var requestID string
		if cfg.UseExisting {
			if existingID := ctx.Request().Header.Get(cfg.HeaderName); existingID != "" {
				requestID = existingID
			}
		}
		if requestID == "" {
			requestID = cfg.Generator()
		}

		ctx.RequestID = requestID
		ctx.Locals[LocalsRequestIDKey] = requestID

		resp, err := next()
		if err != nil {
			return nil, err
		}
		return midway.WithHeaders(resp, map[string]string{cfg.HeaderName: requestID}), nil
	}
}

// GetRequestID extracts the request ID from the context's Locals.
// Returns false when no request ID middleware ran for this request.
func GetRequestID(ctx *midway.Context) (string, bool) {
	id, ok := ctx.Locals[LocalsRequestIDKey].(string)
	return id, ok
}
