// Package middleware provides ready-made handlers for the midway engine:
// request ID propagation, request/response logging, and HTTP basic auth.
//
// Every middleware follows the same pattern: a zero-config constructor with
// sensible defaults and a WithConfig variant for customization. All configs
// support a Skip function to bypass the middleware for specific requests:
//
//	chain := midway.Sequence(
//		middleware.RequestID(),
//		middleware.LoggingWithConfig(middleware.LoggingConfig{
//			Skip: func(ctx *midway.Context) bool {
//				return ctx.Request().URL.Path == "/health"
//			},
//		}),
//	)
package middleware
