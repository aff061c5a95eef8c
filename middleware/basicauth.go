package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/midway"
)

// BasicAuthConfig configures the HTTP basic auth middleware.
type BasicAuthConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *midway.Context) bool
	// Username and Password are the expected credentials.
	Username string
	Password string
	// Realm is the authentication realm in the challenge (default: "restricted")
	Realm string
}

// BasicAuth creates a basic auth middleware for the given credentials.
// Empty credentials disable the check entirely, so a deployment can leave
// auth off without changing its chain.
func BasicAuth(username, password string) midway.Handler {
	return BasicAuthWithConfig(BasicAuthConfig{Username: username, Password: password})
}

// BasicAuthWithConfig creates a basic auth middleware with custom configuration.
// Unauthorized requests short-circuit with 401 and a WWW-Authenticate
// challenge; nothing deeper in the chain runs.
func BasicAuthWithConfig(cfg BasicAuthConfig) midway.Handler {
	if cfg.Realm == "" {
		cfg.Realm = "restricted"
	}

	disabled := cfg.Username == "" && cfg.Password == ""

	return func(ctx *midway.Context, next midway.Next) (midway.Response, error) {
		if disabled || (cfg.Skip != nil && cfg.Skip(ctx)) {
			return next()
		}

		user, pass, ok := ctx.Request().BasicAuth()
		if !ok || !equal(user, cfg.Username) || !equal(pass, cfg.Password) {
			challenge := fmt.Sprintf(`Basic realm=%q, charset="UTF-8"`, cfg.Realm)
			return midway.WithHeaders(
				midway.StringWithStatus("Unauthorized", http.StatusUnauthorized),
				map[string]string{"WWW-Authenticate": challenge},
			), nil
		}

		ctx.Locals["auth_user"] = user
		return next()
	}
}

// equal compares credentials in constant time.
func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
