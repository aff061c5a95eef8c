package midway

import (
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Context is the per-request state bag shared by every handler in the chain
// and by the terminal renderer. It delegates all context.Context methods to
// the request's context, so cancellation and deadlines flow through
// unchanged.
//
// Locals is the mutable shared state. Handlers mutate its contents; the map
// itself must never be replaced wholesale. The engine verifies the map
// identity after every handler invocation (see LocalsOverwriteError).
type Context struct {
	r *http.Request

	// Locals holds arbitrary per-request values shared across the chain.
	// Mutate its contents freely; never assign a new map to this field.
	Locals map[string]any

	// RequestID identifies the request for tracing and logging.
	// Set at creation; middleware may overwrite it with an inbound ID.
	RequestID string

	locals map[string]any // original binding, for the rebind guard
	values map[any]any
	mode   Mode
	log    *slog.Logger
}

// ContextOption configures a Context during creation.
type ContextOption func(*Context)

// WithLocals seeds the Locals map with initial values.
// Values are copied into the context-owned map.
func WithLocals(locals map[string]any) ContextOption {
	return func(c *Context) {
		for k, v := range locals {
			c.Locals[k] = v
		}
	}
}

// WithRequestID overrides the generated request ID.
func WithRequestID(id string) ContextOption {
	return func(c *Context) {
		if id != "" {
			c.RequestID = id
		}
	}
}

// NewContext creates a Context for the given request. It is the low-level
// factory used by adapters and tests to invoke handlers outside the normal
// dispatch path; Dispatcher calls it once per request.
func NewContext(r *http.Request, opts ...ContextOption) *Context {
	locals := make(map[string]any)
	c := &Context{
		r:         r,
		Locals:    locals,
		locals:    locals,
		RequestID: uuid.New().String(),
		mode:      ModeDiagnostic,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Deadline returns the time when work done on behalf of this context
// should be canceled. Delegates to r.Context().
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this
// context should be canceled. Delegates to r.Context().
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed. Delegates to r.Context().
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value set via SetValue for key, falling back to the
// request context for keys the chain never set.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// SetValue attaches a collaborator-owned value to the context. Unlike
// Locals, these values are keyed by any comparable type and are intended for
// adapter extras (auth cookies, client info) rather than handler state.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the incoming *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// Logger returns the logger attached by the dispatcher.
func (c *Context) Logger() *slog.Logger {
	return c.log
}

// localsID returns the identity of the current Locals binding.
func (c *Context) localsID() uintptr {
	return reflect.ValueOf(c.Locals).Pointer()
}

// checkLocals enforces the rebind invariant after a handler invocation.
// In diagnostic mode a replaced Locals map is a fatal programming error and
// panics immediately. In release mode it logs a warning and restores the
// original binding so later handlers keep observing shared mutations.
func (c *Context) checkLocals(before uintptr) {
	if c.localsID() == before {
		return
	}
	if c.mode == ModeDiagnostic {
		panic(&LocalsOverwriteError{RequestID: c.RequestID})
	}
	c.log.Warn("locals map was replaced instead of mutated; restoring original binding",
		slog.String("request_id", c.RequestID))
	c.Locals = c.locals
}

// invoke runs a single handler with the rebind guard around it.
func (c *Context) invoke(h Handler, next Next) (Response, error) {
	before := c.localsID()
	resp, err := h(c, next)
	c.checkLocals(before)
	return resp, err
}
