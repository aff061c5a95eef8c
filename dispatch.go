package midway

import (
	"io"
	"log/slog"
	"net/http"
)

// Mode controls how the engine reacts to handler programming errors,
// currently only the Locals rebind guard.
type Mode int

const (
	// ModeDiagnostic panics immediately when a handler replaces the Locals
	// map. Default; intended for development and tests.
	ModeDiagnostic Mode = iota

	// ModeRelease logs a warning and restores the original Locals map,
	// letting the request proceed.
	ModeRelease
)

// Dispatcher is the per-request entry point used by server adapters. It
// creates exactly one Context per dispatched request, runs the root handler
// with a continuation bound to the terminal renderer, and returns the
// resulting response.
//
// The dispatcher is a transparent conduit for failures: an error returned by
// a handler or by the renderer propagates to the caller unchanged, with no
// retry and no error-to-response conversion. Producing an error response is
// the adapter's job.
type Dispatcher struct {
	handler  Handler
	renderer Renderer
	mode     Mode
	log      *slog.Logger
	newID    func() string
}

// Option configures a Dispatcher during creation.
type Option func(*Dispatcher)

// WithHandlers installs the middleware chain. A single handler is used as
// the root handler directly; multiple handlers are composed with Sequence.
// Nil handlers panic: the chain is built once at startup and a nil entry is
// a configuration error.
func WithHandlers(handlers ...Handler) Option {
	return func(d *Dispatcher) {
		for _, h := range handlers {
			if h == nil {
				panic(ErrNilHandler)
			}
		}
		switch len(handlers) {
		case 0:
		case 1:
			d.handler = handlers[0]
		default:
			d.handler = Sequence(handlers...)
		}
	}
}

// WithLogger sets the logger used for engine diagnostics. It is also
// attached to every Context the dispatcher creates.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithMode sets the rebind guard behavior. See Mode.
func WithMode(mode Mode) Option {
	return func(d *Dispatcher) {
		d.mode = mode
	}
}

// WithRequestIDGenerator overrides request ID generation for new contexts.
func WithRequestIDGenerator(gen func() string) Option {
	return func(d *Dispatcher) {
		if gen != nil {
			d.newID = gen
		}
	}
}

// NewDispatcher creates a Dispatcher that terminates every chain at the
// given renderer. Panics if renderer is nil; a dispatcher without a terminal
// renderer cannot serve any request.
func NewDispatcher(renderer Renderer, opts ...Option) *Dispatcher {
	if renderer == nil {
		panic(ErrNilRenderer)
	}

	d := &Dispatcher{
		handler:  Sequence(),
		renderer: renderer,
		mode:     ModeDiagnostic,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs the chain for a single request and returns the final
// response. The Context it creates is shared by reference with every handler
// and with the renderer, so mutations made early in the chain are visible to
// everything downstream; it is discarded when Dispatch returns.
func (d *Dispatcher) Dispatch(r *http.Request) (Response, error) {
	ctx := d.newContext(r)
	return ctx.invoke(d.handler, func() (Response, error) {
		return d.renderer(ctx)
	})
}

// DispatchWith runs the chain against a caller-constructed Context. It
// exists for adapters that attach extra fields to the context before the
// first handler runs; Dispatch is the common path.
func (d *Dispatcher) DispatchWith(ctx *Context) (Response, error) {
	ctx.mode = d.mode
	ctx.log = d.log
	return ctx.invoke(d.handler, func() (Response, error) {
		return d.renderer(ctx)
	})
}

func (d *Dispatcher) newContext(r *http.Request) *Context {
	var opts []ContextOption
	if d.newID != nil {
		opts = append(opts, WithRequestID(d.newID()))
	}
	ctx := NewContext(r, opts...)
	ctx.mode = d.mode
	ctx.log = d.log
	return ctx
}
