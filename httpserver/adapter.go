package httpserver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/midway"
)

// ErrorHandler converts a chain error into a user-visible response.
// It is only called when the response has not been written yet.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Adapter exposes a midway.Dispatcher as an http.Handler. It constructs the
// initial request, consumes the final response, and owns the error page:
// the engine propagates chain errors unchanged, and the adapter converts
// them here.
type Adapter struct {
	dispatcher   *midway.Dispatcher
	log          *slog.Logger
	errorHandler ErrorHandler
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithErrorHandler sets a custom error-to-response conversion.
func WithErrorHandler(h ErrorHandler) AdapterOption {
	return func(a *Adapter) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithAdapterLogger sets the logger for render and panic diagnostics.
func WithAdapterLogger(log *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

// NewAdapter creates an http.Handler around the dispatcher.
// Panics on a nil dispatcher.
func NewAdapter(d *midway.Dispatcher, opts ...AdapterOption) *Adapter {
	if d == nil {
		panic(errors.New("httpserver: dispatcher cannot be nil"))
	}

	a := &Adapter{
		dispatcher:   d,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ServeHTTP implements http.Handler. Panics from handler code are recovered
// at this boundary only; the engine itself never recovers, so in-flight
// continuations unwind normally before the error page is produced.
func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := &responseWriter{ResponseWriter: w}

	defer func() {
		if rec := recover(); rec != nil {
			a.log.Error("panic during request handling",
				slog.String("path", r.URL.Path),
				slog.Any("panic", rec))
			if !ww.Written() {
				a.errorHandler(ww, r, toError(rec))
			}
		}
	}()

	resp, err := a.dispatcher.Dispatch(r)
	if err != nil {
		a.errorHandler(ww, r, err)
		return
	}
	if resp == nil {
		a.errorHandler(ww, r, ErrNilResponse)
		return
	}

	if err := resp.Render(ww, r); err != nil {
		a.log.Error("failed to render response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		if !ww.Written() {
			a.errorHandler(ww, r, err)
		}
	}
}

// defaultErrorHandler renders a plain-text error page.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
}

// toError converts a panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
