package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/midway"
	"github.com/dmitrymomot/midway/middleware"
)

func TestLogging_RequestAndResponse(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	d := midway.NewDispatcher(okRenderer,
		midway.WithHandlers(middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
		})))

	_, err := d.Dispatch(httptest.NewRequest(http.MethodGet, "/users", nil))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/users")
	assert.Contains(t, out, "duration=")
}

func TestLogging_FailedRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	failing := func(ctx *midway.Context, next midway.Next) (midway.Response, error) {
		return nil, errors.New("downstream broke")
	}

	d := midway.NewDispatcher(okRenderer,
		midway.WithHandlers(
			middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: log}),
			failing,
		))

	_, err := d.Dispatch(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "downstream broke")
}

func TestLogging_SlowRequestWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	slow := func(ctx *midway.Context, next midway.Next) (midway.Response, error) {
		time.Sleep(5 * time.Millisecond)
		return next()
	}

	d := midway.NewDispatcher(okRenderer,
		midway.WithHandlers(
			middleware.LoggingWithConfig(middleware.LoggingConfig{
				Logger:               log,
				SlowRequestThreshold: time.Millisecond,
			}),
			slow,
		))

	_, err := d.Dispatch(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "slow request")
}

func TestLogging_Skip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	d := midway.NewDispatcher(okRenderer,
		midway.WithHandlers(middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip: func(ctx *midway.Context) bool {
				return ctx.Request().URL.Path == "/health"
			},
		})))

	_, err := d.Dispatch(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}
