package httpserver_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/midway/httpserver"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid_config", func(t *testing.T) {
		t.Parallel()

		srv, err := httpserver.NewFromConfig(httpserver.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("missing_address", func(t *testing.T) {
		t.Parallel()

		_, err := httpserver.NewFromConfig(httpserver.Config{})
		assert.ErrorIs(t, err, httpserver.ErrMissingAddress)
	})
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	t.Run("start_returns_on_context_cancel", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New("127.0.0.1:0")
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- srv.Start(ctx, http.NotFoundHandler())
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("server did not stop after context cancellation")
		}

		require.NoError(t, srv.Stop())
	})

	t.Run("stop_without_start_is_noop", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New("127.0.0.1:0")
		assert.NoError(t, srv.Stop())
	})

	t.Run("run_shuts_down_on_cancel", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New("127.0.0.1:0")
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.NotFoundHandler())()
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after context cancellation")
		}
	})
}
