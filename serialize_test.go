package midway_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/midway"
)

func TestTrySerializeLocals(t *testing.T) {
	t.Parallel()

	t.Run("round_trips_plain_values", func(t *testing.T) {
		t.Parallel()

		locals := map[string]any{
			"a":      1,
			"b":      "x",
			"nested": map[string]any{"ok": true},
			"list":   []any{"one", "two"},
		}

		s, err := midway.TrySerializeLocals(locals)
		require.NoError(t, err)
		require.NotEmpty(t, s)

		var back map[string]any
		require.NoError(t, json.Unmarshal([]byte(s), &back))
		assert.Equal(t, float64(1), back["a"])
		assert.Equal(t, "x", back["b"])
		assert.Equal(t, map[string]any{"ok": true}, back["nested"])
		assert.Equal(t, []any{"one", "two"}, back["list"])
	})

	t.Run("fails_on_callable", func(t *testing.T) {
		t.Parallel()

		_, err := midway.TrySerializeLocals(map[string]any{
			"f": func() int { return 1 },
		})
		require.Error(t, err)

		var serr *midway.SerializationError
		assert.ErrorAs(t, err, &serr)
	})

	t.Run("fails_on_channel", func(t *testing.T) {
		t.Parallel()

		_, err := midway.TrySerializeLocals(map[string]any{
			"ch": make(chan int),
		})

		var serr *midway.SerializationError
		assert.ErrorAs(t, err, &serr)
	})

	t.Run("fails_on_cycle", func(t *testing.T) {
		t.Parallel()

		type node struct {
			Next *node `json:"next"`
		}
		n := &node{}
		n.Next = n

		_, err := midway.TrySerializeLocals(map[string]any{"n": n})

		var serr *midway.SerializationError
		assert.ErrorAs(t, err, &serr)
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		t.Parallel()

		locals := map[string]any{"a": 1, "b": "x"}
		_, err := midway.TrySerializeLocals(locals)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": "x"}, locals)
	})

	t.Run("error_unwraps_to_codec_cause", func(t *testing.T) {
		t.Parallel()

		_, err := midway.TrySerializeLocals(map[string]any{"f": func() {}})
		require.Error(t, err)

		var typeErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &typeErr)
	})
}
