// Package localstore persists serialized locals snapshots across a process
// or cache boundary. The engine's dispatch path never serializes locals;
// this package is for adapters that hand request state to another process or
// warm a later request from a cache.
//
// Snapshots go through midway.TrySerializeLocals, so a locals map holding a
// live callable or a cyclic structure is rejected with *SerializationError
// before anything touches the backend.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Store is the persistence interface for locals snapshots.
// Implementations must handle concurrent access safely.
type Store interface {
	// Save serializes locals and stores the snapshot under key,
	// replacing any previous snapshot.
	Save(ctx context.Context, key string, locals map[string]any) error

	// Load returns the snapshot stored under key as a fresh map.
	// Returns ErrNotFound when no snapshot exists or it has expired.
	Load(ctx context.Context, key string) (map[string]any, error)

	// Delete removes the snapshot under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by Load when no snapshot exists for the key.
var ErrNotFound = errors.New("localstore: snapshot not found")

// decode turns a stored payload back into a locals map.
func decode(payload string) (map[string]any, error) {
	var locals map[string]any
	if err := json.Unmarshal([]byte(payload), &locals); err != nil {
		return nil, fmt.Errorf("localstore: corrupt snapshot: %w", err)
	}
	return locals, nil
}
