package midway

import "encoding/json"

// TrySerializeLocals attempts to produce a transportable string form of a
// locals map (or any value). It is used by collaborators that move locals
// across a process or cache boundary; the dispatch path itself never
// serializes locals.
//
// The value is not mutated. When it contains a member that has no string
// representation (a live callable, a channel, a resource handle) or a cyclic
// reference, the returned error is a *SerializationError wrapping the codec
// failure. The output round-trips through encoding/json back to an
// equivalent mapping.
func TrySerializeLocals(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", &SerializationError{err: err}
	}
	return string(data), nil
}
