// Package kvstore provides the durable key-value storage the ordering
// client keeps its session state in. Values are structured records
// serialized to JSON transparently. Callers that need best-effort
// semantics are expected to swallow the returned errors; every
// implementation here reports them honestly.
package kvstore

import "context"

// Store is a scoped get/set/remove surface over JSON-serialized records.
type Store interface {
	// Get unmarshals the value at key into dest and reports whether the
	// key existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set marshals value and stores it at key, overwriting any previous
	// value whole.
	Set(ctx context.Context, key string, value any) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
