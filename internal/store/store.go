// Package store provides the persistent key-value capability the rest
// of the application is written against, plus its memory and SQLite
// backends. Values are JSON blobs under the original string-key layout,
// so data written by earlier versions of the app remains readable.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// KV is the injected persistence capability: a string-keyed store with
// synchronous get/set/delete and prefix listing. No transactions, no
// expiry; concurrent writers are last-write-wins.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the value, replacing any previous one.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// DecodeError reports a persisted value that exists but cannot be
// deserialized. Absence and corruption are distinct conditions: callers
// get this error only for the latter, and can decide to reset the key
// or surface the failure.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode stored value %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err wraps a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// GetJSON loads and unmarshals the value at key into v. It returns
// found=false (and leaves v untouched) when the key is absent, and a
// DecodeError when the stored value is corrupt.
func GetJSON(ctx context.Context, kv KV, key string, v any) (bool, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, &DecodeError{Key: key, Err: err}
	}
	return true, nil
}

// SetJSON marshals v and stores it at key.
func SetJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
