// Package cache provides a read-through cache for JSON encodable values.
package cache

import (
	"context"
	"fmt"
)

// Cache stores values under string keys.
//
// Implementations must treat a failing cache as a miss so that callers
// can fall back to the store.
type Cache interface {
	// Get decodes the value for key into dst. It reports whether the key
	// was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error

	// Invalidate removes all keys starting with prefix.
	Invalidate(ctx context.Context, prefix string) error

	// Version returns the current version of the namespace, 0 if it was
	// never bumped.
	Version(ctx context.Context, namespace string) (int64, error)

	// Bump increments the version of the namespace and returns the new
	// version.
	Bump(ctx context.Context, namespace string) (int64, error)
	Close() error
}

// Noop is a Cache that never stores anything.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Invalidate(context.Context, string) error       { return nil }
func (Noop) Version(context.Context, string) (int64, error) { return 0, nil }
func (Noop) Bump(context.Context, string) (int64, error)    { return 0, nil }
func (Noop) Close() error                                   { return nil }

// Load returns the cached value for key or calls load and caches its
// result. Cache failures are logged by the implementation and otherwise
// ignored.
func Load[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	var v T
	if ok, err := c.Get(ctx, key, &v); err == nil && ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	_ = c.Set(ctx, key, v)
	return v, nil
}

// LoadVersioned is Load with the key placed under the current version of
// namespace. Values written under an older version are never returned,
// so a Bump after a write retires results of loads that were running
// concurrently with the write.
//
// If the version cannot be read, the cache is bypassed.
func LoadVersioned[T any](ctx context.Context, c Cache, namespace, key string, load func() (T, error)) (T, error) {
	version, err := c.Version(ctx, namespace)
	if err != nil {
		return load()
	}

	return Load(ctx, c, fmt.Sprintf("%s%d:%s", namespace, version, key), load)
}
