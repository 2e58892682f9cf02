package cache

import (
	"context"
	"time"
)

// ObserveFunc receives the outcome of each lookup made by Fetch. A nil
// ObserveFunc is ignored.
type ObserveFunc func(hit bool, err error)

// Fetch returns the cached value for key, or calls load and stores its result
// for ttl. Cache failures never fail the read: they are reported to observe
// and the value is loaded from the source.
func Fetch[T any](ctx context.Context, c Cache, key string, ttl time.Duration, observe ObserveFunc, load func(context.Context) (T, error)) (T, error) {
	var cached T
	found, err := c.Get(ctx, key, &cached)
	if observe != nil {
		observe(found, err)
	}
	if err == nil && found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if setErr := c.Set(ctx, key, value, ttl); setErr != nil && observe != nil {
		observe(false, setErr)
	}
	return value, nil
}
