// Package cache is a small JSON read-through cache over Redis. When Redis is
// not configured the Noop implementation makes every lookup a miss.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	PrefixCarList      = "cars:list"
	PrefixCarSlug      = "cars:slug"
	PrefixCarID        = "cars:id"
	PrefixCarRelated   = "cars:related"
	KeyCarCategories   = "cars:categories"
	KeyPricingSettings = "settings:pricing"
	KeyWebsiteSettings = "settings:website"
	PrefixAvailability = "availability"
)

type Cache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// New returns a Redis-backed cache, or Noop when client is nil.
func New(client *redis.Client) Cache {
	if client == nil {
		return Noop{}
	}
	return NewRedisCache(client)
}

// Key joins parts with ":".
func Key(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

// QueryKey builds a stable key for a set of query parameters. Parameters are
// sorted so equivalent queries share an entry, and the result is hashed to
// keep keys short.
func QueryKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}

type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Noop) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (Noop) Delete(context.Context, ...string) error {
	return nil
}

func (Noop) DeletePrefix(context.Context, string) error {
	return nil
}
