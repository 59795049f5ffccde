package caching

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const keyPrefix = "storeadmin"

// CacheService holds derived public projections. Every entry is filed under the
// store it was read from so a single mutation can drop the whole store at once.
//
// Readers take a Stamp before reading storage and hand it back to Set. An
// invalidation that lands in between moves the generation, and Set then drops
// the now stale value instead of caching it.
type CacheService interface {
	// Get decodes the entry into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst interface{}) (bool, error)

	// Stamp pins the store's current generation. An empty storeID pins the
	// catalog-wide generation, for reads that learn their store only from the row.
	Stamp(ctx context.Context, storeID string) (Stamp, error)

	// Set files value under storeID unless the stamp's generation has moved.
	Set(ctx context.Context, stamp Stamp, storeID, key string, value interface{}, ttl time.Duration) error

	// InvalidateStore advances the store and catalog-wide generations, then drops
	// every key indexed under the store.
	InvalidateStore(ctx context.Context, storeID string) error
	Ping(ctx context.Context) error
}

// Stamp is a generation observed before a storage read. The zero Stamp never caches.
type Stamp struct {
	scope string
	gen   int64
	valid bool
}

// ProjectionKey builds a key such as "storeadmin:billboards:item:<id>".
func ProjectionKey(resource string, parts ...string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, resource, strings.Join(parts, ":"))
}

func storeIndexKey(storeID string) string {
	return fmt.Sprintf("%s:store-index:%s", keyPrefix, storeID)
}

func generationKey(scope string) string {
	if scope == "" {
		return keyPrefix + ":generation"
	}
	return fmt.Sprintf("%s:generation:%s", keyPrefix, scope)
}

type noopCacheService struct{}

// NewNoopCacheService disables projection caching.
func NewNoopCacheService() CacheService { return noopCacheService{} }

func (noopCacheService) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCacheService) Stamp(context.Context, string) (Stamp, error)           { return Stamp{}, nil }
func (noopCacheService) Set(context.Context, Stamp, string, string, interface{}, time.Duration) error {
	return nil
}
func (noopCacheService) InvalidateStore(context.Context, string) error { return nil }
func (noopCacheService) Ping(context.Context) error                    { return nil }
