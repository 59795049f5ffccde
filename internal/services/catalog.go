package services

import (
	"context"
	"time"

	"storeadmin/internal/caching"
	"storeadmin/internal/validation"

	"go.uber.org/zap"
)

// CatalogDeps is the plumbing shared by every resource service.
type CatalogDeps struct {
	Ownership OwnershipService
	Validator *validation.Validator
	Cache     caching.CacheService
	CacheTTL  time.Duration
	Audit     AuditLogsService
	Logger    *zap.Logger
}

type catalog struct {
	CatalogDeps
}

func newCatalog(deps CatalogDeps) catalog {
	if deps.Cache == nil {
		deps.Cache = caching.NewNoopCacheService()
	}
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return catalog{CatalogDeps: deps}
}

// authorize runs the ownership check that gates every mutation.
func (c catalog) authorize(ctx context.Context, userID, storeID string) (OwnershipResult, error) {
	result, err := c.Ownership.Resolve(ctx, userID, storeID)
	if err != nil {
		return result, err
	}
	return result, result.Err()
}

// fromCache reports a hit; cache failures are logged and treated as a miss.
func (c catalog) fromCache(ctx context.Context, key string, dst interface{}) bool {
	found, err := c.Cache.Get(ctx, key, dst)
	if err != nil {
		c.Logger.Warn("projection cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

// stamp pins the cache generation before a storage read. storeID is empty when the
// read learns its store from the row. On failure the read result is not cached.
func (c catalog) stamp(ctx context.Context, storeID string) caching.Stamp {
	stamp, err := c.Cache.Stamp(ctx, storeID)
	if err != nil {
		c.Logger.Warn("projection cache stamp failed", zap.String("store_id", storeID), zap.Error(err))
		return caching.Stamp{}
	}
	return stamp
}

func (c catalog) toCache(ctx context.Context, stamp caching.Stamp, storeID, key string, value interface{}) {
	if err := c.Cache.Set(ctx, stamp, storeID, key, value, c.CacheTTL); err != nil {
		c.Logger.Warn("projection cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// committed runs after a successful write: it drops the store's cached projections
// and appends the audit entry. Neither step can fail the request.
func (c catalog) committed(ctx context.Context, storeID, entity, recordID, action, actorID string, values interface{}) {
	if err := c.Cache.InvalidateStore(ctx, storeID); err != nil {
		c.Logger.Warn("projection cache invalidation failed", zap.String("store_id", storeID), zap.Error(err))
	}
	if c.Audit != nil {
		c.Audit.Record(ctx, AuditEntry{
			StoreID:  storeID,
			Entity:   entity,
			RecordID: recordID,
			Action:   action,
			ActorID:  actorID,
			Values:   values,
		})
	}
}
