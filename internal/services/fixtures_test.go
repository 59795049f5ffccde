package services

import (
	"context"
	"time"

	"storeadmin/internal/caching"
	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/validation"

	"github.com/stretchr/testify/mock"
)

const (
	testOwnerID    = "user_owner"
	testStrangerID = "user_stranger"
	testStoreID    = "store-1"
	testOtherStore = "store-2"
)

func ownedStore() *models.Store {
	return &models.Store{
		ID:               testStoreID,
		UserID:           testOwnerID,
		Name:             "Shoes",
		FrontEndStoreURL: "https://shoes.example.com",
		StripeKey:        "sk_test_1234567890",
	}
}

// catalogFixture wires the real ownership resolver over a mocked store repository,
// an in-memory projection cache and a recording audit trail.
type catalogFixture struct {
	stores *MockStoreRepository
	audit  *recordingAudit
	cache  caching.CacheService
	deps   CatalogDeps
}

func newCatalogFixture() *catalogFixture {
	stores := &MockStoreRepository{}
	stores.On("GetByID", mock.Anything, testStoreID).Return(ownedStore(), nil).Maybe()
	stores.On("GetByID", mock.Anything, testOtherStore).Return(nil, common.ErrNotFound).Maybe()

	audit := &recordingAudit{}
	cache := caching.NewMemoryCacheService(time.Minute)
	return &catalogFixture{
		stores: stores,
		audit:  audit,
		cache:  cache,
		deps: CatalogDeps{
			Ownership: NewOwnershipService(stores),
			Validator: validation.New(),
			Cache:     cache,
			CacheTTL:  time.Minute,
			Audit:     audit,
		},
	}
}

// primeCache plants a marker under the store so tests can observe invalidation.
func (f *catalogFixture) primeCache(storeID string) string {
	key := caching.ProjectionKey("test", "marker", storeID)
	ctx := context.Background()
	stamp, _ := f.cache.Stamp(ctx, storeID)
	_ = f.cache.Set(ctx, stamp, storeID, key, "cached", time.Minute)
	return key
}

func (f *catalogFixture) cached(key string) bool {
	var v string
	found, _ := f.cache.Get(context.Background(), key, &v)
	return found
}
