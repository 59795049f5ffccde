package caching

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCacheService struct {
	c *gocache.Cache

	mu          sync.Mutex
	index       map[string]map[string]struct{}
	generations map[string]int64
}

// NewMemoryCacheService keeps projections in process. Entries are stored encoded so
// callers never share mutable values with the cache.
func NewMemoryCacheService(defaultTTL time.Duration) CacheService {
	return &memoryCacheService{
		c:           gocache.New(defaultTTL, time.Minute),
		index:       make(map[string]map[string]struct{}),
		generations: make(map[string]int64),
	}
}

func (m *memoryCacheService) Get(_ context.Context, key string, dst interface{}) (bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return false, nil
	}
	data, _ := v.([]byte)
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryCacheService) Stamp(_ context.Context, storeID string) (Stamp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stamp{scope: storeID, gen: m.generations[storeID], valid: true}, nil
}

func (m *memoryCacheService) Set(_ context.Context, stamp Stamp, storeID, key string, value interface{}, ttl time.Duration) error {
	if !stamp.valid {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generations[stamp.scope] != stamp.gen {
		return nil
	}
	m.c.Set(key, data, ttl)
	keys, ok := m.index[storeID]
	if !ok {
		keys = make(map[string]struct{})
		m.index[storeID] = keys
	}
	keys[key] = struct{}{}
	return nil
}

func (m *memoryCacheService) InvalidateStore(_ context.Context, storeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations[storeID]++
	m.generations[""]++
	for key := range m.index[storeID] {
		m.c.Delete(key)
	}
	delete(m.index, storeID)
	return nil
}

func (m *memoryCacheService) Ping(context.Context) error { return nil }
