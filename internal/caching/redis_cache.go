package caching

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCacheService struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	// Accept redis://host:port as well as a bare host:port.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	return redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})
}

func NewRedisCacheService(client *redis.Client) CacheService {
	return &redisCacheService{client: client}
}

func (r *redisCacheService) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) Stamp(ctx context.Context, storeID string) (Stamp, error) {
	gen, err := r.client.Get(ctx, generationKey(storeID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Stamp{}, err
	}
	return Stamp{scope: storeID, gen: gen, valid: true}, nil
}

// Set watches the stamp's generation key, so an invalidation racing the write
// aborts the transaction and the stale value is dropped.
func (r *redisCacheService) Set(ctx context.Context, stamp Stamp, storeID, key string, value interface{}, ttl time.Duration) error {
	if !stamp.valid {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	genKey := generationKey(stamp.scope)
	index := storeIndexKey(storeID)

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		gen, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if gen != stamp.gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			pipe.SAdd(ctx, index, key)
			if ttl > 0 {
				pipe.Expire(ctx, index, ttl*2)
			}
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// InvalidateStore bumps the generations before dropping keys: a Set that slipped in
// ahead of the bump is indexed already and goes with the rest.
func (r *redisCacheService) InvalidateStore(ctx context.Context, storeID string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(storeID))
		pipe.Incr(ctx, generationKey(""))
		return nil
	})
	if err != nil {
		return err
	}
	index := storeIndexKey(storeID)
	keys, err := r.client.SMembers(ctx, index).Result()
	if err != nil {
		return err
	}
	return r.client.Del(ctx, append(keys, index)...).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
