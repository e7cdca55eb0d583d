package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
)

type memoryCache struct {
	entries map[string][]byte
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest any) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}

func TestCacheServiceHitAndMiss(t *testing.T) {
	metrics := NewMetricsService()
	cache := NewCacheService(newMemoryCache(), metrics, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	var dest map[string]string
	assert.False(t, cache.Get(ctx, "employees:e1", &dest))

	cache.Set(ctx, "employees:e1", map[string]string{"Id": "e1"}, 0)
	assert.True(t, cache.Get(ctx, "employees:e1", &dest))
	assert.Equal(t, "e1", dest["Id"])

	cache.InvalidatePattern(ctx, "employees:*")
	assert.False(t, cache.Get(ctx, "employees:e1", &dest))

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(1), snapshot.CacheHits)
	assert.Equal(t, uint64(2), snapshot.CacheMisses)
}

func TestCacheServiceDisabledOrFailing(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryCache()
	disabled := NewCacheService(repo, nil, 0, nil, false)
	disabled.Set(ctx, "k", "v", 0)
	assert.Empty(t, repo.entries)
	assert.False(t, disabled.Get(ctx, "k", new(string)))

	var nilCache *CacheService
	assert.False(t, nilCache.Enabled())
	assert.False(t, nilCache.Get(ctx, "k", new(string)))

	repo.getErr = errors.New("redis down")
	failing := NewCacheService(repo, nil, 0, nil, true)
	assert.False(t, failing.Get(ctx, "k", new(string)))
}
