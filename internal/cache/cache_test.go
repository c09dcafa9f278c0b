package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fi-rise/backend/internal/cache"
	"github.com/fi-rise/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonCache keeps JSON encoded values in a map.
type jsonCache struct {
	values   map[string][]byte
	versions map[string]int64
}

func newJSONCache() *jsonCache {
	return &jsonCache{values: make(map[string][]byte), versions: make(map[string]int64)}
}

func (c *jsonCache) Get(_ context.Context, key string, dst any) (bool, error) {
	data, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

func (c *jsonCache) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *jsonCache) Invalidate(_ context.Context, prefix string) error {
	for k := range c.values {
		if strings.HasPrefix(k, prefix) {
			delete(c.values, k)
		}
	}
	return nil
}

func (c *jsonCache) Version(_ context.Context, namespace string) (int64, error) {
	return c.versions[namespace], nil
}

func (c *jsonCache) Bump(_ context.Context, namespace string) (int64, error) {
	c.versions[namespace]++
	return c.versions[namespace], nil
}

func (c *jsonCache) Close() error { return nil }

func TestNoopLoad(t *testing.T) {
	calls := 0
	load := func() ([]models.Article, error) {
		calls++
		return []models.Article{{ID: 1, Title: "Budgeting Basics"}}, nil
	}

	for i := 0; i < 2; i++ {
		articles, err := cache.Load(context.Background(), cache.Noop{}, "articles", load)
		require.Nil(t, err)
		assert.Len(t, articles, 1)
	}

	assert.Equal(t, 2, calls, "the noop cache always loads")
}

func TestLoadError(t *testing.T) {
	_, err := cache.Load(context.Background(), cache.Noop{}, "articles", func() ([]models.Article, error) {
		return nil, models.ErrGeneral
	})
	assert.True(t, errors.Is(err, models.ErrGeneral))
}

func TestLoadVersionedBumpDuringLoad(t *testing.T) {
	ctx := context.Background()
	c := newJSONCache()

	// The store is written and the version bumped while the first load runs
	stale, err := cache.LoadVersioned(ctx, c, "resources:", "list", func() ([]string, error) {
		_, err := c.Bump(ctx, "resources:")
		require.Nil(t, err)
		require.Nil(t, c.Invalidate(ctx, "resources:"))
		return []string{"stale"}, nil
	})
	require.Nil(t, err)
	assert.Equal(t, []string{"stale"}, stale)
	assert.Contains(t, c.values, "resources:0:list", "the stale value is written under the old version")

	fresh, err := cache.LoadVersioned(ctx, c, "resources:", "list", func() ([]string, error) {
		return []string{"fresh"}, nil
	})
	require.Nil(t, err)
	assert.Equal(t, []string{"fresh"}, fresh)

	cached, err := cache.LoadVersioned(ctx, c, "resources:", "list", func() ([]string, error) {
		return nil, errors.New("must be served from the cache")
	})
	require.Nil(t, err)
	assert.Equal(t, []string{"fresh"}, cached)
}

func TestLoadVersionedNoop(t *testing.T) {
	calls := 0
	for i := 0; i < 2; i++ {
		_, err := cache.LoadVersioned(context.Background(), cache.Noop{}, "resources:", "1", func() (int, error) {
			calls++
			return 1, nil
		})
		require.Nil(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestNewRedisInvalidURL(t *testing.T) {
	_, err := cache.NewRedis(context.Background(), "http://example.com", "test", time.Minute)
	assert.NotNil(t, err)
}

// TestRedis needs a Redis server, set REDIS_URL to run it.
func TestRedis(t *testing.T) {
	url, ok := os.LookupEnv("REDIS_URL")
	if !ok {
		t.Skip("REDIS_URL is not set")
	}

	ctx := context.Background()
	c, err := cache.NewRedis(ctx, url, "fi-rise-test", time.Minute)
	require.Nil(t, err)
	defer c.Close()

	require.Nil(t, c.Invalidate(ctx, ""))

	var articles []models.Article
	found, err := c.Get(ctx, "articles:all", &articles)
	require.Nil(t, err)
	assert.False(t, found)

	require.Nil(t, c.Set(ctx, "articles:all", []models.Article{{ID: 1, Title: "Taxes"}}))

	found, err = c.Get(ctx, "articles:all", &articles)
	require.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, "Taxes", articles[0].Title)

	require.Nil(t, c.Invalidate(ctx, "articles:"))
	found, err = c.Get(ctx, "articles:all", &articles)
	require.Nil(t, err)
	assert.False(t, found)

	before, err := c.Version(ctx, "articles:")
	require.Nil(t, err)
	after, err := c.Bump(ctx, "articles:")
	require.Nil(t, err)
	assert.Equal(t, before+1, after)

	require.Nil(t, c.Invalidate(ctx, "articles:"))
	version, err := c.Version(ctx, "articles:")
	require.Nil(t, err)
	assert.Equal(t, after, version, "invalidation must keep the version")
}
