package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cacheTestRedis returns a client against the Redis named by REDIS_URL, or
// skips: the cache is an integration concern and needs a real server.
func cacheTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set, skipping existence cache tests")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCachedLookupSkipsRegistryOnHit(t *testing.T) {
	rdb := cacheTestRedis(t)
	cpf := uuid.NewString()

	var registryHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		registryHits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cached := NewCachedClient(NewClient(srv.URL, srv.Client(), testLogger()), rdb, time.Minute, testLogger())

	for i := 0; i < 3; i++ {
		status, err := cached.Lookup(context.Background(), cpf)
		require.NoError(t, err)
		assert.Equal(t, StatusFound, status)
	}

	// First call misses the cache and hits the registry; the rest are
	// answered from Redis.
	assert.Equal(t, int32(1), registryHits.Load())
}

func TestCachedLookupNeverCachesAbsence(t *testing.T) {
	rdb := cacheTestRedis(t)
	cpf := uuid.NewString()

	var registryHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		registryHits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cached := NewCachedClient(NewClient(srv.URL, srv.Client(), testLogger()), rdb, time.Minute, testLogger())

	for i := 0; i < 2; i++ {
		status, err := cached.Lookup(context.Background(), cpf)
		require.NoError(t, err)
		assert.Equal(t, StatusNotFound, status)
	}

	assert.Equal(t, int32(2), registryHits.Load())
}

func TestCachedCreateRemembersExistence(t *testing.T) {
	rdb := cacheTestRedis(t)
	cpf := uuid.NewString()

	var lookupHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			lookupHits.Add(1)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cached := NewCachedClient(NewClient(srv.URL, srv.Client(), testLogger()), rdb, time.Minute, testLogger())

	require.NoError(t, cached.Create(context.Background(), NewCustomer(cpf)))

	status, err := cached.Lookup(context.Background(), cpf)
	require.NoError(t, err)
	assert.Equal(t, StatusFound, status)
	assert.Equal(t, int32(0), lookupHits.Load())
}
