package selection

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
)

// memoryCache - in-memory реализация CacheRepository для тестов
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryCache) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
			n++
		}
	}
	return n, nil
}

func (m *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *memoryCache) GetStats(context.Context) (*domain.InventoryStats, error) { return nil, nil }

func (m *memoryCache) SetStats(context.Context, *domain.InventoryStats, time.Duration) error {
	return nil
}

func TestStore_Lifecycle(t *testing.T) {
	cache := newMemoryCache()
	store := NewStore(cache, time.Hour, zap.NewNop())
	ctx := context.Background()

	session, err := store.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, "building", session.Level)
	assert.Equal(t, time.Hour, cache.ttls[sessionKey(session.ID)])

	session, err = store.Dispatch(ctx, session.ID, SetBuilding(1))
	require.NoError(t, err)
	assert.Equal(t, "floor", session.Level)

	session, err = store.Dispatch(ctx, session.ID, SetFloor(4))
	require.NoError(t, err)

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.State.FloorID)
	assert.Equal(t, int64(4), *loaded.State.FloorID)
	assert.Equal(t, "apartment", loaded.Level)
}

func TestStore_RejectedActionKeepsState(t *testing.T) {
	store := NewStore(newMemoryCache(), time.Hour, zap.NewNop())
	ctx := context.Background()

	session, err := store.Create(ctx)
	require.NoError(t, err)

	_, err = store.Dispatch(ctx, session.ID, SetApartment(9))
	assert.ErrorIs(t, err, ErrNoParentSelection)

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, State{}, loaded.State)
}

func TestStore_UnknownSession(t *testing.T) {
	store := NewStore(newMemoryCache(), time.Hour, zap.NewNop())

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Dispatch(context.Background(), uuid.New(), Reset())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
