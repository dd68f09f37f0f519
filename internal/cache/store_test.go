package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/models"
)

type countingStore struct {
	items map[uint]models.Item
	calls int
}

func (s *countingStore) ListItems(context.Context) ([]models.Item, error) {
	return nil, nil
}

func (s *countingStore) FindItemByID(_ context.Context, id uint) (*models.Item, error) {
	s.calls++
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (s *countingStore) FindItemsByName(context.Context, string) ([]models.Item, error) {
	return nil, nil
}

func TestCachedItemStore(t *testing.T) {
	ctx := context.Background()
	c, mr := setupTestRedis(t)
	store := &countingStore{items: map[uint]models.Item{1: {ID: 1, Name: "Round Widget"}}}
	cached := NewCachedItemStore(store, c)

	first, err := cached.FindItemByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Round Widget", first.Name)
	assert.True(t, mr.Exists("item:1"))

	second, err := cached.FindItemByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 1, store.calls)

	_, err = cached.FindItemByID(ctx, 9)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.False(t, mr.Exists("item:9"))
}

func TestCachedItemStore_CacheDown(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	store := &countingStore{items: map[uint]models.Item{1: {ID: 1, Name: "Round Widget"}}}
	cached := NewCachedItemStore(store, NewRedisItemCache(client, time.Minute))

	item, err := cached.FindItemByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Round Widget", item.Name)
	assert.Equal(t, 1, store.calls)
}
