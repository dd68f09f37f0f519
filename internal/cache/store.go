package cache

import (
	"context"
	"errors"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/service"
)

// CachedItemStore reads single items through an ItemCache. Cache failures
// are logged and the underlying store answers instead.
type CachedItemStore struct {
	service.ItemStore
	cache ItemCache
}

func NewCachedItemStore(store service.ItemStore, cache ItemCache) *CachedItemStore {
	return &CachedItemStore{ItemStore: store, cache: cache}
}

func (s *CachedItemStore) FindItemByID(ctx context.Context, id uint) (*models.Item, error) {
	l := logging.FromContext(ctx).With("cache", "item", "item_id", id)

	item, err := s.cache.Get(ctx, id)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		l.Warn("cache_get_error", "error", err)
	}

	item, err = s.ItemStore.FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, item); err != nil {
		l.Warn("cache_set_error", "error", err)
	}
	return item, nil
}
