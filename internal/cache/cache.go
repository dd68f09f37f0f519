package cache

import (
	"context"
	"errors"

	"github.com/Skotchmaster/shop_api/internal/models"
)

var ErrCacheMiss = errors.New("cache miss")

type ItemCache interface {
	Get(ctx context.Context, id uint) (*models.Item, error)
	Set(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error
}
