package service

import (
	"context"

	"github.com/Skotchmaster/shop_api/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type CartStore interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	SaveCart(ctx context.Context, cart *models.Cart) error
}

type ItemStore interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	FindItemByID(ctx context.Context, id uint) (*models.Item, error)
	FindItemsByName(ctx context.Context, name string) ([]models.Item, error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.UserOrder) error
	ListOrdersByUser(ctx context.Context, userID uint) ([]models.UserOrder, error)
}

type CatalogSeeder interface {
	SeedItems(ctx context.Context, items []models.Item) (bool, error)
}

type ItemSearcher interface {
	SearchItems(ctx context.Context, q string, offset, limit int) (int64, []models.Item, error)
}

type ItemIndexer interface {
	IndexItems(ctx context.Context, items []models.Item) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}
