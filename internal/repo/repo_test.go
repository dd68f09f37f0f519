package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/testdb"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	return New(testdb.New(t))
}

func seedWidgets(t *testing.T, r *GormRepo) []models.Item {
	t.Helper()
	items := []models.Item{
		{Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "A widget that is round"},
		{Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "A widget that is square"},
	}
	seeded, err := r.SeedItems(context.Background(), items)
	require.NoError(t, err)
	require.True(t, seeded)

	stored, err := r.ListItems(context.Background())
	require.NoError(t, err)
	return stored
}

func createUserWithCart(t *testing.T, r *GormRepo, username string) *models.User {
	t.Helper()
	ctx := context.Background()

	cart := &models.Cart{}
	require.NoError(t, r.CreateCart(ctx, cart))
	user := &models.User{Username: username, PasswordHash: "digest", CartID: cart.ID, Cart: cart}
	require.NoError(t, r.CreateUser(ctx, user))
	return user
}

func TestGormRepo_UserLookups(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created := createUserWithCart(t, r, "alice")
	require.NotZero(t, created.ID)

	byName, err := r.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	require.NotNil(t, byName.Cart)
	assert.Equal(t, created.CartID, byName.Cart.ID)

	byID, err := r.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = r.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = r.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormRepo_CreateUser_DuplicateUsername(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	createUserWithCart(t, r, "alice")

	cart := &models.Cart{}
	require.NoError(t, r.CreateCart(ctx, cart))
	err := r.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "x", CartID: cart.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestGormRepo_SaveCart_ReplacesLinesAndTotal(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	items := seedWidgets(t, r)
	user := createUserWithCart(t, r, "alice")

	cart := user.Cart
	cart.Items = []models.CartItem{
		{ItemID: items[0].ID, Item: items[0], Quantity: 2},
		{ItemID: items[1].ID, Item: items[1], Quantity: 1},
	}
	cart.Recalculate()
	require.NoError(t, r.SaveCart(ctx, cart))

	stored, err := r.FindCartByID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.True(t, decimal.RequireFromString("7.97").Equal(stored.Total), "total %s", stored.Total)
	assert.Equal(t, 3, stored.Count())

	stored.Items = stored.Items[:1]
	stored.Recalculate()
	require.NoError(t, r.SaveCart(ctx, stored))

	again, err := r.FindCartByID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, again.Items, 1)
	assert.Equal(t, items[0].ID, again.Items[0].ItemID)
	assert.Equal(t, "Round Widget", again.Items[0].Item.Name)
}

func TestGormRepo_SaveCart_UnknownCart(t *testing.T) {
	r := newTestRepo(t)

	err := r.SaveCart(context.Background(), &models.Cart{ID: 42})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormRepo_Items(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	items := seedWidgets(t, r)
	require.Len(t, items, 2)

	seeded, err := r.SeedItems(ctx, []models.Item{{Name: "Extra", Price: decimal.NewFromInt(1)}})
	require.NoError(t, err)
	assert.False(t, seeded, "seeding must not touch a non-empty catalog")

	item, err := r.FindItemByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Round Widget", item.Name)
	assert.True(t, decimal.RequireFromString("2.99").Equal(item.Price))

	byName, err := r.FindItemsByName(ctx, "Square Widget")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	none, err := r.FindItemsByName(ctx, "Triangle Widget")
	require.NoError(t, err)
	assert.Empty(t, none)

	total, found, err := r.SearchItems(ctx, "widget", 0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, found, 1)
	assert.Equal(t, items[0].ID, found[0].ID)

	total, found, err = r.SearchItems(ctx, "SQUARE", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Square Widget", found[0].Name)
}

func TestGormRepo_Orders(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	items := seedWidgets(t, r)
	user := createUserWithCart(t, r, "alice")

	first := &models.UserOrder{
		UserID: user.ID,
		Items:  []models.OrderItem{{ItemID: items[0].ID, Item: items[0], Quantity: 2, UnitPrice: items[0].Price}},
		Total:  decimal.RequireFromString("5.98"),
	}
	require.NoError(t, r.CreateOrder(ctx, first))
	second := &models.UserOrder{UserID: user.ID, Total: decimal.Zero}
	require.NoError(t, r.CreateOrder(ctx, second))

	orders, err := r.ListOrdersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Round Widget", orders[0].Items[0].Item.Name)
	assert.False(t, orders[0].CreatedAt.IsZero())

	empty, err := r.ListOrdersByUser(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
