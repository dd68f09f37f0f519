package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/models"
)

type CartService struct {
	users  UserStore
	items  ItemStore
	carts  CartStore
	events EventPublisher
}

func NewCartService(users UserStore, items ItemStore, carts CartStore, events EventPublisher) *CartService {
	return &CartService{
		users:  users,
		items:  items,
		carts:  carts,
		events: events,
	}
}

func (s *CartService) GetCart(ctx context.Context, username string) (*models.Cart, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, userLookupError(err)
	}
	return cartOf(user), nil
}

func (s *CartService) AddToCart(ctx context.Context, username string, itemID uint, quantity int) (*models.Cart, error) {
	return s.modify(ctx, "cart.add", username, itemID, quantity, addLine)
}

// RemoveFromCart takes up to quantity units of the item out of the cart.
// Asking for more than is held empties the line; an item that is not in
// the cart leaves it untouched.
func (s *CartService) RemoveFromCart(ctx context.Context, username string, itemID uint, quantity int) (*models.Cart, error) {
	return s.modify(ctx, "cart.remove", username, itemID, quantity, removeLine)
}

// MaxLineQuantity caps the units of one item a cart line may hold.
const MaxLineQuantity = 10000

type lineOp func(cart *models.Cart, item *models.Item, quantity uint) error

// modify leaves failure logging to the caller; it only records successful
// changes.
func (s *CartService) modify(ctx context.Context, op, username string, itemID uint, quantity int, apply lineOp) (*models.Cart, error) {
	l := logging.FromContext(ctx).With("svc", op, "username", username, "item_id", itemID)

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, userLookupError(err)
	}

	item, err := s.items.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	cart := cartOf(user)
	if err := apply(cart, item, uint(quantity)); err != nil {
		return nil, err
	}
	cart.Recalculate()

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	l.Info("cart_modified", "quantity", quantity, "total", cart.Total.String())
	publish(ctx, s.events, TopicCartEvents, username, map[string]any{
		"type":     op,
		"userID":   user.ID,
		"cartID":   cart.ID,
		"itemID":   item.ID,
		"quantity": quantity,
		"total":    cart.Total.String(),
	})
	return cart, nil
}

func addLine(cart *models.Cart, item *models.Item, quantity uint) error {
	if quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	if line := cart.Line(item.ID); line != nil {
		if line.Quantity+quantity > MaxLineQuantity {
			return ErrInvalidQuantity
		}
		line.Quantity += quantity
		line.Item = *item
		return nil
	}
	cart.Items = append(cart.Items, models.CartItem{
		CartID:   cart.ID,
		ItemID:   item.ID,
		Item:     *item,
		Quantity: quantity,
	})
	return nil
}

func removeLine(cart *models.Cart, item *models.Item, quantity uint) error {
	for i := range cart.Items {
		if cart.Items[i].ItemID != item.ID {
			continue
		}
		if cart.Items[i].Quantity > quantity {
			cart.Items[i].Quantity -= quantity
			return nil
		}
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		return nil
	}
	return nil
}

// cartOf never returns nil so callers can treat a missing cart as empty.
func cartOf(user *models.User) *models.Cart {
	if user.Cart == nil {
		user.Cart = &models.Cart{ID: user.CartID}
	}
	if user.Cart.Items == nil {
		user.Cart.Items = []models.CartItem{}
	}
	return user.Cart
}
