package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/models"
)

type OrderService struct {
	users  UserStore
	orders OrderStore
	events EventPublisher
}

func NewOrderService(users UserStore, orders OrderStore, events EventPublisher) *OrderService {
	return &OrderService{
		users:  users,
		orders: orders,
		events: events,
	}
}

// Submit freezes the user's current cart into a new order. The cart itself
// is left as it was.
func (s *OrderService) Submit(ctx context.Context, username string) (*models.UserOrder, error) {
	l := logging.FromContext(ctx).With("svc", "order.submit", "username", username)

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		err = userLookupError(err)
		l.Warn("submit_order_error", "error", err)
		return nil, err
	}

	order := snapshot(user.ID, cartOf(user))
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		l.Error("submit_order_error", "status", 500, "reason", "cannot save order", "error", err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	l.Info("order_submitted", "order_id", order.ID, "lines", len(order.Items), "total", order.Total.String())
	publish(ctx, s.events, TopicOrderEvents, username, map[string]any{
		"type":    "order_submitted",
		"userID":  user.ID,
		"orderID": order.ID,
		"lines":   len(order.Items),
		"total":   order.Total.String(),
	})
	return order, nil
}

func (s *OrderService) History(ctx context.Context, username string) ([]models.UserOrder, error) {
	l := logging.FromContext(ctx).With("svc", "order.history", "username", username)

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		err = userLookupError(err)
		l.Warn("order_history_error", "error", err)
		return nil, err
	}

	orders, err := s.orders.ListOrdersByUser(ctx, user.ID)
	if err != nil {
		l.Error("order_history_error", "status", 500, "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []models.UserOrder{}
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []models.OrderItem{}
		}
	}
	return orders, nil
}

func snapshot(userID uint, cart *models.Cart) *models.UserOrder {
	order := &models.UserOrder{
		UserID: userID,
		Items:  make([]models.OrderItem, 0, len(cart.Items)),
		Total:  decimal.Zero,
	}
	for _, line := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:    line.ItemID,
			Item:      line.Item,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
		})
		order.Total = order.Total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return order
}
