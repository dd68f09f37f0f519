package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/shop_api/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.UserOrder) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return nil
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		return tx.Omit(clause.Associations).Create(&order.Items).Error
	})
}

func (r *GormRepo) ListOrdersByUser(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	orders := make([]models.UserOrder, 0)
	if err := r.DB.WithContext(ctx).
		Preload("Items.Item").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
