package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/shop_api/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("username %q: %w", user.Username, ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *GormRepo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Cart.Items.Item").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Cart.Items.Item").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
