package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/shop_api/internal/models"
)

func (r *GormRepo) ListItems(ctx context.Context) ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) FindItemByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) FindItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.DB.WithContext(ctx).Where("name = ?", name).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchItems is a substring match over name and description.
func (r *GormRepo) SearchItems(ctx context.Context, q string, offset, limit int) (int64, []models.Item, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	where := "LOWER(name) LIKE ? OR LOWER(description) LIKE ?"

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Item{}).Where(where, pattern, pattern).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Item, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where(where, pattern, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// SeedItems inserts items only when the catalog is empty.
func (r *GormRepo) SeedItems(ctx context.Context, items []models.Item) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Item{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 || len(items) == 0 {
		return false, nil
	}
	if err := r.DB.WithContext(ctx).Create(&items).Error; err != nil {
		return false, err
	}
	return true, nil
}
