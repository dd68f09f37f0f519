package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"            json:"id"`
	Name        string          `gorm:"not null;index"                      json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"         json:"price"`
	Description string          `gorm:"not null"                            json:"description"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	CartID       uint   `gorm:"not null"                 json:"-"`
	Cart         *Cart  `gorm:"foreignKey:CartID"        json:"cart,omitempty"`
}

type Cart struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"            json:"id"`
	Items []CartItem      `gorm:"foreignKey:CartID"                   json:"items"`
	Total decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total"`
}

type CartItem struct {
	ID       uint `gorm:"primaryKey"                               json:"-"`
	CartID   uint `gorm:"uniqueIndex:idx_cart_item;not null"       json:"-"`
	ItemID   uint `gorm:"uniqueIndex:idx_cart_item;not null"       json:"itemId"`
	Item     Item `gorm:"foreignKey:ItemID"                        json:"item"`
	Quantity uint `gorm:"not null;check:quantity>0"                json:"quantity"`
}

// Recalculate refreshes Total from the current lines.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	for _, line := range c.Items {
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	c.Total = total
}

// Line returns the line holding itemID, or nil.
func (c *Cart) Line(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// Count is the number of item units in the cart.
func (c *Cart) Count() int {
	n := 0
	for _, line := range c.Items {
		n += int(line.Quantity)
	}
	return n
}

type UserOrder struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"              json:"id"`
	UserID    uint            `gorm:"index;not null"                        json:"userId"`
	User      *User           `gorm:"foreignKey:UserID"                     json:"-"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID"                    json:"items"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"           json:"total"`
	CreatedAt time.Time       `gorm:"not null"                              json:"createdAt"`
}

func (UserOrder) TableName() string {
	return "user_orders"
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey"                   json:"-"`
	OrderID   uint            `gorm:"index;not null"               json:"-"`
	ItemID    uint            `gorm:"not null"                     json:"itemId"`
	Item      Item            `gorm:"foreignKey:ItemID"            json:"item"`
	Quantity  uint            `gorm:"not null;check:quantity>0"    json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"  json:"unitPrice"`
}

// All lists every model for AutoMigrate in dependency order.
func All() []any {
	return []any{&Item{}, &Cart{}, &User{}, &CartItem{}, &UserOrder{}, &OrderItem{}}
}
