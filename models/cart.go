package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                                 // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the product fields at add time so the cart stays
// renderable even if the listing is later edited or removed.
type CartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CartID        uint      `gorm:"index" json:"-"`
	ProductID     uint      `json:"product_id"`
	ProductName   string    `json:"product_name"`
	ProductFarmer string    `json:"product_farmer"`
	ProductImage  string    `json:"product_image"`
	ProductPrice  float64   `json:"product_price"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

// Subtotal is the sum of price times quantity over the cart's items.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.ProductPrice * float64(item.Quantity)
	}
	return total
}
