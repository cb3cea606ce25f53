package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // Order placed, awaiting dispatch
	OrderStatusShipped   OrderStatus = "Shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // Customer received the items
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderRef      string      `gorm:"uniqueIndex" json:"order_ref"` // e.g. "ord-20250908130500-<uuid>"
	UserID        string      `gorm:"not null" json:"user_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"-"`
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductFarmer string  `json:"product_farmer"`
	ProductImage  string  `json:"product_image"`
	ProductPrice  float64 `json:"product_price"`
	Quantity      int     `json:"quantity"`
}
