package models

import "time"

type Farmer struct {
	ID        string          `gorm:"primaryKey" json:"id"` // e.g. "farmer-1"
	Name      string          `gorm:"not null" json:"name"`
	Contact   string          `json:"contact"`
	Products  []FarmerProduct `gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt time.Time       `json:"created_at"`
}

// FarmerProduct links a farmer to a marketplace product id. No foreign key
// constraint on ProductID: a dangling id is legal and renders as
// "Unknown Product" in the read model.
type FarmerProduct struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	FarmerID  string `gorm:"index" json:"-"`
	ProductID uint   `json:"product_id"`
}
