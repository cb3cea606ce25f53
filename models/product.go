package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Farmer      string         `gorm:"not null" json:"farmer"` // Display name of the selling farmer
	Price       float64        `gorm:"not null" json:"price"`  // BDT
	Description string         `json:"description"`
	Image       string         `gorm:"not null" json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
