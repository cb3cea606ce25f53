package models

import "time"

// Seed is a native rice seed variety in the seed library.
// Optimal ranges are free-text because the agronomy data is descriptive
// ("Medium-High"), not numeric.
type Seed struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"unique;not null" json:"name"`
	Description     string    `json:"description"`
	OptimalPH       string    `gorm:"column:optimal_ph" json:"optimal_ph"`
	OptimalMoisture string    `json:"optimal_moisture"`
	Image           string    `json:"image"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
