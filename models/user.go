package models

import "time"

// Role is the access tier carried in the session JWT. Roles are derived at
// login time (see auth package) and never stored on the User row.
type Role string

const (
	RoleClient     Role = "Client"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "Super Admin"
)

type User struct {
	ID        string  `gorm:"primaryKey" json:"id"` // Firebase UID
	Email     string  `gorm:"unique;not null" json:"email"`
	Name      string  `json:"name"`
	Picture   string  `json:"picture"`
	Provider  string  `json:"provider"`
	Cart      Cart    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order `gorm:"foreignKey:UserID" json:"orders"` // UserID is NOT NULL, so user rows with orders cannot be deleted
	CreatedAt time.Time
}
