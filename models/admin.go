package models

// Admin is the role-assignment table: a row here (once approved) grants the
// Admin role at login. The single super admin seat comes from
// SUPER_ADMIN_EMAIL instead.
type Admin struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"unique"`
	Name     string
	Picture  string
	Approved bool
}
