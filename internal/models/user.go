package models

import (
	"time"
)

// User is keyed by email: login is an upsert on the email, so there is no
// separate account-creation flow and no password credential.
type User struct {
	Email     string    `gorm:"primaryKey;size:255" json:"email"`
	Name      string    `gorm:"size:255" json:"name,omitempty"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	ImageURL  string    `gorm:"type:text" json:"image_url,omitempty"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const RoleAdmin = "admin"

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
