package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole is one of the two principals the canteen knows about.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleAdmin    UserRole = "admin"
)

// User accounts are created at seed time only; there is no self-service
// registration in this deployment. PasswordHash never leaves the server.
type User struct {
	ID           string   `gorm:"primaryKey" json:"id"`
	Name         string   `json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Role         UserRole `gorm:"not null" json:"role"`
	PasswordHash string   `json:"-"`
	Department   string   `json:"department"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
