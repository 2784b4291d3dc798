package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealStatus is an employee's answer for a meal service.
type MealStatus string

const (
	StatusOptIn  MealStatus = "opt-in"
	StatusOptOut MealStatus = "opt-out"
)

// ValidMealStatus reports whether value is a known selection status.
func ValidMealStatus(value string) bool {
	return MealStatus(value) == StatusOptIn || MealStatus(value) == StatusOptOut
}

// MealSelection records one user's answer for one menu. At most one live
// record exists per (userId, menuId) pair; repeat votes mutate in place.
type MealSelection struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"index:idx_selections_user_menu;not null" json:"userId"`
	MenuID    string     `gorm:"index:idx_selections_user_menu;not null" json:"menuId"`
	Status    MealStatus `gorm:"not null" json:"status"`
	Reason    string     `json:"reason,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (s *MealSelection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
