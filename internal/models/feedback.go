package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a meal rating on a 1-5 scale, one live record per
// (userId, menuId) pair. CreatedAt is re-stamped when the rating is revised.
// Range validation happens in the handlers, before the store is touched.
type Feedback struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_feedback_user_menu;not null" json:"userId"`
	MenuID    string    `gorm:"index:idx_feedback_user_menu;not null" json:"menuId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
