package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeatingCapacity caps confirmable attendance for a calendar day; the
// aggregated selections view derives pending seats from it.
type SeatingCapacity struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"index;not null" json:"date"`
	Capacity  int       `json:"capacity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *SeatingCapacity) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
