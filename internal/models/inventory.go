package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem tracks a kitchen stock line. Threshold is the reorder point
// the admin dashboard highlights when quantity drops below it.
type InventoryItem struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Threshold float64   `json:"threshold"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
