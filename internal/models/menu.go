package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType identifies one of the three daily meal services.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnacks    MealType = "snacks"
)

// ValidMealType reports whether value names a known meal service.
func ValidMealType(value string) bool {
	switch MealType(value) {
	case MealBreakfast, MealLunch, MealSnacks:
		return true
	}
	return false
}

// Dish is a single item on a menu, stored as part of the menu's dish list.
type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
}

// NutritionalInfo aggregates the nutrition values for a whole meal service.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Menu is one meal service: a (date, mealType) pair with its ordered dishes.
// Date is a calendar day in YYYY-MM-DD form so lexical order is date order.
type Menu struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	Date            string          `gorm:"index;not null" json:"date"`
	MealType        MealType        `gorm:"not null" json:"mealType"`
	Dishes          []Dish          `gorm:"serializer:json" json:"dishes"`
	NutritionalInfo NutritionalInfo `gorm:"serializer:json" json:"nutritionalInfo"`
	SpecialNotes    string          `json:"specialNotes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	for i := range m.Dishes {
		if m.Dishes[i].ID == "" {
			m.Dishes[i].ID = uuid.NewString()
		}
	}
	return nil
}
