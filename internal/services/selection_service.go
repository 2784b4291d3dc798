package services

import (
	"errors"
	"time"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// SelectionService maintains meal selections with upsert discipline: at most
// one live record per (userId, menuId) pair.
type SelectionService interface {
	// Upsert records or revises a user's answer for a menu, refreshing the
	// timestamp. Reason is always overwritten, so a revote without a reason
	// clears the previous one.
	Upsert(userID, menuID string, status models.MealStatus, reason string) (models.MealSelection, error)
	// ForUser returns the user's selections
	ForUser(userID string) ([]models.MealSelection, error)
	// ForMenu returns all selections for a menu
	ForMenu(menuID string) ([]models.MealSelection, error)
	// All returns every selection in the store
	All() ([]models.MealSelection, error)
}

type selectionService struct {
	db *gorm.DB
}

func NewSelectionService(db *gorm.DB) SelectionService {
	return &selectionService{db: db}
}

func (s *selectionService) Upsert(userID, menuID string, status models.MealStatus, reason string) (models.MealSelection, error) {
	var existing models.MealSelection
	err := s.db.Where("user_id = ? AND menu_id = ?", userID, menuID).First(&existing).Error
	if err == nil {
		existing.Status = status
		existing.Reason = reason
		existing.UpdatedAt = time.Now()
		if err := s.db.Save(&existing).Error; err != nil {
			return models.MealSelection{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MealSelection{}, err
	}

	selection := models.MealSelection{
		UserID: userID,
		MenuID: menuID,
		Status: status,
		Reason: reason,
	}
	if err := s.db.Create(&selection).Error; err != nil {
		return models.MealSelection{}, err
	}
	return selection, nil
}

func (s *selectionService) ForUser(userID string) ([]models.MealSelection, error) {
	var selections []models.MealSelection
	if err := s.db.Where("user_id = ?", userID).Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (s *selectionService) ForMenu(menuID string) ([]models.MealSelection, error) {
	var selections []models.MealSelection
	if err := s.db.Where("menu_id = ?", menuID).Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (s *selectionService) All() ([]models.MealSelection, error) {
	var selections []models.MealSelection
	if err := s.db.Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}
