package services

import (
	"errors"
	"time"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// FeedbackService maintains meal ratings with the same upsert discipline as
// selections: one live record per (userId, menuId) pair. Rating range checks
// belong to the handlers; by the time a value reaches this service it is
// trusted to be 1-5.
type FeedbackService interface {
	// Upsert records or revises a rating, re-stamping createdAt on revision
	Upsert(userID, menuID string, rating int, comments string) (models.Feedback, error)
	// ForMenu returns all feedback for a menu
	ForMenu(menuID string) ([]models.Feedback, error)
	// All returns every feedback record in the store
	All() ([]models.Feedback, error)
}

type feedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) FeedbackService {
	return &feedbackService{db: db}
}

func (s *feedbackService) Upsert(userID, menuID string, rating int, comments string) (models.Feedback, error) {
	var existing models.Feedback
	err := s.db.Where("user_id = ? AND menu_id = ?", userID, menuID).First(&existing).Error
	if err == nil {
		existing.Rating = rating
		existing.Comments = comments
		existing.CreatedAt = time.Now()
		if err := s.db.Save(&existing).Error; err != nil {
			return models.Feedback{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Feedback{}, err
	}

	feedback := models.Feedback{
		UserID:   userID,
		MenuID:   menuID,
		Rating:   rating,
		Comments: comments,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return models.Feedback{}, err
	}
	return feedback, nil
}

func (s *feedbackService) ForMenu(menuID string) ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := s.db.Where("menu_id = ?", menuID).Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackService) All() ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := s.db.Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
