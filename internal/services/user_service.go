package services

import (
	"strings"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// UserService looks up seeded accounts. There is no create path here; users
// only enter the store through the seed.
type UserService interface {
	// FindByEmail matches the address case-insensitively
	FindByEmail(email string) (*models.User, error)
	// GetByID retrieves a user by its id
	GetByID(id string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := s.db.Where("LOWER(email) = ?", normalized).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
