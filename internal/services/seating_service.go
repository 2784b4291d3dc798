package services

import (
	"errors"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// ErrSeatingCapacityNotFound is returned when an update names an absent record.
var ErrSeatingCapacityNotFound = errors.New("seating_capacity_not_found")

// SeatingService maintains the per-date attendance caps used by the
// aggregated selections view.
type SeatingService interface {
	// ForDate returns the capacity record for a day, or nil when none exists
	ForDate(date string) (*models.SeatingCapacity, error)
	// Create stores a new capacity record with a fresh id
	Create(record models.SeatingCapacity) (models.SeatingCapacity, error)
	// Update replaces an existing record's fields, refreshing updatedAt
	Update(id string, record models.SeatingCapacity) (models.SeatingCapacity, error)
}

type seatingService struct {
	db *gorm.DB
}

func NewSeatingService(db *gorm.DB) SeatingService {
	return &seatingService{db: db}
}

func (s *seatingService) ForDate(date string) (*models.SeatingCapacity, error) {
	var record models.SeatingCapacity
	err := s.db.Where("date = ?", date).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *seatingService) Create(record models.SeatingCapacity) (models.SeatingCapacity, error) {
	if err := s.db.Create(&record).Error; err != nil {
		return models.SeatingCapacity{}, err
	}
	return record, nil
}

func (s *seatingService) Update(id string, payload models.SeatingCapacity) (models.SeatingCapacity, error) {
	var existing models.SeatingCapacity
	if err := s.db.Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SeatingCapacity{}, ErrSeatingCapacityNotFound
		}
		return models.SeatingCapacity{}, err
	}

	existing.Date = payload.Date
	existing.Capacity = payload.Capacity

	if err := s.db.Save(&existing).Error; err != nil {
		return models.SeatingCapacity{}, err
	}
	return existing, nil
}
