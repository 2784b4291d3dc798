package services

import (
	"errors"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// ErrInventoryItemNotFound is returned when an update names an absent item.
var ErrInventoryItemNotFound = errors.New("inventory_item_not_found")

// InventoryService is admin-owned CRUD over kitchen stock lines.
type InventoryService interface {
	// List returns every inventory item
	List() ([]models.InventoryItem, error)
	// Create stores a new item with a fresh id
	Create(item models.InventoryItem) (models.InventoryItem, error)
	// Update replaces an existing item's fields, refreshing updatedAt
	Update(id string, item models.InventoryItem) (models.InventoryItem, error)
	// Delete removes an item; deleting an absent id is a no-op
	Delete(id string) error
}

type inventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) InventoryService {
	return &inventoryService{db: db}
}

func (s *inventoryService) List() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *inventoryService) Create(item models.InventoryItem) (models.InventoryItem, error) {
	if err := s.db.Create(&item).Error; err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (s *inventoryService) Update(id string, payload models.InventoryItem) (models.InventoryItem, error) {
	var existing models.InventoryItem
	if err := s.db.Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.InventoryItem{}, ErrInventoryItemNotFound
		}
		return models.InventoryItem{}, err
	}

	existing.Name = payload.Name
	existing.Quantity = payload.Quantity
	existing.Unit = payload.Unit
	existing.Threshold = payload.Threshold
	existing.Notes = payload.Notes

	if err := s.db.Save(&existing).Error; err != nil {
		return models.InventoryItem{}, err
	}
	return existing, nil
}

func (s *inventoryService) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.InventoryItem{}).Error
}
