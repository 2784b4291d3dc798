package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// ErrMenuNotFound is returned when an update or lookup names an absent menu.
var ErrMenuNotFound = errors.New("menu_not_found")

// MenuListOptions narrows a menu listing. Date matches by prefix so a plain
// YYYY-MM-DD day filter works against stored dates.
type MenuListOptions struct {
	IncludePast bool
	Date        string
	MealType    string
}

// MenuService provides the menu collection of the store. Create and Update
// are deliberately separate operations; the "not found on update" failure is
// explicit instead of being folded into an upsert.
type MenuService interface {
	// List returns menus for today or later unless IncludePast is set,
	// sorted by date then meal type lexically
	List(opts MenuListOptions) ([]models.Menu, error)
	// GetByID retrieves a menu by its id
	GetByID(id string) (*models.Menu, error)
	// Create stores a new menu with a fresh id and both timestamps set
	Create(menu models.Menu) (models.Menu, error)
	// Update replaces an existing menu field by field, preserving id and
	// createdAt and refreshing updatedAt
	Update(id string, menu models.Menu) (models.Menu, error)
	// Delete removes the menu and cascades to its selections and feedback;
	// deleting an absent id is a no-op
	Delete(id string) error
}

type menuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) List(opts MenuListOptions) ([]models.Menu, error) {
	tx := s.db.Order("date, meal_type")
	if !opts.IncludePast {
		today := time.Now().Format("2006-01-02")
		tx = tx.Where("date >= ?", today)
	}
	if opts.Date != "" {
		tx = tx.Where("date LIKE ?", opts.Date+"%")
	}
	if opts.MealType != "" {
		tx = tx.Where("meal_type = ?", opts.MealType)
	}

	var menus []models.Menu
	if err := tx.Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *menuService) GetByID(id string) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.Where("id = ?", id).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (s *menuService) Create(menu models.Menu) (models.Menu, error) {
	if err := s.db.Create(&menu).Error; err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

func (s *menuService) Update(id string, payload models.Menu) (models.Menu, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Menu{}, err
	}

	// Dishes added during an update never went through BeforeCreate
	for i := range payload.Dishes {
		if payload.Dishes[i].ID == "" {
			payload.Dishes[i].ID = uuid.NewString()
		}
	}

	existing.Date = payload.Date
	existing.MealType = payload.MealType
	existing.Dishes = payload.Dishes
	existing.NutritionalInfo = payload.NutritionalInfo
	existing.SpecialNotes = payload.SpecialNotes

	if err := s.db.Save(existing).Error; err != nil {
		return models.Menu{}, err
	}
	return *existing, nil
}

func (s *menuService) Delete(id string) error {
	// Cascade as one explicit sequence: the menu, then everything keyed to
	// it. A single transaction gives the whole removal one outcome.
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&models.Menu{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", id).Delete(&models.MealSelection{}).Error; err != nil {
			return err
		}
		return tx.Where("menu_id = ?", id).Delete(&models.Feedback{}).Error
	})
}
