package services

import (
	"errors"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// NotificationService serves announcements. Records are append-only; the
// only post-creation mutation is the per-user read marker.
type NotificationService interface {
	// List returns notifications newest first. An empty scope returns
	// everything; scope "all" returns only organization-wide records; the
	// employee and admin scopes also include organization-wide records.
	List(scope string) ([]models.Notification, error)
	// Create stores a new announcement with an empty read set
	Create(notification models.Notification) (models.Notification, error)
	// MarkRead records that userID has read the notification. Marking an
	// absent notification or re-marking a read one is a no-op.
	MarkRead(notificationID, userID string) error
}

type notificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) NotificationService {
	return &notificationService{db: db}
}

func (s *notificationService) List(scope string) ([]models.Notification, error) {
	tx := s.db.Order("created_at DESC")
	switch scope {
	case "":
		// no filter
	case string(models.ScopeAll):
		tx = tx.Where("scope = ?", models.ScopeAll)
	default:
		tx = tx.Where("scope = ? OR scope = ?", scope, models.ScopeAll)
	}

	var notifications []models.Notification
	if err := tx.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *notificationService) Create(notification models.Notification) (models.Notification, error) {
	notification.ReadBy = []string{}
	if err := s.db.Create(&notification).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (s *notificationService) MarkRead(notificationID, userID string) error {
	var notification models.Notification
	err := s.db.Where("id = ?", notificationID).First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, reader := range notification.ReadBy {
		if reader == userID {
			return nil
		}
	}
	notification.ReadBy = append(notification.ReadBy, userID)
	return s.db.Save(&notification).Error
}
