package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType is the severity tag shown next to an announcement.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
)

// ValidNotificationType reports whether value is a known severity tag.
func ValidNotificationType(value string) bool {
	switch NotificationType(value) {
	case NotificationInfo, NotificationWarning, NotificationSuccess:
		return true
	}
	return false
}

// NotificationScope is the intended audience of an announcement.
type NotificationScope string

const (
	ScopeEmployee NotificationScope = "employee"
	ScopeAdmin    NotificationScope = "admin"
	ScopeAll      NotificationScope = "all"
)

// ValidNotificationScope reports whether value is a known audience scope.
func ValidNotificationScope(value string) bool {
	switch NotificationScope(value) {
	case ScopeEmployee, ScopeAdmin, ScopeAll:
		return true
	}
	return false
}

// Notification is an append-only announcement; the only mutation after
// creation is the per-user read marker.
type Notification struct {
	ID        string            `gorm:"primaryKey" json:"id"`
	Title     string            `gorm:"not null" json:"title"`
	Message   string            `json:"message"`
	Type      NotificationType  `gorm:"not null" json:"type"`
	Scope     NotificationScope `gorm:"not null" json:"scope"`
	CreatedAt time.Time         `json:"createdAt"`
	ReadBy    []string          `gorm:"serializer:json" json:"readBy"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.ReadBy == nil {
		n.ReadBy = []string{}
	}
	return nil
}
