package services

import (
	"testing"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotifications(t *testing.T, svc NotificationService) {
	for _, n := range []models.Notification{
		{Title: "Menu change", Message: "Lunch swapped", Type: models.NotificationInfo, Scope: models.ScopeEmployee},
		{Title: "Stock low", Message: "Millets below threshold", Type: models.NotificationWarning, Scope: models.ScopeAdmin},
		{Title: "Holiday", Message: "Canteen closed Friday", Type: models.NotificationInfo, Scope: models.ScopeAll},
	} {
		_, err := svc.Create(n)
		require.NoError(t, err)
	}
}

func TestNotificationScopeFiltering(t *testing.T) {
	svc := NewNotificationService(setupTestDB(t))
	seedNotifications(t, svc)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3, "empty scope returns everything")

	employee, err := svc.List(string(models.ScopeEmployee))
	require.NoError(t, err)
	require.Len(t, employee, 2, "employee scope includes organization-wide records")
	for _, n := range employee {
		assert.NotEqual(t, models.ScopeAdmin, n.Scope)
	}

	orgWide, err := svc.List(string(models.ScopeAll))
	require.NoError(t, err)
	require.Len(t, orgWide, 1)
	assert.Equal(t, "Holiday", orgWide[0].Title)
}

func TestNotificationCreateStartsUnread(t *testing.T) {
	svc := NewNotificationService(setupTestDB(t))

	created, err := svc.Create(models.Notification{
		Title:   "Welcome",
		Message: "New menu portal is live",
		Type:    models.NotificationSuccess,
		Scope:   models.ScopeAll,
		ReadBy:  []string{"should-be-dropped"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.ReadBy)
}

func TestNotificationMarkRead(t *testing.T) {
	svc := NewNotificationService(setupTestDB(t))

	created, err := svc.Create(models.Notification{Title: "Holiday", Type: models.NotificationInfo, Scope: models.ScopeAll})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(created.ID, "user-1"))
	require.NoError(t, svc.MarkRead(created.ID, "user-1"), "re-marking is a no-op")
	require.NoError(t, svc.MarkRead("no-such-notification", "user-1"), "absent id is a no-op")

	listed, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, []string{"user-1"}, listed[0].ReadBy)
}
