package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonwise/internal/domain"
	"moonwise/internal/repository"
)

func boolPtr(b bool) *bool { return &b }

func newSettingsFixture(t *testing.T) (*repository.Repositories, SettingsService) {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	notifSvc := NewNotificationService(repos.Notification, repos.Settings, &stubNotifier{}).(*notificationService)
	notifSvc.now = func() time.Time { return testNow }
	return repos, NewSettingsService(repos.Settings, notifSvc)
}

func TestSettingsGet_DefaultsForUnknownUser(t *testing.T) {
	ctx := context.Background()
	_, svc := newSettingsFixture(t)
	userID := uuid.New()

	prefs, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, prefs.UserID)
	assert.True(t, prefs.Notifications)
	assert.Equal(t, "09:00", prefs.NotificationTime)
}

func TestSettingsUpdate_FirstWriteCreatesAndSchedules(t *testing.T) {
	ctx := context.Background()
	repos, svc := newSettingsFixture(t)
	userID := uuid.New()

	merged, err := svc.Update(ctx, userID, domain.UpdatePreferencesInput{
		FullMoonAlerts:   boolPtr(false),
		NotificationTime: "10:30",
	})
	require.NoError(t, err)
	assert.False(t, merged.FullMoonAlerts)
	assert.True(t, merged.NewMoonAlerts)
	assert.Equal(t, "10:30", merged.NotificationTime)

	stored, err := repos.Settings.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.False(t, stored.FullMoonAlerts)

	scheduled, err := repos.Notification.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, scheduled)
	for _, n := range scheduled {
		assert.NotEqual(t, domain.PhaseFullMoon, n.PhaseType)
		assert.Equal(t, 10, n.NotificationDate.Hour())
		assert.Equal(t, 30, n.NotificationDate.Minute())
	}
}

func TestSettingsUpdate_PartialWriteKeepsEarlierOptOut(t *testing.T) {
	ctx := context.Background()
	_, svc := newSettingsFixture(t)
	userID := uuid.New()

	_, err := svc.Update(ctx, userID, domain.UpdatePreferencesInput{
		NewMoonAlerts: boolPtr(false),
	})
	require.NoError(t, err)

	// A later write that does not mention the flag must not flip it back.
	merged, err := svc.Update(ctx, userID, domain.UpdatePreferencesInput{
		NotificationTime: "07:00",
	})
	require.NoError(t, err)
	assert.False(t, merged.NewMoonAlerts)
	assert.Equal(t, "07:00", merged.NotificationTime)
}

func TestSettingsUpdate_DisabledNotificationsSkipScheduling(t *testing.T) {
	ctx := context.Background()
	repos, svc := newSettingsFixture(t)
	userID := uuid.New()

	merged, err := svc.Update(ctx, userID, domain.UpdatePreferencesInput{
		Notifications: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, merged.Notifications)

	scheduled, err := repos.Notification.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, scheduled)
}
