package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonwise/internal/domain"
)

func TestMemorySettings(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.Settings()
	userID := uuid.New()

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByUser(ctx, userID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update missing returns ErrNotFound", func(t *testing.T) {
		prefs := domain.DefaultPreferences(userID)
		err := repo.Update(ctx, &prefs)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("create then get", func(t *testing.T) {
		prefs := domain.DefaultPreferences(userID)
		require.NoError(t, repo.Create(ctx, &prefs))
		assert.NotEqual(t, uuid.Nil, prefs.ID)
		assert.False(t, prefs.CreatedAt.IsZero())

		got, err := repo.GetByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, prefs.ID, got.ID)
		assert.True(t, got.Notifications)
		assert.Equal(t, "09:00", got.NotificationTime)
	})

	t.Run("update keeps id and created_at", func(t *testing.T) {
		existing, err := repo.GetByUser(ctx, userID)
		require.NoError(t, err)

		updated := *existing
		updated.FullMoonAlerts = false
		updated.NotificationTime = "20:00"
		require.NoError(t, repo.Update(ctx, &updated))

		got, err := repo.GetByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, got.ID)
		assert.Equal(t, existing.CreatedAt, got.CreatedAt)
		assert.False(t, got.FullMoonAlerts)
		assert.Equal(t, "20:00", got.NotificationTime)
	})

	t.Run("users are isolated", func(t *testing.T) {
		_, err := repo.GetByUser(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryNotifications_CreateDedup(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStore().Notifications()
	userID := uuid.New()
	phaseDate := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	notif := domain.PhaseNotification{
		UserID:           userID,
		PhaseType:        domain.PhaseFullMoon,
		PhaseDate:        phaseDate,
		NotificationDate: phaseDate.Add(9 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, &notif))

	// Same user, phase and day: silently dropped.
	dup := notif
	dup.ID = uuid.Nil
	require.NoError(t, repo.Create(ctx, &dup))

	// Same day, different phase: kept.
	other := notif
	other.ID = uuid.Nil
	other.PhaseType = domain.PhaseNewMoon
	require.NoError(t, repo.Create(ctx, &other))

	// Same phase, different day: kept.
	later := notif
	later.ID = uuid.Nil
	later.PhaseDate = phaseDate.AddDate(0, 0, 29)
	require.NoError(t, repo.Create(ctx, &later))

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestMemoryNotifications_ListByUserSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStore().Notifications()
	userID := uuid.New()
	base := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	for _, offset := range []int{14, 0, 7} {
		n := domain.PhaseNotification{
			UserID:           userID,
			PhaseType:        domain.PhaseFullMoon,
			PhaseDate:        base.AddDate(0, 0, offset),
			NotificationDate: base.AddDate(0, 0, offset),
		}
		require.NoError(t, repo.Create(ctx, &n))
	}
	// Another user's record must not leak in.
	foreign := domain.PhaseNotification{
		UserID:    uuid.New(),
		PhaseType: domain.PhaseNewMoon,
		PhaseDate: base,
	}
	require.NoError(t, repo.Create(ctx, &foreign))

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].PhaseDate.Before(list[1].PhaseDate))
	assert.True(t, list[1].PhaseDate.Before(list[2].PhaseDate))
}

func TestMemoryNotifications_PendingAndMarkSent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStore().Notifications()
	userID := uuid.New()
	now := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)

	due := domain.PhaseNotification{
		UserID:           userID,
		PhaseType:        domain.PhaseNewMoon,
		PhaseDate:        now,
		NotificationDate: now.Add(-time.Hour),
	}
	exact := domain.PhaseNotification{
		UserID:           userID,
		PhaseType:        domain.PhaseFirstQuarter,
		PhaseDate:        now.AddDate(0, 0, 7),
		NotificationDate: now,
	}
	future := domain.PhaseNotification{
		UserID:           userID,
		PhaseType:        domain.PhaseFullMoon,
		PhaseDate:        now.AddDate(0, 0, 14),
		NotificationDate: now.Add(time.Hour),
	}
	for _, n := range []*domain.PhaseNotification{&due, &exact, &future} {
		require.NoError(t, repo.Create(ctx, n))
	}

	pending, err := repo.ListPending(ctx, now)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Due-at-now is included, strictly future is not.
	assert.Equal(t, due.ID, pending[0].ID)
	assert.Equal(t, exact.ID, pending[1].ID)

	require.NoError(t, repo.MarkSent(ctx, due.ID))

	pending, err = repo.ListPending(ctx, now)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, exact.ID, pending[0].ID)

	// Marking an unknown id is a no-op.
	assert.NoError(t, repo.MarkSent(ctx, uuid.New()))
}
