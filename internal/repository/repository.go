package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"moonwise/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type SettingsRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error)
	Create(ctx context.Context, prefs *domain.NotificationPreferences) error
	// Update replaces an existing record and fails with ErrNotFound when
	// the user has never written settings. Upsert semantics live in the
	// service layer, not here.
	Update(ctx context.Context, prefs *domain.NotificationPreferences) error
}

type NotificationRepository interface {
	// Create inserts a notification. Inserting a duplicate
	// (user, phase, phase day) is a silent no-op, which makes
	// scheduling idempotent at the storage boundary.
	Create(ctx context.Context, notif *domain.PhaseNotification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PhaseNotification, error)
	// ListPending returns unsent notifications due at or before now.
	ListPending(ctx context.Context, now time.Time) ([]domain.PhaseNotification, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	Settings     SettingsRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Settings:     NewSettingsRepository(db),
		Notification: NewNotificationRepository(db),
	}
}

// NewMemoryRepositories backs both repositories with a single in-memory
// store, used in development and tests when no DATABASE_URL is configured.
func NewMemoryRepositories() *Repositories {
	store := NewMemoryStore()
	return &Repositories{
		Settings:     store.Settings(),
		Notification: store.Notifications(),
	}
}
