package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"moonwise/internal/domain"
)

// MemoryStore is a mutex-guarded in-memory backing store for both
// repositories, used in development and tests. Ids are allocated per insert;
// all state is scoped to the instance, never to the process.
type MemoryStore struct {
	mu            sync.Mutex
	settings      map[uuid.UUID]domain.NotificationPreferences
	notifications []domain.PhaseNotification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		settings: make(map[uuid.UUID]domain.NotificationPreferences),
	}
}

// Settings returns the settings view of the store.
func (s *MemoryStore) Settings() SettingsRepository {
	return &memorySettings{store: s}
}

// Notifications returns the notifications view of the store.
func (s *MemoryStore) Notifications() NotificationRepository {
	return &memoryNotifications{store: s}
}

type memorySettings struct {
	store *MemoryStore
}

var _ SettingsRepository = (*memorySettings)(nil)

func (r *memorySettings) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreferences, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prefs, ok := r.store.settings[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := prefs
	return &copied, nil
}

func (r *memorySettings) Create(ctx context.Context, prefs *domain.NotificationPreferences) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if prefs.ID == uuid.Nil {
		prefs.ID = uuid.New()
	}
	now := time.Now().UTC()
	prefs.CreatedAt = now
	prefs.UpdatedAt = now
	r.store.settings[prefs.UserID] = *prefs
	return nil
}

func (r *memorySettings) Update(ctx context.Context, prefs *domain.NotificationPreferences) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.settings[prefs.UserID]
	if !ok {
		return ErrNotFound
	}
	prefs.ID = existing.ID
	prefs.CreatedAt = existing.CreatedAt
	prefs.UpdatedAt = time.Now().UTC()
	r.store.settings[prefs.UserID] = *prefs
	return nil
}

type memoryNotifications struct {
	store *MemoryStore
}

var _ NotificationRepository = (*memoryNotifications)(nil)

// Create dedups on (user, phase, phase day) under the store lock, mirroring
// the unique index of the Postgres implementation.
func (r *memoryNotifications) Create(ctx context.Context, notif *domain.PhaseNotification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notifications {
		existing := &r.store.notifications[i]
		if existing.UserID == notif.UserID &&
			existing.PhaseType == notif.PhaseType &&
			existing.PhaseDay() == notif.PhaseDay() {
			return nil
		}
	}

	if notif.ID == uuid.Nil {
		notif.ID = uuid.New()
	}
	notif.Sent = false
	notif.CreatedAt = time.Now().UTC()
	r.store.notifications = append(r.store.notifications, *notif)
	return nil
}

func (r *memoryNotifications) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PhaseNotification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []domain.PhaseNotification
	for _, n := range r.store.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PhaseDate.Before(result[j].PhaseDate)
	})
	return result, nil
}

func (r *memoryNotifications) ListPending(ctx context.Context, now time.Time) ([]domain.PhaseNotification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []domain.PhaseNotification
	for _, n := range r.store.notifications {
		if !n.Sent && !n.NotificationDate.After(now) {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].NotificationDate.Before(result[j].NotificationDate)
	})
	return result, nil
}

func (r *memoryNotifications) MarkSent(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notifications {
		if r.store.notifications[i].ID == id {
			r.store.notifications[i].Sent = true
			return nil
		}
	}
	return nil
}
