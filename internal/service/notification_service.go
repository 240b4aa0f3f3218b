package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"moonwise/internal/astro"
	"moonwise/internal/domain"
	"moonwise/internal/repository"
)

// scheduleHorizonDays is how far ahead the scheduler looks for key phases.
const scheduleHorizonDays = 90

// upcomingLimit caps the upcoming-notifications listing.
const upcomingLimit = 10

type UpcomingNotification struct {
	ID               uuid.UUID                  `json:"id"`
	PhaseType        domain.Phase               `json:"phaseType"`
	PhaseDate        time.Time                  `json:"phaseDate"`
	NotificationDate time.Time                  `json:"notificationDate"`
	Message          domain.NotificationMessage `json:"message"`
}

type NotificationService interface {
	ScheduleUpcoming(ctx context.Context, userID uuid.UUID) error
	ProcessPending(ctx context.Context) error
	Upcoming(ctx context.Context, userID uuid.UUID) ([]UpcomingNotification, error)
}

type notificationService struct {
	notifRepo    repository.NotificationRepository
	settingsRepo repository.SettingsRepository
	notifier     PhaseNotifier

	// userLocks serializes scheduling per user: the read-check-write
	// sequence below is not transactional, so concurrent runs for the
	// same user could both pass the dedup check on a stale read.
	userLocks sync.Map

	now func() time.Time
}

func NewNotificationService(notifRepo repository.NotificationRepository, settingsRepo repository.SettingsRepository, notifier PhaseNotifier) NotificationService {
	return &notificationService{
		notifRepo:    notifRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

// ScheduleUpcoming walks the next 90 days, finds the days a key phase falls
// on, and creates one notification per (phase, day) the user has opted into,
// skipping anything already scheduled or already in the past. A disabled or
// unknown user is a no-op, not an error.
func (s *notificationService) ScheduleUpcoming(ctx context.Context, userID uuid.UUID) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	prefs, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load settings: %w", err)
	}
	if !prefs.Notifications {
		return nil
	}

	existing, err := s.notifRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load existing notifications: %w", err)
	}
	scheduled := make(map[string]bool, len(existing))
	for _, n := range existing {
		scheduled[dedupKey(n.PhaseType, n.PhaseDay())] = true
	}

	hour, minute, err := domain.ParseNotificationTime(prefs.NotificationTime)
	if err != nil {
		// Stored time should always be valid; fall back to the default
		// rather than silently scheduling nothing.
		hour, minute = 9, 0
	}

	now := s.now()
	var staged []domain.PhaseNotification

	for dayOffset := 0; dayOffset < scheduleHorizonDays; dayOffset++ {
		checkDate := now.AddDate(0, 0, dayOffset)
		reading := astro.CalculateMoonPhase(checkDate)

		if !domain.IsKeyPhase(reading.Phase) {
			continue
		}
		if !wantsPhase(reading.Phase, prefs) {
			continue
		}

		day := checkDate.UTC()
		notifyAt := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)

		if scheduled[dedupKey(reading.Phase, day.Format("2006-01-02"))] {
			continue
		}
		if !notifyAt.After(now) {
			continue
		}

		staged = append(staged, domain.PhaseNotification{
			UserID:           userID,
			PhaseType:        reading.Phase,
			PhaseDate:        checkDate,
			NotificationDate: notifyAt,
		})
	}

	// Sequential independent creates; a failure leaves earlier records
	// intact with no rollback.
	for i := range staged {
		if err := s.notifRepo.Create(ctx, &staged[i]); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
	}
	return nil
}

// wantsPhase applies the per-phase opt-in. Both quarters share one flag.
// Flags default to true at merge time, so a stored false is always an
// explicit opt-out.
func wantsPhase(phase domain.Phase, prefs *domain.NotificationPreferences) bool {
	switch phase {
	case domain.PhaseNewMoon:
		return prefs.NewMoonAlerts
	case domain.PhaseFullMoon:
		return prefs.FullMoonAlerts
	case domain.PhaseFirstQuarter, domain.PhaseLastQuarter:
		return prefs.QuarterMoonAlerts
	default:
		return false
	}
}

// ProcessPending delivers every due unsent notification and marks it sent.
// Each record fails independently: a delivery error is logged and the sweep
// moves on.
func (s *notificationService) ProcessPending(ctx context.Context) error {
	pending, err := s.notifRepo.ListPending(ctx, s.now())
	if err != nil {
		return fmt.Errorf("list pending notifications: %w", err)
	}

	for _, notif := range pending {
		email := ""
		if prefs, err := s.settingsRepo.GetByUser(ctx, notif.UserID); err == nil {
			email = prefs.AlertEmail
		}

		if err := s.notifier.SendPhaseAlert(ctx, email, notif); err != nil {
			log.Printf("failed to send notification %s: %v", notif.ID, err)
			continue
		}
		if err := s.notifRepo.MarkSent(ctx, notif.ID); err != nil {
			log.Printf("failed to mark notification %s sent: %v", notif.ID, err)
		}
	}
	return nil
}

// Upcoming returns the user's next notifications: future phase dates only,
// unsent, soonest first, at most ten, with the message text joined in.
func (s *notificationService) Upcoming(ctx context.Context, userID uuid.UUID) ([]UpcomingNotification, error) {
	all, err := s.notifRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	upcoming := make([]UpcomingNotification, 0, upcomingLimit)
	for _, n := range all {
		if n.Sent || !n.PhaseDate.After(now) {
			continue
		}
		upcoming = append(upcoming, UpcomingNotification{
			ID:               n.ID,
			PhaseType:        n.PhaseType,
			PhaseDate:        n.PhaseDate,
			NotificationDate: n.NotificationDate,
			Message:          domain.MessageForPhase(n.PhaseType),
		})
		if len(upcoming) == upcomingLimit {
			break
		}
	}
	return upcoming, nil
}

func (s *notificationService) lockFor(userID uuid.UUID) *sync.Mutex {
	lock, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func dedupKey(phase domain.Phase, day string) string {
	return string(phase) + "|" + day
}
