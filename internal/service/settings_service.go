package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"moonwise/internal/domain"
	"moonwise/internal/repository"
)

type SettingsService interface {
	// Get returns the user's settings, or the defaults when the user has
	// never written any. Absence is not an error.
	Get(ctx context.Context, userID uuid.UUID) (domain.NotificationPreferences, error)
	// Update merges a partial write over the existing record (or the
	// defaults on first write) and reschedules notifications when the
	// master switch ends up on.
	Update(ctx context.Context, userID uuid.UUID, input domain.UpdatePreferencesInput) (domain.NotificationPreferences, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	notifService NotificationService
}

func NewSettingsService(settingsRepo repository.SettingsRepository, notifService NotificationService) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		notifService: notifService,
	}
}

func (s *settingsService) Get(ctx context.Context, userID uuid.UUID) (domain.NotificationPreferences, error) {
	prefs, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultPreferences(userID), nil
		}
		return domain.NotificationPreferences{}, err
	}
	return *prefs, nil
}

// Update is a blind upsert: the repository's strict Update is only reached
// when a record already exists, so callers never see ErrNotFound here.
func (s *settingsService) Update(ctx context.Context, userID uuid.UUID, input domain.UpdatePreferencesInput) (domain.NotificationPreferences, error) {
	existing, err := s.settingsRepo.GetByUser(ctx, userID)

	var merged domain.NotificationPreferences
	switch {
	case err == nil:
		merged = domain.MergePreferences(*existing, input)
		if err := s.settingsRepo.Update(ctx, &merged); err != nil {
			return domain.NotificationPreferences{}, fmt.Errorf("update settings: %w", err)
		}
	case errors.Is(err, repository.ErrNotFound):
		merged = domain.MergePreferences(domain.DefaultPreferences(userID), input)
		if err := s.settingsRepo.Create(ctx, &merged); err != nil {
			return domain.NotificationPreferences{}, fmt.Errorf("create settings: %w", err)
		}
	default:
		return domain.NotificationPreferences{}, err
	}

	if merged.Notifications {
		if err := s.notifService.ScheduleUpcoming(ctx, userID); err != nil {
			return domain.NotificationPreferences{}, fmt.Errorf("schedule notifications: %w", err)
		}
	}
	return merged, nil
}
