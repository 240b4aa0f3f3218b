package service

import (
	"github.com/redis/go-redis/v9"

	"moonwise/internal/config"
	"moonwise/internal/repository"
)

type Services struct {
	Moon         MoonService
	Settings     SettingsService
	Notification NotificationService
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, cfg *config.Config) *Services {
	var notifier PhaseNotifier
	if cfg.ResendAPIKey != "" {
		notifier = NewEmailNotifier(cfg)
	} else {
		notifier = NewLogNotifier()
	}

	notificationService := NewNotificationService(repos.Notification, repos.Settings, notifier)
	settingsService := NewSettingsService(repos.Settings, notificationService)
	moonService := NewMoonService(redisClient)

	return &Services{
		Moon:         moonService,
		Settings:     settingsService,
		Notification: notificationService,
	}
}
