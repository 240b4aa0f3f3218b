package handler

import (
	"moonwise/internal/config"
	"moonwise/internal/service"
)

type Handlers struct {
	Moon         *MoonHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Moon:         NewMoonHandler(services.Moon, cfg),
		Notification: NewNotificationHandler(services.Notification, services.Settings, cfg),
	}
}
