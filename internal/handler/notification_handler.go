package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"moonwise/internal/config"
	"moonwise/internal/domain"
	"moonwise/internal/middleware"
	"moonwise/internal/service"
)

type NotificationHandler struct {
	notifService    service.NotificationService
	settingsService service.SettingsService
	defaultUserID   uuid.UUID
}

func NewNotificationHandler(notifService service.NotificationService, settingsService service.SettingsService, cfg *config.Config) *NotificationHandler {
	defaultUserID, err := uuid.Parse(cfg.DefaultUserID)
	if err != nil {
		defaultUserID = uuid.Nil
	}
	return &NotificationHandler{
		notifService:    notifService,
		settingsService: settingsService,
		defaultUserID:   defaultUserID,
	}
}

func (h *NotificationHandler) GetSettings(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	prefs, err := h.settingsService.Get(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(prefs)
}

// UpdateSettings merges a partial write and reschedules notifications when
// the master switch ends up on.
func (h *NotificationHandler) UpdateSettings(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	var input domain.UpdatePreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.NotificationTime != "" {
		if _, _, err := domain.ParseNotificationTime(input.NotificationTime); err != nil {
			return middleware.BadRequest("notificationTime must be HH:MM")
		}
	}

	prefs, err := h.settingsService.Update(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"settings": prefs,
		"message":  "Notification settings updated successfully",
	})
}

func (h *NotificationHandler) Upcoming(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	upcoming, err := h.notifService.Upcoming(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(upcoming)
}

// Schedule manually re-runs the 90-day scheduling scan.
func (h *NotificationHandler) Schedule(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	if err := h.notifService.ScheduleUpcoming(c.Context(), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notifications scheduled successfully",
	})
}

// userID resolves the acting user from the X-User-ID header, falling back
// to the configured default. The header stands in for an authentication
// layer that is out of scope.
func (h *NotificationHandler) userID(c *fiber.Ctx) (uuid.UUID, error) {
	header := c.Get("X-User-ID")
	if header == "" {
		return h.defaultUserID, nil
	}
	userID, err := uuid.Parse(header)
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid X-User-ID header")
	}
	return userID, nil
}
