package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationPreferences is the per-user alert configuration. At most one
// record exists per user.
type NotificationPreferences struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	Notifications     bool      `json:"notifications" db:"notifications"`
	NewMoonAlerts     bool      `json:"newMoonAlerts" db:"new_moon_alerts"`
	FullMoonAlerts    bool      `json:"fullMoonAlerts" db:"full_moon_alerts"`
	QuarterMoonAlerts bool      `json:"quarterMoonAlerts" db:"quarter_moon_alerts"`
	NotificationTime  string    `json:"notificationTime" db:"notification_time"`
	AlertEmail        string    `json:"alertEmail,omitempty" db:"alert_email"`
	DailyInsights     bool      `json:"dailyInsights" db:"daily_insights"`
	WellnessTips      bool      `json:"wellnessTips" db:"wellness_tips"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// UpdatePreferencesInput carries a partial settings write. Boolean fields are
// tri-state: nil leaves the current value (true on first write), and only an
// explicit false turns an alert off. This asymmetric defaulting is inherited
// behavior the API depends on; do not tighten it to a plain bool.
type UpdatePreferencesInput struct {
	Notifications     *bool  `json:"notifications"`
	NewMoonAlerts     *bool  `json:"newMoonAlerts"`
	FullMoonAlerts    *bool  `json:"fullMoonAlerts"`
	QuarterMoonAlerts *bool  `json:"quarterMoonAlerts"`
	NotificationTime  string `json:"notificationTime"`
	AlertEmail        string `json:"alertEmail"`
	DailyInsights     *bool  `json:"dailyInsights"`
	WellnessTips      *bool  `json:"wellnessTips"`
}

// DefaultPreferences returns the settings applied before a user has written
// anything: everything on, alerts at 09:00.
func DefaultPreferences(userID uuid.UUID) NotificationPreferences {
	return NotificationPreferences{
		UserID:            userID,
		Notifications:     true,
		NewMoonAlerts:     true,
		FullMoonAlerts:    true,
		QuarterMoonAlerts: true,
		NotificationTime:  "09:00",
		DailyInsights:     true,
		WellnessTips:      true,
	}
}

// MergePreferences applies a partial update over existing settings.
func MergePreferences(existing NotificationPreferences, in UpdatePreferencesInput) NotificationPreferences {
	merged := existing
	merged.Notifications = mergeFlag(existing.Notifications, in.Notifications)
	merged.NewMoonAlerts = mergeFlag(existing.NewMoonAlerts, in.NewMoonAlerts)
	merged.FullMoonAlerts = mergeFlag(existing.FullMoonAlerts, in.FullMoonAlerts)
	merged.QuarterMoonAlerts = mergeFlag(existing.QuarterMoonAlerts, in.QuarterMoonAlerts)
	merged.DailyInsights = mergeFlag(existing.DailyInsights, in.DailyInsights)
	merged.WellnessTips = mergeFlag(existing.WellnessTips, in.WellnessTips)
	if in.NotificationTime != "" {
		merged.NotificationTime = in.NotificationTime
	}
	if in.AlertEmail != "" {
		merged.AlertEmail = in.AlertEmail
	}
	return merged
}

func mergeFlag(current bool, update *bool) bool {
	if update == nil {
		return current
	}
	return *update
}

// ParseNotificationTime parses an "HH:MM" clock time into hour and minute.
func ParseNotificationTime(value string) (hour, minute int, err error) {
	if value == "" {
		value = "09:00"
	}
	if _, err := fmt.Sscanf(value, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid notification time %q: %w", value, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid notification time %q", value)
	}
	return hour, minute, nil
}
