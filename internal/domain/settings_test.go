package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestDefaultPreferences(t *testing.T) {
	userID := uuid.New()
	prefs := DefaultPreferences(userID)

	assert.Equal(t, userID, prefs.UserID)
	assert.True(t, prefs.Notifications)
	assert.True(t, prefs.NewMoonAlerts)
	assert.True(t, prefs.FullMoonAlerts)
	assert.True(t, prefs.QuarterMoonAlerts)
	assert.True(t, prefs.DailyInsights)
	assert.True(t, prefs.WellnessTips)
	assert.Equal(t, "09:00", prefs.NotificationTime)
}

func TestMergePreferences(t *testing.T) {
	existing := DefaultPreferences(uuid.New())
	existing.FullMoonAlerts = false
	existing.NotificationTime = "07:30"

	t.Run("nil fields keep existing values", func(t *testing.T) {
		merged := MergePreferences(existing, UpdatePreferencesInput{})

		assert.Equal(t, existing, merged)
	})

	t.Run("explicit false wins", func(t *testing.T) {
		merged := MergePreferences(existing, UpdatePreferencesInput{
			NewMoonAlerts: boolPtr(false),
		})

		assert.False(t, merged.NewMoonAlerts)
		assert.True(t, merged.Notifications)
		assert.False(t, merged.FullMoonAlerts)
	})

	t.Run("explicit true re-enables", func(t *testing.T) {
		merged := MergePreferences(existing, UpdatePreferencesInput{
			FullMoonAlerts: boolPtr(true),
		})

		assert.True(t, merged.FullMoonAlerts)
	})

	t.Run("empty strings keep existing values", func(t *testing.T) {
		merged := MergePreferences(existing, UpdatePreferencesInput{})

		assert.Equal(t, "07:30", merged.NotificationTime)
	})

	t.Run("non-empty strings overwrite", func(t *testing.T) {
		merged := MergePreferences(existing, UpdatePreferencesInput{
			NotificationTime: "21:15",
			AlertEmail:       "luna@example.com",
		})

		assert.Equal(t, "21:15", merged.NotificationTime)
		assert.Equal(t, "luna@example.com", merged.AlertEmail)
	})
}

func TestParseNotificationTime(t *testing.T) {
	tests := []struct {
		value   string
		hour    int
		minute  int
		wantErr bool
	}{
		{"09:00", 9, 0, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"7:05", 7, 5, false},
		{"", 9, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"-1:30", 0, 0, true},
		{"noon", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			hour, minute, err := ParseNotificationTime(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestMessageForPhase(t *testing.T) {
	for _, phase := range KeyPhases {
		msg := MessageForPhase(phase)
		assert.NotEmpty(t, msg.Title, "phase %s", phase)
		assert.NotEmpty(t, msg.Body, "phase %s", phase)
	}

	assert.Equal(t, "🌑 New Moon Tonight", MessageForPhase(PhaseNewMoon).Title)
	assert.Equal(t, "🌕 Full Moon Tonight", MessageForPhase(PhaseFullMoon).Title)

	generic := MessageForPhase(PhaseWaxingGibbous)
	assert.Equal(t, "🌙 Moon Phase Update", generic.Title)
	assert.Contains(t, generic.Body, "Waxing Gibbous")
}

func TestPhaseDay(t *testing.T) {
	n := PhaseNotification{
		PhaseDate: time.Date(2026, time.September, 5, 23, 30, 0, 0, time.FixedZone("UTC+5", 5*3600)),
	}

	assert.Equal(t, "2026-09-05", n.PhaseDay())
}

func TestIsKeyPhase(t *testing.T) {
	for _, phase := range KeyPhases {
		assert.True(t, IsKeyPhase(phase), "phase %s", phase)
	}
	for _, phase := range []Phase{PhaseWaxingCrescent, PhaseWaxingGibbous, PhaseWaningGibbous, PhaseWaningCrescent} {
		assert.False(t, IsKeyPhase(phase), "phase %s", phase)
	}
}
