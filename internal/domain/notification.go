package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PhaseNotification is a scheduled reminder that a key moon phase occurs on
// PhaseDate. It is created unsent and marked sent exactly once; there is no
// cancellation path.
type PhaseNotification struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           uuid.UUID `json:"userId" db:"user_id"`
	PhaseType        Phase     `json:"phaseType" db:"phase_type"`
	PhaseDate        time.Time `json:"phaseDate" db:"phase_date"`
	NotificationDate time.Time `json:"notificationDate" db:"notification_date"`
	Sent             bool      `json:"sent" db:"sent"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// PhaseDay returns the calendar day (UTC) the phase falls on. Two
// notifications for the same user, phase and PhaseDay are duplicates.
func (n *PhaseNotification) PhaseDay() string {
	return n.PhaseDate.UTC().Format("2006-01-02")
}

type NotificationMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var phaseMessages = map[Phase]NotificationMessage{
	PhaseNewMoon: {
		Title: "🌑 New Moon Tonight",
		Body:  "Perfect time for new beginnings and setting intentions. The moon's energy supports fresh starts and manifestation.",
	},
	PhaseFullMoon: {
		Title: "🌕 Full Moon Tonight",
		Body:  "Peak lunar energy! Time for culmination, celebration, and releasing what no longer serves you.",
	},
	PhaseFirstQuarter: {
		Title: "🌓 First Quarter Moon",
		Body:  "Decision time! The moon's building energy supports taking action on your goals and pushing through challenges.",
	},
	PhaseLastQuarter: {
		Title: "🌗 Last Quarter Moon",
		Body:  "Time for reflection and release. Let go of what isn't working and prepare for the new cycle ahead.",
	},
}

// MessageForPhase returns the notification copy for a key phase. Unknown
// phases get a generic message rather than an error.
func MessageForPhase(phase Phase) NotificationMessage {
	if msg, ok := phaseMessages[phase]; ok {
		return msg
	}
	return NotificationMessage{
		Title: "🌙 Moon Phase Update",
		Body:  fmt.Sprintf("The moon is in %s phase today.", phase),
	}
}
