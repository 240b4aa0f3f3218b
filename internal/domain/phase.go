package domain

// Phase is one of the eight named segments of the lunar cycle, ordered
// cyclically over one synodic month.
type Phase string

const (
	PhaseNewMoon        Phase = "New Moon"
	PhaseWaxingCrescent Phase = "Waxing Crescent"
	PhaseFirstQuarter   Phase = "First Quarter"
	PhaseWaxingGibbous  Phase = "Waxing Gibbous"
	PhaseFullMoon       Phase = "Full Moon"
	PhaseWaningGibbous  Phase = "Waning Gibbous"
	PhaseLastQuarter    Phase = "Last Quarter"
	PhaseWaningCrescent Phase = "Waning Crescent"
)

// Phases lists all phases in cycle order starting from the new moon.
var Phases = []Phase{
	PhaseNewMoon,
	PhaseWaxingCrescent,
	PhaseFirstQuarter,
	PhaseWaxingGibbous,
	PhaseFullMoon,
	PhaseWaningGibbous,
	PhaseLastQuarter,
	PhaseWaningCrescent,
}

// KeyPhases are the four phases worth notifying users about.
var KeyPhases = []Phase{
	PhaseNewMoon,
	PhaseFirstQuarter,
	PhaseFullMoon,
	PhaseLastQuarter,
}

// IsKeyPhase reports whether p is one of the four notification-worthy phases.
func IsKeyPhase(p Phase) bool {
	switch p {
	case PhaseNewMoon, PhaseFirstQuarter, PhaseFullMoon, PhaseLastQuarter:
		return true
	}
	return false
}

// ZodiacSigns lists the twelve signs in ecliptic order starting at Aries,
// each covering a 30 degree segment of the 360 degree cycle.
var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}
