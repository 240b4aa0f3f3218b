// Package astro computes lunar readings from closed-form approximations.
// Everything here is a deliberate simplification (single-term sinusoids,
// piecewise linear illumination, mean motion along the ecliptic) rather than
// ephemeris theory; outputs are illustrative and the exact formulas are part
// of the API contract.
package astro

import (
	"fmt"
	"math"
	"time"

	"moonwise/internal/domain"
)

const (
	// LunarCycle is the mean synodic month in days.
	LunarCycle = 29.530588853

	// ZodiacDailyMotion is the Moon's mean daily motion along the
	// ecliptic in degrees.
	ZodiacDailyMotion = 13.176396

	// MeanDistanceKm is the mean Earth-Moon distance.
	MeanDistanceKm = 384400
)

// NewMoonReference is a known new-moon instant used as the phase-cycle epoch.
var NewMoonReference = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// J2000 anchors the distance, zodiac and position calculations. It
// intentionally differs from NewMoonReference: the cycles it anchors are not
// the phase cycle.
var J2000 = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PhaseReading is the phase of the moon at a single instant.
type PhaseReading struct {
	Phase        domain.Phase
	Illumination float64 // lit fraction of the disk, in [0,1]
	Age          float64 // days since the last new moon, in [0, LunarCycle)
}

// MoonTimes holds formatted rise and set clock times.
type MoonTimes struct {
	Moonrise string
	Moonset  string
}

// ZodiacPlacement is the Moon's position along the ecliptic expressed as a
// sign and a degree within that sign's 30 degree segment.
type ZodiacPlacement struct {
	Sign           string
	Degree         float64 // in [0,30)
	NextTransition string  // date the Moon enters the next sign
}

// EquatorialPosition is a crude equatorial fix plus local horizontal
// coordinates for a given observer.
type EquatorialPosition struct {
	RightAscension string
	Declination    string
	Altitude       float64 // degrees, clamped to >= 0
	Azimuth        float64 // degrees, in [0,360)
}

// TidalEstimate is an illustrative tide prediction driven by the moon's age
// and illumination, not by oceanographic data.
type TidalEstimate struct {
	HighTide   string
	LowTide    string
	TidalRange float64 // meters
}

// CalculateMoonPhase returns the phase, illumination and age for a moment.
// Illumination is a piecewise linear ramp over the cycle with eight segments.
// The segment offsets are part of the API contract, including the jumps at
// some boundaries; do not smooth them.
func CalculateMoonPhase(t time.Time) PhaseReading {
	daysSinceNew := daysSince(t, NewMoonReference)
	age := normMod(daysSinceNew, LunarCycle)
	cyclePosition := age / LunarCycle

	var phase domain.Phase
	var illumination float64

	switch {
	case cyclePosition < 0.0625:
		phase = domain.PhaseNewMoon
		illumination = cyclePosition * 8
	case cyclePosition < 0.1875:
		phase = domain.PhaseWaxingCrescent
		illumination = (cyclePosition-0.0625)*8 + 0.5
	case cyclePosition < 0.3125:
		phase = domain.PhaseFirstQuarter
		illumination = (cyclePosition-0.1875)*4 + 0.4
	case cyclePosition < 0.4375:
		phase = domain.PhaseWaxingGibbous
		illumination = (cyclePosition-0.3125)*4 + 0.6
	case cyclePosition < 0.5625:
		phase = domain.PhaseFullMoon
		illumination = 1 - (cyclePosition-0.4375)*4
	case cyclePosition < 0.6875:
		phase = domain.PhaseWaningGibbous
		illumination = 0.8 - (cyclePosition-0.5625)*4
	case cyclePosition < 0.8125:
		phase = domain.PhaseLastQuarter
		illumination = 0.6 - (cyclePosition-0.6875)*4
	default:
		phase = domain.PhaseWaningCrescent
		illumination = 0.4 - (cyclePosition-0.8125)*8
	}

	return PhaseReading{
		Phase:        phase,
		Illumination: clamp(illumination, 0, 1),
		Age:          age,
	}
}

// CalculateMoonDistance returns the Earth-Moon distance in kilometers from a
// single-term sinusoidal approximation of the anomalistic cycle.
func CalculateMoonDistance(t time.Time) float64 {
	meanAnomaly := daysSince(t, J2000) * 0.98560028 * math.Pi / 180
	return MeanDistanceKm + 21500*math.Sin(meanAnomaly)
}

// CalculateMoonTimes approximates moonrise and moonset from the observer's
// longitude and the moon's age. Latitude is accepted but unused by this
// approximation; it is kept for symmetry with CalculateMoonPosition.
func CalculateMoonTimes(t time.Time, _, longitude float64) MoonTimes {
	age := CalculateMoonPhase(t).Age

	timeOffset := longitude / 15
	phaseOffset := (age / LunarCycle) * 24

	riseHour := normMod(18+timeOffset+phaseOffset, 24)
	setHour := normMod(6+timeOffset+phaseOffset, 24)

	return MoonTimes{
		Moonrise: formatClock(riseHour),
		Moonset:  formatClock(setHour),
	}
}

// CalculateZodiacPosition places the Moon in the zodiac using its mean daily
// motion along the ecliptic.
func CalculateZodiacPosition(t time.Time) ZodiacPlacement {
	lunarPosition := normMod(daysSince(t, J2000)*ZodiacDailyMotion, 360)

	signIndex := int(lunarPosition / 30)
	degree := math.Mod(lunarPosition, 30)

	daysToNextSign := (30 - degree) / ZodiacDailyMotion
	nextTransition := t.Add(time.Duration(daysToNextSign * 24 * float64(time.Hour)))

	return ZodiacPlacement{
		Sign:           domain.ZodiacSigns[signIndex],
		Degree:         degree,
		NextTransition: nextTransition.Format("Jan 2, 2006"),
	}
}

// CalculateMoonPosition returns a crude equatorial position and the
// observer's horizontal coordinates. The ecliptic-to-equatorial step is a
// sine projection, not a true coordinate transform. Readings below the
// horizon are reported as altitude 0 rather than negative.
func CalculateMoonPosition(t time.Time, latitude, longitude float64) EquatorialPosition {
	days := daysSince(t, J2000)
	meanLongitude := math.Mod(218.3164477+481267.88123421*(days/36525), 360)

	ra := meanLongitude / 15 // hours
	dec := math.Sin(meanLongitude*math.Pi/180) * 23.45

	localHour := float64(t.Hour()) + float64(t.Minute())/60
	hourAngle := localHour - ra

	latRad := latitude * math.Pi / 180
	decRad := dec * math.Pi / 180
	haRad := hourAngle * 15 * math.Pi / 180

	alt := math.Asin(
		math.Sin(decRad)*math.Sin(latRad)+
			math.Cos(decRad)*math.Cos(latRad)*math.Cos(haRad),
	) * 180 / math.Pi

	azimuth := math.Atan2(
		math.Sin(haRad),
		math.Cos(haRad)*math.Sin(latRad)-math.Tan(decRad)*math.Cos(latRad),
	) * 180 / math.Pi

	return EquatorialPosition{
		RightAscension: formatRA(ra),
		Declination:    formatDec(dec),
		Altitude:       math.Max(0, alt),
		Azimuth:        normMod(azimuth, 360),
	}
}

// CalculateTidalData derives an illustrative tide estimate from the moon's
// age and illumination. The range grows toward the illumination extremes
// around new and full moon.
func CalculateTidalData(t time.Time, _, _ float64) TidalEstimate {
	reading := CalculateMoonPhase(t)

	baseHigh := 12 + (reading.Age/LunarCycle)*12
	baseLow := baseHigh + 6

	return TidalEstimate{
		HighTide:   formatClock(normMod(baseHigh, 24)),
		LowTide:    formatClock(normMod(baseLow, 24)),
		TidalRange: 2.3 + (1-reading.Illumination)*0.5,
	}
}

// AngularDiameter returns the moon's apparent diameter in degrees for a
// given distance.
func AngularDiameter(distanceKm float64) float64 {
	return MeanDistanceKm / distanceKm * 0.5181
}

func daysSince(t, epoch time.Time) float64 {
	return t.Sub(epoch).Hours() / 24
}

// normMod reduces x into [0, n). Unlike math.Mod it never returns a negative
// value, so dates before an epoch still map onto the cycle.
func normMod(x, n float64) float64 {
	m := math.Mod(x, n)
	if m < 0 {
		m += n
	}
	return m
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// formatClock renders fractional hours as h:mm AM/PM, flooring both parts.
// Hour 0 renders as 12 AM and hour 13 as 1 PM.
func formatClock(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Floor((hours - float64(h)) * 60))

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	displayHour := h
	switch {
	case h == 0:
		displayHour = 12
	case h > 12:
		displayHour = h - 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, m, period)
}

func formatRA(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Floor((hours - float64(h)) * 60))
	return fmt.Sprintf("%dh %dm", h, m)
}

func formatDec(degrees float64) string {
	sign := "+"
	if degrees < 0 {
		sign = "-"
	}
	abs := math.Abs(degrees)
	deg := int(math.Floor(abs))
	min := int(math.Floor((abs - float64(deg)) * 60))
	return fmt.Sprintf("%s%d° %d'", sign, deg, min)
}
