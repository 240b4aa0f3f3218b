package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"moonwise/internal/astro"
	"moonwise/internal/domain"
)

// CurrentReading is the full set of readings for a moment and location.
type CurrentReading struct {
	Phase    astro.PhaseReading
	Distance float64
	Times    astro.MoonTimes
	Zodiac   astro.ZodiacPlacement
	Position astro.EquatorialPosition
	Tides    astro.TidalEstimate
	Insight  string
	Wellness string
}

// DateReading is the reduced set served for an arbitrary date: no
// location-bound position, tides or insight text.
type DateReading struct {
	Phase    astro.PhaseReading
	Distance float64
	Times    astro.MoonTimes
	Zodiac   astro.ZodiacPlacement
}

// CalendarDay is one day of a monthly phase calendar.
type CalendarDay struct {
	Date         string       `json:"date"`
	Day          int          `json:"day"`
	Phase        domain.Phase `json:"phase"`
	Illumination float64      `json:"illumination"`
	Age          float64      `json:"age"`
}

type MoonService interface {
	Current(ctx context.Context, at time.Time, latitude, longitude float64) CurrentReading
	ForDate(ctx context.Context, at time.Time, latitude, longitude float64) DateReading
	Calendar(ctx context.Context, year, month int) ([]CalendarDay, error)
}

type moonService struct {
	redis *redis.Client
}

// NewMoonService assembles readings from the astro package. The redis client
// is optional; with nil the calendar is recomputed per request.
func NewMoonService(redisClient *redis.Client) MoonService {
	return &moonService{redis: redisClient}
}

func (s *moonService) Current(ctx context.Context, at time.Time, latitude, longitude float64) CurrentReading {
	phase := astro.CalculateMoonPhase(at)
	zodiac := astro.CalculateZodiacPosition(at)

	return CurrentReading{
		Phase:    phase,
		Distance: astro.CalculateMoonDistance(at),
		Times:    astro.CalculateMoonTimes(at, latitude, longitude),
		Zodiac:   zodiac,
		Position: astro.CalculateMoonPosition(at, latitude, longitude),
		Tides:    astro.CalculateTidalData(at, latitude, longitude),
		Insight:  astro.AstrologyInsight(phase.Phase, zodiac.Sign),
		Wellness: astro.WellnessTip(phase.Phase),
	}
}

func (s *moonService) ForDate(ctx context.Context, at time.Time, latitude, longitude float64) DateReading {
	return DateReading{
		Phase:    astro.CalculateMoonPhase(at),
		Distance: astro.CalculateMoonDistance(at),
		Times:    astro.CalculateMoonTimes(at, latitude, longitude),
		Zodiac:   astro.CalculateZodiacPosition(at),
	}
}

// Calendar computes one entry per day of the month at UTC midnight. The
// result is deterministic per (year, month), so it caches well.
func (s *moonService) Calendar(ctx context.Context, year, month int) ([]CalendarDay, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	cacheKey := fmt.Sprintf("moon:calendar:%d:%d", year, month)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var days []CalendarDay
			if json.Unmarshal([]byte(cached), &days) == nil {
				return days, nil
			}
		}
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]CalendarDay, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		reading := astro.CalculateMoonPhase(date)

		days = append(days, CalendarDay{
			Date:         date.Format("2006-01-02"),
			Day:          day,
			Phase:        reading.Phase,
			Illumination: reading.Illumination,
			Age:          reading.Age,
		})
	}

	if s.redis != nil {
		if payload, err := json.Marshal(days); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, 24*time.Hour).Err()
		}
	}
	return days, nil
}
