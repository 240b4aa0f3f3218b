package handler

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"moonwise/internal/astro"
	"moonwise/internal/config"
	"moonwise/internal/domain"
	"moonwise/internal/middleware"
	"moonwise/internal/service"
)

type MoonHandler struct {
	moonService service.MoonService
	defaultLat  float64
	defaultLng  float64
}

func NewMoonHandler(moonService service.MoonService, cfg *config.Config) *MoonHandler {
	return &MoonHandler{
		moonService: moonService,
		defaultLat:  cfg.DefaultLatitude,
		defaultLng:  cfg.DefaultLongitude,
	}
}

type zodiacResponse struct {
	Sign           string  `json:"sign"`
	Degree         float64 `json:"degree"`
	NextTransition string  `json:"nextTransition"`
}

type positionResponse struct {
	RightAscension string  `json:"rightAscension"`
	Declination    string  `json:"declination"`
	Altitude       float64 `json:"altitude"`
	Azimuth        float64 `json:"azimuth"`
}

type tidesResponse struct {
	HighTide   string  `json:"highTide"`
	LowTide    string  `json:"lowTide"`
	TidalRange float64 `json:"tidalRange"`
}

type currentMoonResponse struct {
	Phase           domain.Phase     `json:"phase"`
	Illumination    int              `json:"illumination"`
	Age             float64          `json:"age"`
	Distance        int              `json:"distance"`
	AngularDiameter float64          `json:"angularDiameter"`
	Moonrise        string           `json:"moonrise"`
	Moonset         string           `json:"moonset"`
	Zodiac          zodiacResponse   `json:"zodiac"`
	Position        positionResponse `json:"position"`
	Tides           tidesResponse    `json:"tides"`
	AstrologyInsight string          `json:"astrologyInsight"`
	WellnessTip      string          `json:"wellnessTip"`
}

type dateMoonResponse struct {
	Date         string         `json:"date"`
	Phase        domain.Phase   `json:"phase"`
	Illumination int            `json:"illumination"`
	Age          float64        `json:"age"`
	Distance     int            `json:"distance"`
	Moonrise     string         `json:"moonrise"`
	Moonset      string         `json:"moonset"`
	Zodiac       zodiacResponse `json:"zodiac"`
}

type calendarDayResponse struct {
	Date         string       `json:"date"`
	Day          int          `json:"day"`
	Phase        domain.Phase `json:"phase"`
	Illumination int          `json:"illumination"`
	Age          float64      `json:"age"`
}

type calendarResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []calendarDayResponse `json:"days"`
}

// Current serves the full reading for "now" at the given (or default)
// coordinates.
func (h *MoonHandler) Current(c *fiber.Ctx) error {
	latitude, longitude, err := h.coordinates(c)
	if err != nil {
		return err
	}

	reading := h.moonService.Current(c.Context(), time.Now().UTC(), latitude, longitude)

	return c.JSON(currentMoonResponse{
		Phase:           reading.Phase.Phase,
		Illumination:    percent(reading.Phase.Illumination),
		Age:             round1(reading.Phase.Age),
		Distance:        int(math.Round(reading.Distance)),
		AngularDiameter: round2(astro.AngularDiameter(reading.Distance)),
		Moonrise:        reading.Times.Moonrise,
		Moonset:         reading.Times.Moonset,
		Zodiac: zodiacResponse{
			Sign:           reading.Zodiac.Sign,
			Degree:         round1(reading.Zodiac.Degree),
			NextTransition: reading.Zodiac.NextTransition,
		},
		Position: positionResponse{
			RightAscension: reading.Position.RightAscension,
			Declination:    reading.Position.Declination,
			Altitude:       reading.Position.Altitude,
			Azimuth:        reading.Position.Azimuth,
		},
		Tides: tidesResponse{
			HighTide:   reading.Tides.HighTide,
			LowTide:    reading.Tides.LowTide,
			TidalRange: reading.Tides.TidalRange,
		},
		AstrologyInsight: reading.Insight,
		WellnessTip:      reading.Wellness,
	})
}

// ByDate serves the reduced reading for an arbitrary date.
func (h *MoonHandler) ByDate(c *fiber.Ctx) error {
	target, err := parseDate(c.Params("date"))
	if err != nil {
		return middleware.BadRequest("Invalid date format")
	}

	latitude, longitude, err := h.coordinates(c)
	if err != nil {
		return err
	}

	reading := h.moonService.ForDate(c.Context(), target, latitude, longitude)

	return c.JSON(dateMoonResponse{
		Date:         target.Format(time.RFC3339),
		Phase:        reading.Phase.Phase,
		Illumination: percent(reading.Phase.Illumination),
		Age:          round1(reading.Phase.Age),
		Distance:     int(math.Round(reading.Distance)),
		Moonrise:     reading.Times.Moonrise,
		Moonset:      reading.Times.Moonset,
		Zodiac: zodiacResponse{
			Sign:           reading.Zodiac.Sign,
			Degree:         round1(reading.Zodiac.Degree),
			NextTransition: reading.Zodiac.NextTransition,
		},
	})
}

// Calendar serves one phase entry per day of a month.
func (h *MoonHandler) Calendar(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return middleware.BadRequest("Invalid year or month")
	}
	month, err := c.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return middleware.BadRequest("Invalid year or month")
	}

	days, err := h.moonService.Calendar(c.Context(), year, month)
	if err != nil {
		return middleware.BadRequest("Invalid year or month")
	}

	response := calendarResponse{
		Year:  year,
		Month: month,
		Days:  make([]calendarDayResponse, 0, len(days)),
	}
	for _, d := range days {
		response.Days = append(response.Days, calendarDayResponse{
			Date:         d.Date,
			Day:          d.Day,
			Phase:        d.Phase,
			Illumination: percent(d.Illumination),
			Age:          round1(d.Age),
		})
	}
	return c.JSON(response)
}

type validateLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ValidateLocation checks client coordinates against physical ranges.
func (h *MoonHandler) ValidateLocation(c *fiber.Ctx) error {
	var req validateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return middleware.BadRequest("latitude and longitude are required")
	}

	location := domain.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := location.Validate(); err != nil {
		return middleware.BadRequest("Invalid location coordinates: " + err.Error())
	}

	return c.JSON(fiber.Map{
		"valid":     true,
		"latitude":  location.Latitude,
		"longitude": location.Longitude,
	})
}

func (h *MoonHandler) coordinates(c *fiber.Ctx) (float64, float64, error) {
	latitude := h.defaultLat
	longitude := h.defaultLng

	if lat := c.Query("lat"); lat != "" {
		parsed, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return 0, 0, middleware.BadRequest("Invalid lat parameter")
		}
		latitude = parsed
	}
	if lng := c.Query("lng"); lng != "" {
		parsed, err := strconv.ParseFloat(lng, 64)
		if err != nil {
			return 0, 0, middleware.BadRequest("Invalid lng parameter")
		}
		longitude = parsed
	}
	return latitude, longitude, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Rounding here is part of the wire contract: illumination as integer
// percent, age and zodiac degree to one decimal, distance to whole
// kilometers, angular diameter to two decimals.
func percent(illumination float64) int {
	return int(math.Round(illumination * 100))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
