package itinerary

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Domain errors.
var (
	// ErrUpstreamGeneration indicates the text-generation provider was
	// unreachable or returned a non-success result.
	ErrUpstreamGeneration = errors.New("itinerary generation provider failed")

	// ErrMalformedOutput indicates the provider returned output that does
	// not conform to the itinerary schema (tweak flow only).
	ErrMalformedOutput = errors.New("provider output does not match itinerary schema")
)

// DurationUnit is the unit of a trip duration.
type DurationUnit string

const (
	UnitHours DurationUnit = "hours"
	UnitDays  DurationUnit = "days"
)

// RainTolerance governs how aggressively rainy-day forecasts suppress
// outdoor activity placement.
type RainTolerance string

const (
	// ToleranceStrict avoids outdoor activities on rainy days entirely.
	ToleranceStrict RainTolerance = "strict"

	// ToleranceFlexible allows at most one outdoor activity per rainy day.
	ToleranceFlexible RainTolerance = "flexible"

	// ToleranceIgnore disables weather-aware reordering.
	ToleranceIgnore RainTolerance = "ignore"
)

// TravelerType selects the persona used when constructing prompts.
type TravelerType string

const (
	TravelerSolo     TravelerType = "solo"
	TravelerCouple   TravelerType = "couple"
	TravelerFamily   TravelerType = "family"
	TravelerFriends  TravelerType = "friends"
	TravelerBusiness TravelerType = "business"
)

// TimeOfDay tags an activity with its intended slot within a day.
type TimeOfDay string

const (
	TimeMorning      TimeOfDay = "morning"
	TimeAfternoon    TimeOfDay = "afternoon"
	TimeEvening      TimeOfDay = "evening"
	TimeIndoorBackup TimeOfDay = "indoor-backup"
)

// Weather is the display tag derived for a day slot after reassignment.
type Weather string

const (
	WeatherRainy Weather = "rainy"
	WeatherClear Weather = "clear"
)

// Duration is the requested trip length.
type Duration struct {
	Unit  DurationUnit `json:"unit"`
	Value float64      `json:"value"`
}

// DayCount returns the number of calendar days the duration spans.
// Hour-based trips round up to a single day.
func (d Duration) DayCount() int {
	if d.Unit == UnitHours {
		return 1
	}
	return int(math.Ceil(d.Value))
}

// TripRequest is the caller's trip description.
type TripRequest struct {
	Location       string        `json:"location"`
	NumberOfPeople int           `json:"numberOfPeople"`
	Duration       Duration      `json:"duration"`
	Preferences    []string      `json:"preferences"`
	RainTolerance  RainTolerance `json:"rainTolerance,omitempty"`
	TravelerType   TravelerType  `json:"travelerType,omitempty"`
}

// Normalize fills enum defaults on a decoded request.
func (r *TripRequest) Normalize() {
	if r.RainTolerance == "" {
		r.RainTolerance = ToleranceStrict
	}
	if r.TravelerType == "" {
		r.TravelerType = TravelerSolo
	}
}

// Validate checks the request before any external call is made.
// Returns a *ValidationError listing every failed field, or nil.
func (r *TripRequest) Validate() error {
	var fields []FieldError

	if strings.TrimSpace(r.Location) == "" {
		fields = append(fields, FieldError{Field: "location", Message: "location is required"})
	}
	if r.NumberOfPeople <= 0 {
		fields = append(fields, FieldError{Field: "numberOfPeople", Message: "numberOfPeople must be positive"})
	}
	switch r.Duration.Unit {
	case UnitHours, UnitDays:
	default:
		fields = append(fields, FieldError{Field: "duration.unit", Message: `duration.unit must be "hours" or "days"`})
	}
	if r.Duration.Value <= 0 {
		fields = append(fields, FieldError{Field: "duration.value", Message: "duration.value must be positive"})
	}
	if len(r.Preferences) == 0 {
		fields = append(fields, FieldError{Field: "preferences", Message: "at least one preference is required"})
	}
	switch r.RainTolerance {
	case ToleranceStrict, ToleranceFlexible, ToleranceIgnore:
	default:
		fields = append(fields, FieldError{Field: "rainTolerance", Message: `rainTolerance must be "strict", "flexible" or "ignore"`})
	}
	switch r.TravelerType {
	case TravelerSolo, TravelerCouple, TravelerFamily, TravelerFriends, TravelerBusiness:
	default:
		fields = append(fields, FieldError{Field: "travelerType", Message: "unknown travelerType"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Activity is a single itinerary entry. The description is immutable once
// parsed; Outdoor is derived by the classifier afterwards.
type Activity struct {
	Description string    `json:"description"`
	TimeOfDay   TimeOfDay `json:"timeOfDay,omitempty"`
	Outdoor     bool      `json:"outdoor,omitempty"`
}

// Day is one day of an itinerary.
type Day struct {
	DayNumber  int        `json:"dayNumber"`
	Activities []Activity `json:"activities"`
	Weather    Weather    `json:"weather,omitempty"`
}

// Itinerary is the structured day-by-day plan returned to callers.
type Itinerary struct {
	Duration Duration `json:"duration"`
	Days     []Day    `json:"days"`
}

// ValidateSchema checks that an itinerary decoded from provider output
// conforms to the schema: at least one day, positive day numbers, and a
// non-empty description on every activity.
func (it *Itinerary) ValidateSchema() error {
	if len(it.Days) == 0 {
		return fmt.Errorf("%w: no days", ErrMalformedOutput)
	}
	for _, d := range it.Days {
		if d.DayNumber <= 0 {
			return fmt.Errorf("%w: day number %d", ErrMalformedOutput, d.DayNumber)
		}
		for _, a := range d.Activities {
			if strings.TrimSpace(a.Description) == "" {
				return fmt.Errorf("%w: empty activity description on day %d", ErrMalformedOutput, d.DayNumber)
			}
		}
	}
	return nil
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates invalid request fields.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid trip request: " + strings.Join(msgs, "; ")
}
