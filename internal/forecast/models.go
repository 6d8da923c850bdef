package forecast

import (
	"errors"
	"strings"
	"time"
)

// Forecast errors.
var (
	ErrProviderUnavailable = errors.New("forecast provider unavailable")
	ErrNoDataForLocation   = errors.New("no forecast data for location")
)

// Condition represents the general weather condition of a sample.
type Condition string

const (
	ConditionClear        Condition = "CLEAR"
	ConditionClouds       Condition = "CLOUDS"
	ConditionRain         Condition = "RAIN"
	ConditionDrizzle      Condition = "DRIZZLE"
	ConditionThunderstorm Condition = "THUNDERSTORM"
	ConditionSnow         Condition = "SNOW"
	ConditionMist         Condition = "MIST"
	ConditionFog          Condition = "FOG"
	ConditionHaze         Condition = "HAZE"
	ConditionUnknown      Condition = "UNKNOWN"
)

// RainBearing reports whether the condition name carries rain. Drizzle and
// thunderstorms intentionally do not count; only outright rain suppresses
// outdoor placement.
func (c Condition) RainBearing() bool {
	return strings.Contains(strings.ToLower(string(c)), "rain")
}

// Sample is one periodic forecast entry for a location.
type Sample struct {
	Time        time.Time
	Condition   Condition
	Description string
	Temperature float64
	Humidity    float64
	PrecipProb  float64
}

// Forecast is a multi-day periodic forecast for a named location.
type Forecast struct {
	Location  string
	Samples   []Sample
	FetchedAt time.Time
}
