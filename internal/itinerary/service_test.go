package itinerary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/tripweaver/internal/generation"
	"github.com/tripweaver/tripweaver/internal/itinerary"
)

// mockGenerator returns canned completions and records requests.
type mockGenerator struct {
	response string
	err      error
	requests []generation.Request
}

func (m *mockGenerator) Complete(_ context.Context, req generation.Request) (string, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockGenerator) Name() string { return "mock" }

// mockForecast returns canned rainy day numbers.
type mockForecast struct {
	dayNumbers []int
	dates      []string
}

func (m *mockForecast) RainyDayNumbers(_ context.Context, _ string, _ int) ([]int, []string) {
	return m.dayNumbers, m.dates
}

func validRequest() itinerary.TripRequest {
	return itinerary.TripRequest{
		Location:       "Udaipur",
		NumberOfPeople: 2,
		Duration:       itinerary.Duration{Unit: itinerary.UnitDays, Value: 3},
		Preferences:    []string{"culture", "food"},
	}
}

func newTestService(gen *mockGenerator, fc *mockForecast) *itinerary.Service {
	return itinerary.NewService(itinerary.ServiceConfig{
		Generator: gen,
		Forecast:  fc,
		Logger:    zerolog.Nop(),
	})
}

func TestService_Generate_FullPipeline(t *testing.T) {
	gen := &mockGenerator{response: `Day 1
1. Hike up to the monsoon palace viewpoint. (morning)
2. Sunset boat ride on Lake Pichola. (evening)

Day 2
1. Visit the city palace museum galleries. (morning)
2. Miniature painting workshop downtown. (afternoon)

Day 3
1. Walk through the old town bazaars. (morning)
2. Dinner at a rooftop restaurant. (evening)
`}
	fc := &mockForecast{dayNumbers: []int{1}, dates: []string{"2026-09-02"}}

	svc := newTestService(gen, fc)
	result, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, result.Itinerary.Days, 3)
	assert.Equal(t, []string{"2026-09-02"}, result.RainyDates)

	// the indoor day moved onto the rainy first slot
	first := result.Itinerary.Days[0]
	assert.Equal(t, 1, first.DayNumber)
	assert.Equal(t, itinerary.WeatherRainy, first.Weather)
	assert.Equal(t, "Visit the city palace museum galleries.", first.Activities[0].Description)
	assert.False(t, first.Activities[0].Outdoor)

	// outdoor flags are derived
	var outdoorSeen bool
	for _, d := range result.Itinerary.Days {
		for _, a := range d.Activities {
			if a.Outdoor {
				outdoorSeen = true
			}
		}
	}
	assert.True(t, outdoorSeen)

	// suggestions come from the raw descriptions
	assert.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions, "Sunset boat ride on Lake Pichola.")

	// prompt carries the rainy dates so the generator can plan around them
	require.Len(t, gen.requests, 1)
	assert.Contains(t, gen.requests[0].Prompt, "2026-09-02")
	assert.InDelta(t, 0.7, gen.requests[0].Temperature, 0.001)
}

func TestService_Generate_InvalidRequest(t *testing.T) {
	svc := newTestService(&mockGenerator{}, &mockForecast{})

	_, err := svc.Generate(context.Background(), itinerary.TripRequest{})

	var verr *itinerary.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields)
}

func TestService_Generate_ProviderError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("boom")}
	svc := newTestService(gen, &mockForecast{})

	_, err := svc.Generate(context.Background(), validRequest())
	assert.ErrorIs(t, err, itinerary.ErrUpstreamGeneration)
}

func TestService_Generate_UnparseableOutput(t *testing.T) {
	gen := &mockGenerator{response: "I am sorry, I cannot plan this trip."}
	svc := newTestService(gen, &mockForecast{})

	_, err := svc.Generate(context.Background(), validRequest())
	assert.ErrorIs(t, err, itinerary.ErrUpstreamGeneration)
}

func TestService_Generate_NoRainyDays(t *testing.T) {
	gen := &mockGenerator{response: "Day 1\n1. Walk the old town walls. (morning)"}
	svc := newTestService(gen, &mockForecast{})

	result, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, result.RainyDates)
	assert.Equal(t, itinerary.WeatherClear, result.Itinerary.Days[0].Weather)
}

func TestService_Suggest(t *testing.T) {
	gen := &mockGenerator{response: `- Visit the vintage car museum collection
* Take a sunset cable car ride up the hill

Try the local kachori breakfast stalls`}
	svc := newTestService(gen, &mockForecast{})

	suggestions, err := svc.Suggest(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Visit the vintage car museum collection",
		"Take a sunset cable car ride up the hill",
		"Try the local kachori breakfast stalls",
	}, suggestions)
}

func TestService_Tweak_RevisesItinerary(t *testing.T) {
	gen := &mockGenerator{response: "```json\n" + `{
  "duration": {"unit": "days", "value": 1},
  "days": [
    {"dayNumber": 1, "activities": [
      {"description": "Kayak across the lake at dawn", "timeOfDay": "morning"},
      {"description": "Visit the crystal gallery", "timeOfDay": "afternoon"}
    ]}
  ]
}` + "\n```"}
	svc := newTestService(gen, &mockForecast{})

	current := itinerary.Itinerary{
		Duration: itinerary.Duration{Unit: itinerary.UnitDays, Value: 1},
		Days: []itinerary.Day{
			{DayNumber: 1, Activities: []itinerary.Activity{{Description: "Visit the palace"}}},
		},
	}

	revised, err := svc.Tweak(context.Background(), itinerary.TweakRequest{
		Request:     validRequest(),
		Itinerary:   current,
		Instruction: "add a water activity in the morning",
	})
	require.NoError(t, err)

	require.Len(t, revised.Days, 1)
	assert.Equal(t, "Kayak across the lake at dawn", revised.Days[0].Activities[0].Description)
	assert.True(t, revised.Days[0].Activities[0].Outdoor)
	assert.False(t, revised.Days[0].Activities[1].Outdoor)

	require.Len(t, gen.requests, 1)
	assert.InDelta(t, 0.4, gen.requests[0].Temperature, 0.001)
	assert.Contains(t, gen.requests[0].Prompt, "add a water activity in the morning")
}

func TestService_Tweak_MalformedOutput(t *testing.T) {
	gen := &mockGenerator{response: "Sure! Here's a revised plan in prose form."}
	svc := newTestService(gen, &mockForecast{})

	current := itinerary.Itinerary{
		Duration: itinerary.Duration{Unit: itinerary.UnitDays, Value: 1},
		Days: []itinerary.Day{
			{DayNumber: 1, Activities: []itinerary.Activity{{Description: "Visit the palace"}}},
		},
	}

	_, err := svc.Tweak(context.Background(), itinerary.TweakRequest{
		Request:     validRequest(),
		Itinerary:   current,
		Instruction: "make it shorter",
	})
	assert.ErrorIs(t, err, itinerary.ErrMalformedOutput)
}

func TestService_Tweak_MissingInstruction(t *testing.T) {
	svc := newTestService(&mockGenerator{}, &mockForecast{})

	_, err := svc.Tweak(context.Background(), itinerary.TweakRequest{
		Request: validRequest(),
		Itinerary: itinerary.Itinerary{
			Days: []itinerary.Day{{DayNumber: 1, Activities: []itinerary.Activity{{Description: "x"}}}},
		},
	})

	var verr *itinerary.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "instruction", verr.Fields[0].Field)
}

func TestService_Tweak_SchemaViolation(t *testing.T) {
	gen := &mockGenerator{response: `{"duration": {"unit": "days", "value": 1}, "days": [{"dayNumber": 0, "activities": []}]}`}
	svc := newTestService(gen, &mockForecast{})

	_, err := svc.Tweak(context.Background(), itinerary.TweakRequest{
		Request: validRequest(),
		Itinerary: itinerary.Itinerary{
			Days: []itinerary.Day{{DayNumber: 1, Activities: []itinerary.Activity{{Description: "x"}}}},
		},
		Instruction: "shuffle things",
	})
	assert.ErrorIs(t, err, itinerary.ErrMalformedOutput)
}
