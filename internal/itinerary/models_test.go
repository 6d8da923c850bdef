package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/tripweaver/internal/itinerary"
)

func TestDuration_DayCount(t *testing.T) {
	tests := []struct {
		name     string
		duration itinerary.Duration
		want     int
	}{
		{"whole days", itinerary.Duration{Unit: itinerary.UnitDays, Value: 3}, 3},
		{"fractional days round up", itinerary.Duration{Unit: itinerary.UnitDays, Value: 2.5}, 3},
		{"hours collapse to one day", itinerary.Duration{Unit: itinerary.UnitHours, Value: 8}, 1},
		{"many hours still one day", itinerary.Duration{Unit: itinerary.UnitHours, Value: 36}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.duration.DayCount())
		})
	}
}

func TestTripRequest_Normalize(t *testing.T) {
	req := itinerary.TripRequest{}
	req.Normalize()

	assert.Equal(t, itinerary.ToleranceStrict, req.RainTolerance)
	assert.Equal(t, itinerary.TravelerSolo, req.TravelerType)

	// explicit values survive
	req = itinerary.TripRequest{
		RainTolerance: itinerary.ToleranceFlexible,
		TravelerType:  itinerary.TravelerFamily,
	}
	req.Normalize()
	assert.Equal(t, itinerary.ToleranceFlexible, req.RainTolerance)
	assert.Equal(t, itinerary.TravelerFamily, req.TravelerType)
}

func TestTripRequest_Validate(t *testing.T) {
	valid := itinerary.TripRequest{
		Location:       "Lisbon",
		NumberOfPeople: 2,
		Duration:       itinerary.Duration{Unit: itinerary.UnitDays, Value: 4},
		Preferences:    []string{"food"},
		RainTolerance:  itinerary.ToleranceStrict,
		TravelerType:   itinerary.TravelerCouple,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*itinerary.TripRequest)
		field  string
	}{
		{"missing location", func(r *itinerary.TripRequest) { r.Location = "  " }, "location"},
		{"zero people", func(r *itinerary.TripRequest) { r.NumberOfPeople = 0 }, "numberOfPeople"},
		{"bad unit", func(r *itinerary.TripRequest) { r.Duration.Unit = "weeks" }, "duration.unit"},
		{"zero duration", func(r *itinerary.TripRequest) { r.Duration.Value = 0 }, "duration.value"},
		{"no preferences", func(r *itinerary.TripRequest) { r.Preferences = nil }, "preferences"},
		{"bad tolerance", func(r *itinerary.TripRequest) { r.RainTolerance = "maybe" }, "rainTolerance"},
		{"bad traveler type", func(r *itinerary.TripRequest) { r.TravelerType = "pet" }, "travelerType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			var verr *itinerary.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestTripRequest_Validate_CollectsAllFields(t *testing.T) {
	err := (&itinerary.TripRequest{}).Validate()

	var verr *itinerary.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Fields), 5)
	assert.Contains(t, err.Error(), "location")
}

func TestItinerary_ValidateSchema(t *testing.T) {
	valid := itinerary.Itinerary{
		Duration: itinerary.Duration{Unit: itinerary.UnitDays, Value: 1},
		Days: []itinerary.Day{
			{DayNumber: 1, Activities: []itinerary.Activity{{Description: "Visit the fort"}}},
		},
	}
	assert.NoError(t, valid.ValidateSchema())

	noDays := itinerary.Itinerary{Duration: valid.Duration}
	assert.ErrorIs(t, noDays.ValidateSchema(), itinerary.ErrMalformedOutput)

	badNumber := valid
	badNumber.Days = []itinerary.Day{{DayNumber: 0, Activities: valid.Days[0].Activities}}
	assert.ErrorIs(t, badNumber.ValidateSchema(), itinerary.ErrMalformedOutput)

	emptyDescription := valid
	emptyDescription.Days = []itinerary.Day{
		{DayNumber: 1, Activities: []itinerary.Activity{{Description: "   "}}},
	}
	assert.ErrorIs(t, emptyDescription.ValidateSchema(), itinerary.ErrMalformedOutput)
}
