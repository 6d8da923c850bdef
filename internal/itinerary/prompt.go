package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// System messages for the generation provider.
const (
	plannerSystemMessage    = "You are a highly detailed and structured itinerary generator for travelers."
	suggestionSystemMessage = "You are a helpful and concise travel activity generator."
	tweakSystemMessage      = "You are a meticulous and professional travel itinerary editor."
)

// personaNotes describes each traveler type for prompt construction.
// Read-only after initialization.
var personaNotes = map[TravelerType]string{
	TravelerSolo:     "a solo traveler who enjoys flexible pacing and immersive local experiences",
	TravelerCouple:   "a couple looking for a mix of romantic, scenic and cultural experiences",
	TravelerFamily:   "a family with children, preferring accessible, safe and engaging activities",
	TravelerFriends:  "a group of friends who want social, fun and occasionally adventurous activities",
	TravelerBusiness: "a corporate group combining team events with polished dining and venues",
}

// toleranceNotes instructs the generator on rainy-day handling per
// tolerance mode. Read-only after initialization.
var toleranceNotes = map[RainTolerance]string{
	ToleranceStrict:   "Rain is forecast on some days. Avoid outdoor activities entirely; prefer museums, galleries, workshops and other indoor venues.",
	ToleranceFlexible: "Rain is forecast on some days. Schedule at most one outdoor activity per day and include an indoor backup for it, tagged (indoor backup).",
	ToleranceIgnore:   "",
}

// BuildItineraryPrompt constructs the day-wise itinerary generation prompt.
// rainyDates is the ISO date list flagged rainy for the trip span; it is
// only mentioned when the tolerance mode cares about weather.
func BuildItineraryPrompt(req TripRequest, rainyDates []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert travel planner specializing in creating detailed day-wise itineraries.
Based on the following inputs, generate a precise, day-wise itinerary of places and activities.

---
**User Input:**
* **Location:** %s
* **Number of People:** %d
* **Duration:** %g %s
* **Preferences:** %s
* **Traveler:** %s
`,
		req.Location,
		req.NumberOfPeople,
		req.Duration.Value, req.Duration.Unit,
		strings.Join(req.Preferences, ", "),
		personaNotes[req.TravelerType],
	)

	if req.RainTolerance != ToleranceIgnore && len(rainyDates) > 0 {
		fmt.Fprintf(&b, "* **Weather:** %s Rainy dates: %s\n",
			toleranceNotes[req.RainTolerance], strings.Join(rainyDates, ", "))
	}

	b.WriteString(`
---
**Instructions for Output:**
Provide the itinerary as plain text, structured day-wise. For each day, list exactly 3 highly suitable activities/places,
each tagged with a time of day in parentheses: (morning), (afternoon) or (evening). Use (indoor backup) for backup activities.
The output should ONLY contain the itinerary, formatted as follows, without any introductory or concluding sentences.

**Example Output Format for a 2-day trip:**
Day 1
1. Visit City Palace for a historic tour and panoramic views. (morning)
2. Experience a serene boat ride on Lake Pichola. (afternoon)
3. Attend a cultural folk music and dance performance at Bagore Ki Haveli. (evening)
Day 2
1. Explore Sajjangarh Monsoon Palace for breathtaking sunset views. (morning)
2. Participate in a traditional Rajasthani cooking workshop. (afternoon)
3. Enjoy a dinner at a luxury lakeside restaurant. (evening)
`)

	return b.String()
}

// BuildSuggestionPrompt constructs the standalone activity-suggestion prompt.
func BuildSuggestionPrompt(req TripRequest) string {
	return fmt.Sprintf(`You are an expert travel planner. Based on the following inputs, suggest 3-5 highly suitable and engaging activities.

---
**User Input:**
* **Location:** %s
* **Number of People:** %d
* **Duration:** %g %s
* **Preferences:** %s
* **Traveler:** %s

---
**Instructions for Output:**
Provide only a plain, unnumbered list of 3-5 activity names. Do not include any introductory or concluding sentences,
explanations, or additional text. Each activity name should be specific. Give only relevant information for the location.
`,
		req.Location,
		req.NumberOfPeople,
		req.Duration.Value, req.Duration.Unit,
		strings.Join(req.Preferences, ", "),
		personaNotes[req.TravelerType],
	)
}

// BuildTweakPrompt constructs the itinerary revision prompt. The provider
// is required to answer with JSON conforming to the Itinerary schema.
func BuildTweakPrompt(req TripRequest, current Itinerary, instruction string) string {
	currentJSON, _ := json.MarshalIndent(current, "", "  ")

	return fmt.Sprintf(`You are a professional travel planner. Based on the user's request, revise the following itinerary while preserving structure and realism.

---
**User Request:**
%s

**User Input:**
Location: %s
People: %d
Duration: %g %s
Preferences: %s

**Original Itinerary JSON:**
%s

---
**Instructions:**
- Output valid JSON and nothing else.
- Only update relevant days or activities based on the request.
- Do not rewrite the entire itinerary unless required.
- Maintain this exact schema:
{
  "duration": { "unit": "days", "value": 3 },
  "days": [
    {
      "dayNumber": 1,
      "activities": [
        { "description": "...", "timeOfDay": "morning" }
      ]
    }
  ]
}
`,
		instruction,
		req.Location,
		req.NumberOfPeople,
		req.Duration.Value, req.Duration.Unit,
		strings.Join(req.Preferences, ", "),
		string(currentJSON),
	)
}
