package itinerary

import "strings"

// defaultOutdoorKeywords is the built-in outdoor-keyword set. The list is
// matched case-insensitively as substrings of the activity description.
var defaultOutdoorKeywords = []string{
	"trek",
	"beach",
	"boat",
	"boating",
	"walk",
	"hike",
	"hiking",
	"garden",
	"outdoor",
	"forest",
	"camp",
	"sunset",
	"lake",
	"photography",
	"wildlife",
	"safari",
	"park",
	"open-air",
	"open air",
	"cycling",
	"kayak",
	"picnic",
}

// Classifier labels activities as outdoor or indoor using a fixed keyword
// heuristic. It is immutable after construction and safe for concurrent use.
type Classifier struct {
	keywords []string
}

// NewClassifier returns a classifier with the built-in keyword set.
func NewClassifier() *Classifier {
	return NewClassifierWithKeywords(defaultOutdoorKeywords)
}

// NewClassifierWithKeywords returns a classifier using the given keywords.
// Keywords are lower-cased once at construction.
func NewClassifierWithKeywords(keywords []string) *Classifier {
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kw = append(kw, k)
		}
	}
	return &Classifier{keywords: kw}
}

// IsOutdoor reports whether the description matches any outdoor keyword.
// Empty or malformed input is non-outdoor.
func (c *Classifier) IsOutdoor(description string) bool {
	if description == "" {
		return false
	}
	lower := strings.ToLower(description)
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// OutdoorCount returns the number of outdoor activities in a day.
func (c *Classifier) OutdoorCount(d Day) int {
	n := 0
	for _, a := range d.Activities {
		if c.IsOutdoor(a.Description) {
			n++
		}
	}
	return n
}

// Annotate returns a copy of days with the derived Outdoor flag set on
// every activity. Descriptions and ordering are untouched.
func (c *Classifier) Annotate(days []Day) []Day {
	out := make([]Day, len(days))
	for i, d := range days {
		activities := make([]Activity, len(d.Activities))
		for j, a := range d.Activities {
			a.Outdoor = c.IsOutdoor(a.Description)
			activities[j] = a
		}
		out[i] = Day{DayNumber: d.DayNumber, Activities: activities, Weather: d.Weather}
	}
	return out
}
