package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsing patterns for generated itinerary text. The generator is asked to
// emit "Day N" headers followed by numbered activity lines, but models wrap
// headers in emphasis markers and swap numbered lists for bullets often
// enough that the parser accepts both.
var (
	dayHeaderRe = regexp.MustCompile(`(?i)^[*_#>` + "`" + `\s]*day\s+(\d+)\b`)
	listItemRe  = regexp.MustCompile(`^(?:\d+\.\s*|[-*•]\s+)`)
	timeTagRe   = regexp.MustCompile(`(?i)\(\s*(morning|afternoon|evening|indoor backup)\s*\)[\s.]*$`)
)

// Parse converts one block of generated itinerary text into days.
// It also returns the flat list of raw activity descriptions in document
// order, which feeds the suggestion extractor.
//
// Lines that are neither day headers nor list items are dropped without
// error; generated text commonly contains stray prose. Day numbers are
// preserved exactly as they appear in the text; Reassign renumbers them.
func Parse(text string) ([]Day, []string) {
	var (
		days       []Day
		raw        []string
		current    []Activity
		currentNum int
		started    bool
	)

	flush := func() {
		if started && len(current) > 0 {
			days = append(days, Day{DayNumber: currentNum, Activities: current})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := dayHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			n, _ := strconv.Atoi(m[1])
			currentNum = n
			current = nil
			started = true
			continue
		}

		if loc := listItemRe.FindStringIndex(line); loc != nil {
			if !started {
				// list items before any day header are stray prose
				continue
			}
			desc := strings.TrimSpace(line[loc[1]:])
			activity := Activity{}

			if tag := timeTagRe.FindStringSubmatchIndex(desc); tag != nil {
				activity.TimeOfDay = normalizeTimeTag(desc[tag[2]:tag[3]])
				desc = strings.TrimSpace(desc[:tag[0]])
			}

			if desc == "" {
				continue
			}
			activity.Description = desc
			current = append(current, activity)
			raw = append(raw, desc)
		}
		// anything else is ignored
	}
	flush()

	return days, raw
}

// normalizeTimeTag maps a matched tag to its enum value.
func normalizeTimeTag(tag string) TimeOfDay {
	switch strings.ToLower(strings.Join(strings.Fields(tag), " ")) {
	case "morning":
		return TimeMorning
	case "afternoon":
		return TimeAfternoon
	case "evening":
		return TimeEvening
	case "indoor backup":
		return TimeIndoorBackup
	}
	return ""
}

// Render serializes days back into the "Day N" / numbered-line convention
// the parser accepts. Parse(Render(days)) reproduces days for any day
// sequence with non-empty activity lists.
func Render(days []Day) string {
	var b strings.Builder
	for _, d := range days {
		b.WriteString("Day ")
		b.WriteString(strconv.Itoa(d.DayNumber))
		b.WriteString("\n")
		for i, a := range d.Activities {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
			b.WriteString(a.Description)
			if a.TimeOfDay != "" {
				b.WriteString(" (")
				b.WriteString(renderTimeTag(a.TimeOfDay))
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderTimeTag(t TimeOfDay) string {
	if t == TimeIndoorBackup {
		return "indoor backup"
	}
	return string(t)
}
