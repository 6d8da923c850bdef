package itinerary

import "sort"

// Reassign reorders days so that low-outdoor-content days land on rainy
// slots, then renumbers them 1..N. rainySlots holds 1-based output slot
// numbers forecast as rainy; entries outside 1..N are ignored. Activity
// content is never changed, only day placement and the derived Weather tag.
//
// The assignment is a best-effort heuristic, not an optimal matching: under
// flexible tolerance an outdoor-heavy day can still end up on a rainy slot
// when there are not enough weather-safe candidates. The output is always a
// permutation of the input with every slot filled exactly once.
func Reassign(days []Day, rainySlots []int, tolerance RainTolerance, cls *Classifier) []Day {
	n := len(days)
	if n == 0 {
		return []Day{}
	}

	rainy := make(map[int]bool, len(rainySlots))
	for _, s := range rainySlots {
		if s >= 1 && s <= n {
			rainy[s] = true
		}
	}

	if tolerance == ToleranceIgnore || len(rainy) == 0 {
		return renumber(days, identityOrder(n), rainy)
	}

	counts := make([]int, n)
	for i, d := range days {
		counts[i] = cls.OutdoorCount(d)
	}

	// Rank days by indoor content: fewest outdoor activities first, ties
	// keeping original order, so the most rain-compatible days are offered
	// to rainy slots before anything else.
	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return counts[ranked[a]] < counts[ranked[b]]
	})

	var rainyOrder, clearOrder []int
	for slot := 1; slot <= n; slot++ {
		if rainy[slot] {
			rainyOrder = append(rainyOrder, slot)
		} else {
			clearOrder = append(clearOrder, slot)
		}
	}

	// slot number (1-based) -> input day index
	assigned := make(map[int]int, n)
	placed := make([]bool, n)

	nextRainy, nextClear := 0, 0
	for _, idx := range ranked {
		safe := tolerance == ToleranceStrict || counts[idx] <= 1
		switch {
		case safe && nextRainy < len(rainyOrder):
			assigned[rainyOrder[nextRainy]] = idx
			nextRainy++
			placed[idx] = true
		case nextClear < len(clearOrder):
			assigned[clearOrder[nextClear]] = idx
			nextClear++
			placed[idx] = true
		}
	}

	// Patch pass: anything still unplaced fills the first empty slot.
	for _, idx := range ranked {
		if placed[idx] {
			continue
		}
		for slot := 1; slot <= n; slot++ {
			if _, taken := assigned[slot]; !taken {
				assigned[slot] = idx
				placed[idx] = true
				break
			}
		}
	}

	order := make([]int, n)
	for slot := 1; slot <= n; slot++ {
		order[slot-1] = assigned[slot]
	}
	return renumber(days, order, rainy)
}

// identityOrder returns 0..n-1.
func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// renumber builds the output day sequence: slot i (0-based) receives the
// input day order[i], day number i+1, and a weather tag from the rainy set.
func renumber(days []Day, order []int, rainy map[int]bool) []Day {
	out := make([]Day, len(order))
	for i, idx := range order {
		d := days[idx]
		d.DayNumber = i + 1
		if rainy[i+1] {
			d.Weather = WeatherRainy
		} else {
			d.Weather = WeatherClear
		}
		out[i] = d
	}
	return out
}
