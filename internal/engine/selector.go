package engine

// SelectTopCities reduces a descending-score list to at most countNeeded
// destinations while bounding how many come from any one latitude band.
//
// Pass one walks the ranked list enforcing a per-region cap of
// ceil(countNeeded / RegionCapDivisor). If the caps exhaust before enough
// cities are found, a second pass fills the remaining slots from the same
// ranked order with the cap ignored. The result never exceeds countNeeded and
// never returns fewer than min(countNeeded, available).
func (c Config) SelectTopCities(ranked []ScoredDestination, countNeeded int) []ScoredDestination {
	if countNeeded <= 0 {
		return []ScoredDestination{}
	}

	divisor := c.RegionCapDivisor
	if divisor <= 0 {
		divisor = 3
	}
	regionCap := (countNeeded + divisor - 1) / divisor

	selected := make([]ScoredDestination, 0, countNeeded)
	taken := make(map[int]bool, countNeeded)
	regionCounts := make(map[string]int)

	for i, sd := range ranked {
		if len(selected) == countNeeded {
			return selected
		}
		if regionCounts[sd.Region] >= regionCap {
			continue
		}
		regionCounts[sd.Region]++
		taken[i] = true
		selected = append(selected, sd)
	}

	// Fill pass: region caps no longer apply, ordering still does.
	for i, sd := range ranked {
		if len(selected) == countNeeded {
			break
		}
		if taken[i] {
			continue
		}
		selected = append(selected, sd)
	}

	return selected
}
