package engine

import "strings"

// PreferenceRecord is the canonical form of a traveler's free-form
// preferences. Built per request, never persisted.
type PreferenceRecord struct {
	TravelerType  string          `json:"traveler_type"`
	DurationDays  int             `json:"duration_days"`
	CityCount     int             `json:"city_count"`
	BudgetCeiling float64         `json:"budget_ceiling"`
	Interest      InterestProfile `json:"interest"`
}

// NormalizePreferences maps the four free-form preference strings into a
// PreferenceRecord. Every field falls back to a documented default; unknown
// values are never an error.
func (c Config) NormalizePreferences(interests, duration, travelerType, budget string) PreferenceRecord {
	days := c.DurationDays(duration)
	return PreferenceRecord{
		TravelerType:  c.TravelerTypeFor(travelerType),
		DurationDays:  days,
		CityCount:     CityCountForDays(days),
		BudgetCeiling: c.BudgetCeiling(budget),
		Interest:      c.InterestFor(interests),
	}
}

// DurationDays resolves a duration label against the ladder by substring
// match. Unmatched or empty labels default to a full week of touring.
func (c Config) DurationDays(label string) int {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return c.DefaultDurationDays
	}
	for _, rung := range c.DurationLadder {
		for _, sub := range rung.Substrings {
			if strings.Contains(normalized, sub) {
				return rung.Days
			}
		}
	}
	return c.DefaultDurationDays
}

// CityCountForDays derives how many cities an itinerary of the given length
// should cover. Monotonic step function; selection depends on it exactly.
func CityCountForDays(days int) int {
	switch {
	case days <= 4:
		return 2
	case days <= 6:
		return 3
	case days <= 10:
		return 4
	case days <= 14:
		return 5
	default:
		return 6
	}
}

// BudgetCeiling resolves a budget label to a per-person ceiling. Labels are
// stripped of currency noise ("$1,000 - $2,000" becomes "1000-2000") before
// the ladder lookup.
func (c Config) BudgetCeiling(label string) float64 {
	normalized := strings.ToLower(label)
	for _, junk := range []string{"$", ",", " ", "usd"} {
		normalized = strings.ReplaceAll(normalized, junk, "")
	}
	if normalized == "" {
		return c.DefaultBudgetCeiling
	}
	for _, rung := range c.BudgetLadder {
		for _, sub := range rung.Substrings {
			if strings.Contains(normalized, sub) {
				return rung.Ceiling
			}
		}
	}
	return c.DefaultBudgetCeiling
}

// InterestFor looks up the interest profile for a label, falling back to the
// configured default profile when nothing matches.
func (c Config) InterestFor(label string) InterestProfile {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if profile, ok := c.Interests[normalized]; ok {
		return profile
	}
	if normalized != "" {
		// Partial labels like "wildlife" still land on the right profile.
		best := ""
		for key := range c.Interests {
			if !strings.Contains(key, normalized) && !strings.Contains(normalized, key) {
				continue
			}
			if best == "" || key < best {
				best = key
			}
		}
		if best != "" {
			return c.Interests[best]
		}
	}
	return c.Interests[c.FallbackInterest]
}

// TravelerTypeFor normalizes a traveler-type label, defaulting to solo.
func (c Config) TravelerTypeFor(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(normalized, "honeymoon"):
		return TravelerHoneymoon
	case strings.Contains(normalized, "couple"):
		return TravelerCouple
	case strings.Contains(normalized, "family"):
		return TravelerFamily
	case strings.Contains(normalized, "group"), strings.Contains(normalized, "friends"):
		return TravelerGroup
	default:
		return TravelerSolo
	}
}
