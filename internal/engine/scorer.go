package engine

import (
	"lankatrails/internal/models/db_models"
	"math"
	"sort"
	"strings"
	"time"
)

// ScoredDestination pairs a destination with its fitness score in [0,100].
type ScoredDestination struct {
	Destination db_models.Destination
	Score       float64
	Region      string
}

// ScoreDestination computes the multi-criteria fitness of one destination for
// a preference record. The result is a weighted sum of five components,
// rounded to one decimal.
func (c Config) ScoreDestination(d db_models.Destination, pref PreferenceRecord, month time.Month) float64 {
	score := c.Weights.TypeMatch*c.typeMatchScore(d, pref.Interest) +
		c.Weights.TagMatch*tagMatchScore(d, pref.Interest) +
		c.Weights.TravelerFit*c.travelerFitScore(d, pref.TravelerType) +
		c.Weights.SeasonMatch*seasonMatchScore(d, month) +
		c.Weights.BudgetFit*c.BudgetFitScore

	return math.Round(score*10) / 10
}

// ScoreAll scores every destination with usable coordinates and returns them
// in descending score order. The sort is stable so catalog order breaks ties,
// keeping results deterministic for identical inputs.
func (c Config) ScoreAll(destinations []db_models.Destination, pref PreferenceRecord, month time.Month) []ScoredDestination {
	scored := make([]ScoredDestination, 0, len(destinations))
	for _, d := range destinations {
		if !HasUsableCoordinates(d) {
			continue
		}
		scored = append(scored, ScoredDestination{
			Destination: d,
			Score:       c.ScoreDestination(d, pref, month),
			Region:      c.RegionForLatitude(d.Latitude),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func (c Config) typeMatchScore(d db_models.Destination, interest InterestProfile) float64 {
	for _, cat := range interest.Primary {
		if d.Category == cat {
			return 100
		}
	}
	for _, cat := range interest.Secondary {
		if d.Category == cat {
			return 60
		}
	}
	return 0
}

// tagMatchScore is the fraction of the interest's affinity keywords with a
// case-insensitive substring hit against any destination tag, scaled to 100.
func tagMatchScore(d db_models.Destination, interest InterestProfile) float64 {
	if len(interest.TagAffinity) == 0 || len(d.Tags) == 0 {
		return 0
	}

	hits := 0
	for _, keyword := range interest.TagAffinity {
		kw := strings.ToLower(keyword)
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), kw) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(interest.TagAffinity)) * 100
}

func (c Config) travelerFitScore(d db_models.Destination, travelerType string) float64 {
	row, ok := c.TravelerFit[travelerType]
	if !ok {
		return c.TravelerFitDefault
	}
	fit, ok := row[d.Category]
	if !ok {
		return c.TravelerFitDefault
	}
	return fit
}

// seasonMatchScore gives full marks inside the destination's best-visit
// window and a soft 50 outside it. Being off-peak is a penalty, never a
// disqualification.
func seasonMatchScore(d db_models.Destination, month time.Month) float64 {
	from, okFrom := monthFromToken(d.BestFrom)
	to, okTo := monthFromToken(d.BestTo)
	if !okFrom || !okTo {
		return 50
	}

	if monthInWindow(month, from, to) {
		return 100
	}
	return 50
}

// monthInWindow is inclusive on both ends and supports windows wrapping
// across year end, e.g. Nov..Apr.
func monthInWindow(m, from, to time.Month) bool {
	if from <= to {
		return m >= from && m <= to
	}
	return m >= from || m <= to
}

var monthTokens = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

func monthFromToken(token string) (time.Month, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if len(token) < 3 {
		return 0, false
	}
	m, ok := monthTokens[token[:3]]
	return m, ok
}

// HasUsableCoordinates reports whether a destination can participate in
// scoring and routing. A zeroed pair means the row was never geocoded.
func HasUsableCoordinates(d db_models.Destination) bool {
	if d.Latitude == 0 && d.Longitude == 0 {
		return false
	}
	if d.Latitude < -90 || d.Latitude > 90 {
		return false
	}
	return d.Longitude >= -180 && d.Longitude <= 180
}
