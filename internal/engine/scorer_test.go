package engine

import (
	"lankatrails/internal/models/db_models"
	"testing"
	"time"
)

func wildlifePref(cfg Config) PreferenceRecord {
	return cfg.NormalizePreferences("Wildlife & Nature", "5-7 days", "Solo traveler", "$1,000 - $2,000")
}

func TestScoreDestinationComponents(t *testing.T) {
	cfg := DefaultConfig()
	pref := wildlifePref(cfg)

	// Wildlife destination, no tags, in season:
	// type 100*0.35 + tag 0 + traveler 85*0.20 + season 100*0.10 + budget 80*0.10 = 70.0
	dest := db_models.Destination{
		Name:     "Yala",
		Category: db_models.CategoryWildlife,
		Latitude: 6.37, Longitude: 81.52,
		BestFrom: "Feb", BestTo: "Jul",
	}

	if got := cfg.ScoreDestination(dest, pref, time.March); got != 70.0 {
		t.Errorf("in-season score = %v, want 70.0", got)
	}
	if got := cfg.ScoreDestination(dest, pref, time.October); got != 65.0 {
		t.Errorf("off-season score = %v, want 65.0", got)
	}
}

func TestScoreBounds(t *testing.T) {
	cfg := DefaultConfig()

	destinations := []db_models.Destination{
		{Name: "A", Category: db_models.CategoryWildlife, Latitude: 6.4, Longitude: 81.5,
			BestFrom: "Jan", BestTo: "Dec", Tags: []string{"safari", "elephant", "leopard", "birding", "national park", "rainforest"}},
		{Name: "B", Category: db_models.CategoryBeach, Latitude: 6.0, Longitude: 80.2},
		{Name: "C", Category: "unknown_category", Latitude: 7.0, Longitude: 80.6},
	}

	for _, interest := range []string{"Wildlife & Nature", "Beach & Relaxation", "City & Nightlife", ""} {
		pref := cfg.NormalizePreferences(interest, "", "", "")
		for _, d := range destinations {
			for month := time.January; month <= time.December; month++ {
				score := cfg.ScoreDestination(d, pref, month)
				if score < 0 || score > 100 {
					t.Fatalf("score out of bounds: %v for %s / %s / %v", score, d.Name, interest, month)
				}
			}
		}
	}
}

func TestTagMatchScore(t *testing.T) {
	cfg := DefaultConfig()
	profile := cfg.Interests["wildlife & nature"]

	cases := []struct {
		name string
		tags []string
		want float64
	}{
		{"no tags", nil, 0},
		{"no hits", []string{"surfing", "nightlife"}, 0},
		{"two of six", []string{"Safari Jeep Tours", "Elephant Gathering"}, 100.0 / 3},
		{"all six", []string{"safari", "elephant", "leopard", "birding", "national park", "rainforest"}, 100},
	}

	for _, tc := range cases {
		d := db_models.Destination{Tags: tc.tags}
		got := tagMatchScore(d, profile)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: tagMatchScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSeasonWindowWrapAround(t *testing.T) {
	d := db_models.Destination{BestFrom: "Nov", BestTo: "Apr"}

	inWindow := []time.Month{time.November, time.December, time.January, time.April}
	outWindow := []time.Month{time.May, time.October, time.July}

	for _, m := range inWindow {
		if got := seasonMatchScore(d, m); got != 100 {
			t.Errorf("month %v: season score = %v, want 100", m, got)
		}
	}
	for _, m := range outWindow {
		if got := seasonMatchScore(d, m); got != 50 {
			t.Errorf("month %v: season score = %v, want 50", m, got)
		}
	}

	// Unparsable window is the soft 50, never zero.
	if got := seasonMatchScore(db_models.Destination{}, time.June); got != 50 {
		t.Errorf("missing window score = %v, want 50", got)
	}
}

func TestScoreAllFiltersAndSorts(t *testing.T) {
	cfg := DefaultConfig()
	pref := wildlifePref(cfg)

	destinations := []db_models.Destination{
		{Name: "NoCoords", Category: db_models.CategoryWildlife},
		{Name: "BadLat", Category: db_models.CategoryWildlife, Latitude: 123, Longitude: 80},
		{Name: "Beach", Category: db_models.CategoryBeach, Latitude: 6.0, Longitude: 80.2},
		{Name: "Safari", Category: db_models.CategoryWildlife, Latitude: 6.4, Longitude: 81.5},
	}

	ranked := cfg.ScoreAll(destinations, pref, time.March)

	if len(ranked) != 2 {
		t.Fatalf("ranked length = %d, want 2 (coordinate filtering)", len(ranked))
	}
	if ranked[0].Destination.Name != "Safari" {
		t.Errorf("top destination = %s, want Safari", ranked[0].Destination.Name)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("expected strict ordering, got %v then %v", ranked[0].Score, ranked[1].Score)
	}
}

func TestScoreAllStableOnTies(t *testing.T) {
	cfg := DefaultConfig()
	pref := wildlifePref(cfg)

	// Identical destinations score identically; catalog order must hold.
	destinations := []db_models.Destination{
		{Name: "First", Category: db_models.CategoryWildlife, Latitude: 6.4, Longitude: 81.5},
		{Name: "Second", Category: db_models.CategoryWildlife, Latitude: 6.5, Longitude: 81.4},
	}

	ranked := cfg.ScoreAll(destinations, pref, time.March)
	if ranked[0].Destination.Name != "First" || ranked[1].Destination.Name != "Second" {
		t.Errorf("tie broke catalog order: %s, %s", ranked[0].Destination.Name, ranked[1].Destination.Name)
	}
}
