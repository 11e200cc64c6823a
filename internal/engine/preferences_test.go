package engine

import "testing"

func TestDurationDays(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		label string
		want  int
	}{
		{"1-3 days", 4},
		{"A weekend getaway", 4},
		{"4-6 days", 6},
		{"5-7 days", 6},
		{"7-10 days", 8},
		{"10-14 days", 12},
		{"more than 14 days", 16},
		{"", 8},
		{"whatever", 8},
	}

	for _, tc := range cases {
		if got := cfg.DurationDays(tc.label); got != tc.want {
			t.Errorf("DurationDays(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestCityCountForDays(t *testing.T) {
	cases := []struct {
		days int
		want int
	}{
		{1, 2}, {4, 2}, {5, 3}, {6, 3}, {7, 4}, {10, 4}, {11, 5}, {14, 5}, {15, 6}, {30, 6},
	}

	for _, tc := range cases {
		if got := CityCountForDays(tc.days); got != tc.want {
			t.Errorf("CityCountForDays(%d) = %d, want %d", tc.days, got, tc.want)
		}
	}

	// Monotonic: more days never means fewer cities.
	prev := 0
	for days := 1; days <= 31; days++ {
		got := CityCountForDays(days)
		if got < prev {
			t.Fatalf("city count decreased at %d days: %d -> %d", days, prev, got)
		}
		prev = got
	}
}

func TestBudgetCeiling(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		label string
		want  float64
	}{
		{"Under $1,000", 1000},
		{"$1,000 - $2,000", 2000},
		{"$2,000 - $3,500", 3500},
		{"$3,500 - $5,000", 5000},
		{"More than $5,000", 10000},
		{"", 5000},
		{"no idea", 5000},
	}

	for _, tc := range cases {
		if got := cfg.BudgetCeiling(tc.label); got != tc.want {
			t.Errorf("BudgetCeiling(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestInterestForFallsBack(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.InterestFor("Wildlife & Nature").Label; got != "Wildlife & Nature" {
		t.Errorf("exact label lookup = %q", got)
	}
	if got := cfg.InterestFor("wildlife").Label; got != "Wildlife & Nature" {
		t.Errorf("partial label lookup = %q", got)
	}
	if got := cfg.InterestFor("stamp collecting").Label; got != "Cultural & Historical" {
		t.Errorf("unknown label fallback = %q", got)
	}
	if got := cfg.InterestFor("").Label; got != "Cultural & Historical" {
		t.Errorf("empty label fallback = %q", got)
	}
}

func TestTravelerTypeFor(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		label string
		want  string
	}{
		{"Solo traveler", TravelerSolo},
		{"Couple", TravelerCouple},
		{"Family with kids", TravelerFamily},
		{"Group of friends", TravelerGroup},
		{"Honeymoon", TravelerHoneymoon},
		{"", TravelerSolo},
		{"backpacker", TravelerSolo},
	}

	for _, tc := range cases {
		if got := cfg.TravelerTypeFor(tc.label); got != tc.want {
			t.Errorf("TravelerTypeFor(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestNormalizePreferences(t *testing.T) {
	cfg := DefaultConfig()

	pref := cfg.NormalizePreferences("Wildlife & Nature", "5-7 days", "Solo traveler", "$1,000 - $2,000")

	if pref.DurationDays != 6 {
		t.Errorf("DurationDays = %d, want 6", pref.DurationDays)
	}
	if pref.CityCount != 3 {
		t.Errorf("CityCount = %d, want 3", pref.CityCount)
	}
	if pref.BudgetCeiling != 2000 {
		t.Errorf("BudgetCeiling = %v, want 2000", pref.BudgetCeiling)
	}
	if pref.TravelerType != TravelerSolo {
		t.Errorf("TravelerType = %q, want solo", pref.TravelerType)
	}
	if pref.Interest.Label != "Wildlife & Nature" {
		t.Errorf("Interest = %q", pref.Interest.Label)
	}
}
