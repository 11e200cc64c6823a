package engine

import (
	"fmt"
	"lankatrails/internal/models/db_models"
	"testing"
)

func selectedCities(names ...string) []ScoredDestination {
	out := make([]ScoredDestination, 0, len(names))
	for _, n := range names {
		out = append(out, ScoredDestination{Destination: db_models.Destination{Name: n}})
	}
	return out
}

func pkgWithRoute(name string, days int, price float64, locations ...string) db_models.TourPackage {
	route := "["
	for i, loc := range locations {
		if i > 0 {
			route += ","
		}
		route += fmt.Sprintf(`{"day":%d,"location":"%s"}`, i+1, loc)
	}
	route += "]"
	return db_models.TourPackage{
		Name:           name,
		DurationDays:   days,
		PricePerPerson: price,
		Route:          route,
	}
}

func TestMatchPackagesFilters(t *testing.T) {
	cfg := DefaultConfig()
	selected := selectedCities("Kandy", "Ella", "Galle")

	packages := []db_models.TourPackage{
		pkgWithRoute("FullOverlapTooPricey", 6, 5000, "Kandy", "Ella", "Galle"),
		pkgWithRoute("TooLong", 10, 1500, "Kandy", "Ella"),
		pkgWithRoute("NoOverlap", 6, 1500, "Jaffna", "Trincomalee"),
		pkgWithRoute("Good", 6, 1500, "Kandy", "Galle"),
		pkgWithRoute("SlackFits", 8, 1500, "Ella"),
	}

	matched := cfg.MatchPackages(packages, selected, 6, 2000)

	if len(matched) != 2 {
		t.Fatalf("matched %d packages, want 2", len(matched))
	}
	if matched[0].Package.Name != "Good" || matched[0].Overlap != 2 {
		t.Errorf("top match = %s (%d), want Good (2)", matched[0].Package.Name, matched[0].Overlap)
	}
	if matched[1].Package.Name != "SlackFits" || matched[1].Overlap != 1 {
		t.Errorf("second match = %s (%d), want SlackFits (1)", matched[1].Package.Name, matched[1].Overlap)
	}
}

func TestMatchPackagesOverBudgetExcludedDespiteFullOverlap(t *testing.T) {
	cfg := DefaultConfig()
	selected := selectedCities("Kandy", "Ella")

	packages := []db_models.TourPackage{
		pkgWithRoute("Pricey", 5, 2500, "Kandy", "Ella"),
	}

	if matched := cfg.MatchPackages(packages, selected, 6, 2000); len(matched) != 0 {
		t.Errorf("over-budget package matched: %v", matched)
	}
}

func TestMatchPackagesSubstringBothDirections(t *testing.T) {
	cfg := DefaultConfig()

	// Stop "Kandy City" contains destination "Kandy"; destination
	// "Nuwara Eliya" contains stop "Eliya".
	selected := selectedCities("Kandy", "Nuwara Eliya")
	packages := []db_models.TourPackage{
		pkgWithRoute("Hills", 5, 1000, "Kandy City", "Eliya"),
	}

	matched := cfg.MatchPackages(packages, selected, 6, 2000)
	if len(matched) != 1 || matched[0].Overlap != 2 {
		t.Fatalf("substring overlap failed: %+v", matched)
	}
}

func TestMatchPackagesCap(t *testing.T) {
	cfg := DefaultConfig()
	selected := selectedCities("Kandy")

	packages := make([]db_models.TourPackage, 0, 15)
	for i := 0; i < 15; i++ {
		packages = append(packages, pkgWithRoute(fmt.Sprintf("P%d", i), 5, 1000, "Kandy"))
	}

	matched := cfg.MatchPackages(packages, selected, 6, 2000)
	if len(matched) != 10 {
		t.Errorf("matched %d packages, want cap of 10", len(matched))
	}
	// Equal overlap: catalog order is preserved.
	if matched[0].Package.Name != "P0" || matched[9].Package.Name != "P9" {
		t.Errorf("cap broke catalog order: %s .. %s", matched[0].Package.Name, matched[9].Package.Name)
	}
}

func TestMatchPackagesMalformedRoute(t *testing.T) {
	cfg := DefaultConfig()
	selected := selectedCities("Kandy")

	packages := []db_models.TourPackage{
		{Name: "Broken", DurationDays: 5, PricePerPerson: 1000, Route: "{not json"},
		pkgWithRoute("Fine", 5, 1000, "Kandy"),
	}

	matched := cfg.MatchPackages(packages, selected, 6, 2000)
	if len(matched) != 1 || matched[0].Package.Name != "Fine" {
		t.Errorf("malformed route handling wrong: %+v", matched)
	}
}
