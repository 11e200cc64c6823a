package engine

import (
	"lankatrails/internal/models/db_models"
	"lankatrails/pkg/utils"
	"sort"
)

// Slack in days a package may run over the requested trip length.
const packageDurationSlackDays = 2

// MatchedPackage is a tour package that survived filtering, with its route
// decoded and the number of route stops overlapping the selected cities.
type MatchedPackage struct {
	Package db_models.TourPackage
	Stops   []utils.RouteStopRecord
	Overlap int
}

// MatchPackages filters and ranks pre-built packages against the selected
// destinations. A package passes when its duration fits the trip with slack,
// its price is within the budget ceiling, and at least one route stop
// overlaps a selected destination name. Ranking is by overlap count
// descending, stable on catalog order, capped by config.
//
// Route stops name locations by free text rather than destination id, so
// overlap detection is case-insensitive bidirectional substring matching.
func (c Config) MatchPackages(packages []db_models.TourPackage, selected []ScoredDestination, durationDays int, budgetCeiling float64) []MatchedPackage {
	names := make([]string, 0, len(selected))
	for _, sd := range selected {
		names = append(names, sd.Destination.Name)
	}

	matched := make([]MatchedPackage, 0, len(packages))
	for _, pkg := range packages {
		if pkg.DurationDays > durationDays+packageDurationSlackDays {
			continue
		}
		if pkg.PricePerPerson > budgetCeiling {
			continue
		}

		stops := utils.DecodeRouteStops(pkg.Route)
		overlap := routeOverlap(stops, names)
		if overlap == 0 {
			continue
		}

		matched = append(matched, MatchedPackage{
			Package: pkg,
			Stops:   stops,
			Overlap: overlap,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Overlap > matched[j].Overlap
	})

	limit := c.MaxPackageSuggestions
	if limit <= 0 {
		limit = 10
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// routeOverlap counts route stops whose location matches any selected
// destination name. Stops are counted individually, so a package revisiting a
// selected city scores each visit.
func routeOverlap(stops []utils.RouteStopRecord, names []string) int {
	count := 0
	for _, stop := range stops {
		for _, name := range names {
			if utils.ContainsFold(stop.Location, name) {
				count++
				break
			}
		}
	}
	return count
}
