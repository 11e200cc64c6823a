package engine

import (
	"lankatrails/internal/models/db_models"
	"lankatrails/pkg/utils"
	"strings"
)

// ItineraryStop is one day of an ordered route: a destination, its assigned
// day number, and the great-circle distance from the previous stop.
type ItineraryStop struct {
	Destination   db_models.Destination
	Day           int
	LegDistanceKm float64
}

// OrderRoute arranges a destination set into a visiting sequence using greedy
// nearest-neighbor selection. The route starts at the destination whose name
// matches startingPoint case-insensitively, or at the first destination when
// nothing matches. Each subsequent stop is the unvisited destination closest
// to the current one.
//
// This is a local heuristic with no backtracking. Downstream consumers (map
// views, printed itineraries) are tuned to its exact ordering, so it must not
// be swapped for an optimal solver.
func OrderRoute(destinations []db_models.Destination, startingPoint string) ([]ItineraryStop, float64) {
	remaining := make([]db_models.Destination, 0, len(destinations))
	for _, d := range destinations {
		if HasUsableCoordinates(d) {
			remaining = append(remaining, d)
		}
	}
	if len(remaining) == 0 {
		return []ItineraryStop{}, 0
	}

	startIdx := 0
	for i, d := range remaining {
		if strings.EqualFold(strings.TrimSpace(d.Name), strings.TrimSpace(startingPoint)) {
			startIdx = i
			break
		}
	}

	stops := make([]ItineraryStop, 0, len(remaining))
	current := remaining[startIdx]
	remaining = append(remaining[:startIdx], remaining[startIdx+1:]...)
	stops = append(stops, ItineraryStop{Destination: current, Day: 1, LegDistanceKm: 0})

	total := 0.0
	for len(remaining) > 0 {
		nearest := 0
		nearestDist := utils.HaversineKm(
			current.Latitude, current.Longitude,
			remaining[0].Latitude, remaining[0].Longitude,
		)
		for i := 1; i < len(remaining); i++ {
			dist := utils.HaversineKm(
				current.Latitude, current.Longitude,
				remaining[i].Latitude, remaining[i].Longitude,
			)
			if dist < nearestDist {
				nearest = i
				nearestDist = dist
			}
		}

		current = remaining[nearest]
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
		total += nearestDist
		stops = append(stops, ItineraryStop{
			Destination:   current,
			Day:           len(stops) + 1,
			LegDistanceKm: nearestDist,
		})
	}

	return stops, total
}
