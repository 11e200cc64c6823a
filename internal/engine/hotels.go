package engine

import "lankatrails/internal/models/db_models"

// StopHotel is the hotel attached to one itinerary stop.
type StopHotel struct {
	Day   int
	Hotel db_models.Hotel
}

// SelectHotels attaches a budget-constrained hotel to each stop. The
// accommodation label resolves to a canonical category through the alias
// table; when it resolves, only hotels of that category qualify, otherwise
// price alone decides. Per stop, the cheapest qualifying hotel wins. Stops
// with no qualifying hotel are left without one.
func (c Config) SelectHotels(stops []ItineraryStop, hotels []db_models.Hotel, accommodation string, nightlyBudget float64) []StopHotel {
	category := c.HotelCategoryFor(accommodation)

	byDestination := make(map[string][]db_models.Hotel, len(hotels))
	for _, h := range hotels {
		key := h.DestinationID.String()
		byDestination[key] = append(byDestination[key], h)
	}

	picks := make([]StopHotel, 0, len(stops))
	for _, stop := range stops {
		candidates := byDestination[stop.Destination.ID.String()]

		var best *db_models.Hotel
		for i := range candidates {
			h := candidates[i]
			if h.PricePerNight > nightlyBudget {
				continue
			}
			if category != "" && h.Category != category {
				continue
			}
			if best == nil || h.PricePerNight < best.PricePerNight {
				best = &candidates[i]
			}
		}

		if best != nil {
			picks = append(picks, StopHotel{Day: stop.Day, Hotel: *best})
		}
	}
	return picks
}
