package response_models

// ItineraryStop is one day of the ordered route.
type ItineraryStop struct {
	Day                    int     `json:"day"`
	Date                   string  `json:"date,omitempty"`
	DestinationID          string  `json:"destination_id"`
	Name                   string  `json:"name"`
	Category               string  `json:"category"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	DistanceFromPreviousKm float64 `json:"distance_from_previous_km"`
}

// StopHotel is the hotel picked for one stop.
type StopHotel struct {
	Day           int     `json:"day"`
	HotelID       string  `json:"hotel_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PricePerNight float64 `json:"price_per_night"`
}

type ItineraryResponse struct {
	Stops           []ItineraryStop `json:"stops"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	Hotels          []StopHotel     `json:"hotels"`
	NightlyBudget   float64         `json:"nightly_budget"`
}
