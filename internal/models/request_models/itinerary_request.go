package request_models

// ItineraryRequest describes an ad-hoc trip: the traveler has already picked
// destinations by name and wants them ordered into a day-by-day route with a
// hotel per stop.
type ItineraryRequest struct {
	Interests     []string `json:"interests"`
	Destinations  []string `json:"destinations"`
	StartingPoint string   `json:"starting_point"`
	Accommodation string   `json:"accommodation"`
	Days          int      `json:"days"`
	Budget        string   `json:"budget"`
}
