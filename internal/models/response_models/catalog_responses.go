package response_models

type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	BestFrom    string   `json:"best_from,omitempty"`
	BestTo      string   `json:"best_to,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type TourPackage struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Category       string      `json:"category,omitempty"`
	DurationDays   int         `json:"duration_days"`
	PricePerPerson float64     `json:"price_per_person"`
	Description    string      `json:"description,omitempty"`
	Route          []RouteStop `json:"route"`
}

type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DestinationID string  `json:"destination_id"`
	Category      string  `json:"category"`
	PricePerNight float64 `json:"price_per_night"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}
