package request_models

type CreateDestinationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	BestFrom    string   `json:"best_from"`
	BestTo      string   `json:"best_to"`
	Tags        []string `json:"tags"`
}

type CreatePackageRequest struct {
	Name           string             `json:"name" binding:"required"`
	Category       string             `json:"category"`
	DurationDays   int                `json:"duration_days" binding:"required"`
	PricePerPerson float64            `json:"price_per_person" binding:"required"`
	Description    string             `json:"description"`
	Route          []RouteStopPayload `json:"route"`
}

type RouteStopPayload struct {
	Day      int    `json:"day"`
	Location string `json:"location"`
	Note     string `json:"note,omitempty"`
}

type CreateHotelRequest struct {
	Name          string  `json:"name" binding:"required"`
	DestinationID string  `json:"destination_id" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}
