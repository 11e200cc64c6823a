package response_models

// RecommendedCity is a selected destination with its fitness score.
type RecommendedCity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Region      string   `json:"region"`
	Score       float64  `json:"score"`
	Tags        []string `json:"tags,omitempty"`
}

// SuggestedPackage is a pre-built tour ranked by how many of its route stops
// overlap the recommended cities.
type SuggestedPackage struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Category       string      `json:"category,omitempty"`
	DurationDays   int         `json:"duration_days"`
	PricePerPerson float64     `json:"price_per_person"`
	Route          []RouteStop `json:"route"`
	MatchedStops   int         `json:"matched_stops"`
}

type RouteStop struct {
	Day      int    `json:"day"`
	Location string `json:"location"`
	Note     string `json:"note,omitempty"`
}

// RecommendationMetadata summarizes the normalized preferences behind a
// recommendation so clients can display what the engine actually used.
type RecommendationMetadata struct {
	DestinationCount int     `json:"destination_count"`
	PackageCount     int     `json:"package_count"`
	CityCount        int     `json:"city_count"`
	DurationDays     int     `json:"duration_days"`
	BudgetCeiling    float64 `json:"budget_ceiling"`
	TravelerType     string  `json:"traveler_type"`
	Interest         string  `json:"interest"`
}

type RecommendationResult struct {
	Cities    []RecommendedCity      `json:"cities"`
	Packages  []SuggestedPackage     `json:"packages"`
	Rationale string                 `json:"rationale"`
	Metadata  RecommendationMetadata `json:"metadata"`
}
