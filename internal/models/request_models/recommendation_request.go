package request_models

// RecommendationPreferences is the flat preference payload accepted by the
// recommendation endpoint. All fields are free-form labels; every one of them
// has a documented default when missing or unrecognized.
type RecommendationPreferences struct {
	Interests    string `json:"interests"`
	Duration     string `json:"duration"`
	TravelerType string `json:"traveler_type"`
	Budget       string `json:"budget"`
}
