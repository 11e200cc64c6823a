package db_models

import "github.com/google/uuid"

// Hotel categories, cheapest tier first.
const (
	HotelCategoryEconomic    = "economic"
	HotelCategoryThreeStar   = "3_star"
	HotelCategoryFourStar    = "4_star"
	HotelCategoryFiveStar    = "5_star"
	HotelCategoryBoutique    = "boutique_villa"
	HotelCategoryLuxBoutique = "luxury_boutique_villa"
)

type Hotel struct {
	BaseModel
	Name          string
	DestinationID uuid.UUID `gorm:"type:uuid;index"`
	Category      string
	PricePerNight float64
	Latitude      float64
	Longitude     float64
}
