package db_models

type TourPackage struct {
	BaseModel
	Name           string
	Category       string
	DurationDays   int
	PricePerPerson float64

	// Ordered route stops serialized as JSON. Stops reference destinations by
	// free-text location name, not by id; matching downstream is string-based.
	Route string `gorm:"type:text"`

	Description string
}
