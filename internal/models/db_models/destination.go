package db_models

import "github.com/lib/pq"

// Destination categories form a closed set; content management rejects
// anything else at write time.
const (
	CategoryCultural    = "cultural"
	CategoryBeach       = "beach"
	CategoryAdventure   = "adventure"
	CategoryWildlife    = "wildlife"
	CategoryCity        = "city"
	CategoryHillCountry = "hill_country"
	CategoryHistorical  = "historical"
)

type Destination struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Category    string
	Description string
	Latitude    float64
	Longitude   float64

	// Best-visit window as month tokens ("Nov", "Apr"). The window may wrap
	// across year end.
	BestFrom string
	BestTo   string

	Tags pq.StringArray `gorm:"type:text[]"`

	Hotels []Hotel `gorm:"foreignKey:DestinationID"`
}
