package engine

import (
	"lankatrails/internal/models/db_models"
	"strings"
)

// Weights for the five scoring components. They are expected to sum to 1.0.
type Weights struct {
	TypeMatch   float64 `json:"type_match"`
	TagMatch    float64 `json:"tag_match"`
	TravelerFit float64 `json:"traveler_fit"`
	SeasonMatch float64 `json:"season_match"`
	BudgetFit   float64 `json:"budget_fit"`
}

// InterestProfile maps one interest label onto the destination categories and
// tag keywords that represent it. Primary categories score full marks,
// secondary ones a reduced share.
type InterestProfile struct {
	Label       string   `json:"label"`
	Primary     []string `json:"primary_categories"`
	Secondary   []string `json:"secondary_categories"`
	TagAffinity []string `json:"tag_affinity"`
}

// DurationRung maps duration label fragments to a day count.
type DurationRung struct {
	Substrings []string `json:"substrings"`
	Days       int      `json:"days"`
}

// BudgetRung maps budget label fragments to a per-person ceiling.
type BudgetRung struct {
	Substrings []string `json:"substrings"`
	Ceiling    float64  `json:"ceiling"`
}

// RegionBand buckets destinations by latitude. Bands are checked in order and
// the first band whose MinLatitude is not above the destination wins.
type RegionBand struct {
	Name        string  `json:"name"`
	MinLatitude float64 `json:"min_latitude"`
}

// Config carries every tunable the engine reads. It is threaded explicitly
// into each call instead of living in package state, so tests can run with
// their own tuning side by side.
type Config struct {
	Weights Weights `json:"weights"`

	// TravelerFit is a traveler-type x destination-category compatibility
	// matrix with cells in the 40..95 range.
	TravelerFit        map[string]map[string]float64 `json:"traveler_fit"`
	TravelerFitDefault float64                       `json:"traveler_fit_default"`

	Interests        map[string]InterestProfile `json:"interests"`
	FallbackInterest string                     `json:"fallback_interest"`

	DurationLadder      []DurationRung `json:"duration_ladder"`
	DefaultDurationDays int            `json:"default_duration_days"`

	BudgetLadder         []BudgetRung `json:"budget_ladder"`
	DefaultBudgetCeiling float64      `json:"default_budget_ceiling"`

	// BudgetFitScore is the constant fed into the budget component.
	// Destinations carry no price signal yet, so this stays flat.
	BudgetFitScore float64 `json:"budget_fit_score"`

	RegionBands      []RegionBand `json:"region_bands"`
	RegionCapDivisor int          `json:"region_cap_divisor"`

	// AccommodationAliases maps free-form accommodation labels onto canonical
	// hotel categories.
	AccommodationAliases map[string]string `json:"accommodation_aliases"`

	// NightlyBudgetShare is the slice of the per-day budget reserved for the
	// hotel night.
	NightlyBudgetShare float64 `json:"nightly_budget_share"`

	MaxPackageSuggestions int `json:"max_package_suggestions"`
}

const (
	TravelerSolo      = "solo"
	TravelerCouple    = "couple"
	TravelerFamily    = "family"
	TravelerGroup     = "group"
	TravelerHoneymoon = "honeymoon"
)

// DefaultConfig returns the tuning the service ships with.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			TypeMatch:   0.35,
			TagMatch:    0.25,
			TravelerFit: 0.20,
			SeasonMatch: 0.10,
			BudgetFit:   0.10,
		},
		TravelerFit: map[string]map[string]float64{
			TravelerSolo: {
				db_models.CategoryCultural:    80,
				db_models.CategoryBeach:       70,
				db_models.CategoryAdventure:   90,
				db_models.CategoryWildlife:    85,
				db_models.CategoryCity:        85,
				db_models.CategoryHillCountry: 80,
				db_models.CategoryHistorical:  80,
			},
			TravelerCouple: {
				db_models.CategoryCultural:    80,
				db_models.CategoryBeach:       95,
				db_models.CategoryAdventure:   70,
				db_models.CategoryWildlife:    75,
				db_models.CategoryCity:        80,
				db_models.CategoryHillCountry: 90,
				db_models.CategoryHistorical:  75,
			},
			TravelerFamily: {
				db_models.CategoryCultural:    85,
				db_models.CategoryBeach:       90,
				db_models.CategoryAdventure:   60,
				db_models.CategoryWildlife:    90,
				db_models.CategoryCity:        75,
				db_models.CategoryHillCountry: 80,
				db_models.CategoryHistorical:  85,
			},
			TravelerGroup: {
				db_models.CategoryCultural:    75,
				db_models.CategoryBeach:       90,
				db_models.CategoryAdventure:   95,
				db_models.CategoryWildlife:    80,
				db_models.CategoryCity:        90,
				db_models.CategoryHillCountry: 75,
				db_models.CategoryHistorical:  70,
			},
			TravelerHoneymoon: {
				db_models.CategoryCultural:    70,
				db_models.CategoryBeach:       95,
				db_models.CategoryAdventure:   55,
				db_models.CategoryWildlife:    65,
				db_models.CategoryCity:        70,
				db_models.CategoryHillCountry: 95,
				db_models.CategoryHistorical:  65,
			},
		},
		TravelerFitDefault: 50,
		Interests: map[string]InterestProfile{
			"cultural & historical": {
				Label:       "Cultural & Historical",
				Primary:     []string{db_models.CategoryCultural, db_models.CategoryHistorical},
				Secondary:   []string{db_models.CategoryCity, db_models.CategoryHillCountry},
				TagAffinity: []string{"temple", "heritage", "ruins", "fort", "museum", "colonial"},
			},
			"beach & relaxation": {
				Label:       "Beach & Relaxation",
				Primary:     []string{db_models.CategoryBeach},
				Secondary:   []string{db_models.CategoryCity, db_models.CategoryWildlife},
				TagAffinity: []string{"beach", "surf", "snorkel", "lagoon", "whale", "spa"},
			},
			"adventure & outdoors": {
				Label:       "Adventure & Outdoors",
				Primary:     []string{db_models.CategoryAdventure, db_models.CategoryHillCountry},
				Secondary:   []string{db_models.CategoryWildlife, db_models.CategoryBeach},
				TagAffinity: []string{"hiking", "trek", "rafting", "climbing", "waterfall", "camping"},
			},
			"wildlife & nature": {
				Label:       "Wildlife & Nature",
				Primary:     []string{db_models.CategoryWildlife},
				Secondary:   []string{db_models.CategoryHillCountry, db_models.CategoryAdventure},
				TagAffinity: []string{"safari", "elephant", "leopard", "birding", "national park", "rainforest"},
			},
			"city & nightlife": {
				Label:       "City & Nightlife",
				Primary:     []string{db_models.CategoryCity},
				Secondary:   []string{db_models.CategoryCultural, db_models.CategoryBeach},
				TagAffinity: []string{"shopping", "nightlife", "dining", "rooftop", "market", "street food"},
			},
		},
		FallbackInterest: "cultural & historical",
		DurationLadder: []DurationRung{
			{Substrings: []string{"1-3", "2-3", "weekend", "short"}, Days: 4},
			{Substrings: []string{"4-6", "4-7", "5-7", "mid"}, Days: 6},
			{Substrings: []string{"7-10", "8-10", "week"}, Days: 8},
			{Substrings: []string{"10-14", "two week"}, Days: 12},
			{Substrings: []string{"more than", "14+", "15+", "extended"}, Days: 16},
		},
		DefaultDurationDays: 8,
		BudgetLadder: []BudgetRung{
			{Substrings: []string{"under1000", "<1000", "below1000"}, Ceiling: 1000},
			{Substrings: []string{"1000-2000"}, Ceiling: 2000},
			{Substrings: []string{"2000-3500"}, Ceiling: 3500},
			{Substrings: []string{"3500-5000"}, Ceiling: 5000},
			{Substrings: []string{"morethan5000", ">5000", "5000+"}, Ceiling: 10000},
		},
		DefaultBudgetCeiling: 5000,
		BudgetFitScore:       80,
		RegionBands: []RegionBand{
			{Name: "north", MinLatitude: 8.8},
			{Name: "north_central", MinLatitude: 8.0},
			{Name: "central", MinLatitude: 7.0},
			{Name: "south_central", MinLatitude: 6.4},
			{Name: "south", MinLatitude: -90},
		},
		RegionCapDivisor: 3,
		AccommodationAliases: map[string]string{
			"budget":          db_models.HotelCategoryEconomic,
			"economic":        db_models.HotelCategoryEconomic,
			"economy":         db_models.HotelCategoryEconomic,
			"standard":        db_models.HotelCategoryThreeStar,
			"3 star":          db_models.HotelCategoryThreeStar,
			"comfort":         db_models.HotelCategoryFourStar,
			"4 star":          db_models.HotelCategoryFourStar,
			"premium":         db_models.HotelCategoryFiveStar,
			"5 star":          db_models.HotelCategoryFiveStar,
			"villa":           db_models.HotelCategoryBoutique,
			"boutique":        db_models.HotelCategoryBoutique,
			"luxury":          db_models.HotelCategoryLuxBoutique,
			"luxury boutique": db_models.HotelCategoryLuxBoutique,
		},
		NightlyBudgetShare:    0.40,
		MaxPackageSuggestions: 10,
	}
}

// RegionForLatitude returns the band name for a latitude.
func (c Config) RegionForLatitude(lat float64) string {
	for _, band := range c.RegionBands {
		if lat >= band.MinLatitude {
			return band.Name
		}
	}
	if len(c.RegionBands) == 0 {
		return ""
	}
	return c.RegionBands[len(c.RegionBands)-1].Name
}

// HotelCategoryFor resolves a free-form accommodation label to a canonical
// hotel category. Returns "" when no alias matches, in which case hotel
// selection filters on price alone.
func (c Config) HotelCategoryFor(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return ""
	}
	if cat, ok := c.AccommodationAliases[normalized]; ok {
		return cat
	}
	// Longest matching alias wins so "luxury boutique villa" resolves through
	// "luxury boutique" rather than "luxury". Lexicographic tie-break keeps
	// the lookup deterministic across map iteration orders.
	best := ""
	for alias := range c.AccommodationAliases {
		if !strings.Contains(normalized, alias) {
			continue
		}
		if len(alias) > len(best) || (len(alias) == len(best) && alias < best) {
			best = alias
		}
	}
	if best == "" {
		return ""
	}
	return c.AccommodationAliases[best]
}
