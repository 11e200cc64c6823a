package engine

import (
	"fmt"
	"lankatrails/internal/models/db_models"
	"lankatrails/pkg/utils"
	"strings"
	"time"
)

// Engine runs the recommendation and itinerary computations. It performs no
// I/O: all catalog data is supplied by the caller per invocation, so
// concurrent requests need no coordination. The clock is injectable because
// "current month" is the one non-deterministic input (season scoring).
type Engine struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, now: time.Now}
}

// NewWithClock pins the engine to a fixed clock. Tests use this to make
// season scoring reproducible.
func NewWithClock(cfg Config, now func() time.Time) *Engine {
	return &Engine{cfg: cfg, now: now}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// RecommendationRequest carries the traveler's raw preference strings.
type RecommendationRequest struct {
	Interests    string
	Duration     string
	TravelerType string
	Budget       string
}

// RecommendationResult is the engine's answer: the diversity-bounded city
// selection, ranked package suggestions, and the normalized preferences that
// produced them.
type RecommendationResult struct {
	Cities      []ScoredDestination
	Packages    []MatchedPackage
	Preferences PreferenceRecord
	Rationale   string
}

// Recommend scores the whole destination catalog against the traveler's
// preferences, reduces it to a geographically diverse city set sized to the
// trip, and ranks pre-built packages against that set.
//
// A nil catalog signals an upstream fetch failure and is the one hard error;
// empty catalogs are valid and produce empty results.
func (e *Engine) Recommend(req RecommendationRequest, destinations []db_models.Destination, packages []db_models.TourPackage) (*RecommendationResult, error) {
	if destinations == nil || packages == nil {
		return nil, fmt.Errorf("recommend: %w", utils.ErrCatalogUnavailable)
	}

	pref := e.cfg.NormalizePreferences(req.Interests, req.Duration, req.TravelerType, req.Budget)
	month := e.now().Month()

	ranked := e.cfg.ScoreAll(destinations, pref, month)
	cities := e.cfg.SelectTopCities(ranked, pref.CityCount)
	matched := e.cfg.MatchPackages(packages, cities, pref.DurationDays, pref.BudgetCeiling)

	return &RecommendationResult{
		Cities:      cities,
		Packages:    matched,
		Preferences: pref,
		Rationale:   e.rationale(pref, cities, matched),
	}, nil
}

func (e *Engine) rationale(pref PreferenceRecord, cities []ScoredDestination, matched []MatchedPackage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Selected %d destination(s) for a %d-day %s trip focused on %s, within a budget of $%.0f per person.",
		len(cities), pref.DurationDays, pref.TravelerType, pref.Interest.Label, pref.BudgetCeiling)
	if len(matched) > 0 {
		fmt.Fprintf(&b, " %d tour package(s) overlap your recommended route.", len(matched))
	}
	return b.String()
}

// ItineraryRequest describes an ad-hoc trip to be ordered into a day-by-day
// route: a chosen destination set, an exact day count, and hotel constraints.
type ItineraryRequest struct {
	Interests     []string
	Destinations  []string
	StartingPoint string
	Accommodation string
	Days          int
	Budget        string
}

// Itinerary is the day-sequenced route with per-leg distances and one
// budget-constrained hotel per stop where available.
type Itinerary struct {
	Stops           []ItineraryStop
	TotalDistanceKm float64
	Hotels          []StopHotel
	NightlyBudget   float64
}

// BuildItinerary orders the supplied destinations with the nearest-neighbor
// heuristic and attaches hotels. The nightly hotel ceiling is the configured
// share of the per-day budget.
func (e *Engine) BuildItinerary(req ItineraryRequest, destinations []db_models.Destination, hotels []db_models.Hotel) (*Itinerary, error) {
	if destinations == nil || hotels == nil {
		return nil, fmt.Errorf("build itinerary: %w", utils.ErrCatalogUnavailable)
	}

	stops, total := OrderRoute(destinations, req.StartingPoint)

	days := req.Days
	if days <= 0 {
		days = e.cfg.DefaultDurationDays
	}
	nightly := e.cfg.BudgetCeiling(req.Budget) / float64(days) * e.cfg.NightlyBudgetShare

	picks := e.cfg.SelectHotels(stops, hotels, req.Accommodation, nightly)

	return &Itinerary{
		Stops:           stops,
		TotalDistanceKm: total,
		Hotels:          picks,
		NightlyBudget:   nightly,
	}, nil
}
