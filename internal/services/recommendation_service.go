package services

import (
	"context"
	"lankatrails/internal/engine"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/models/response_models"
	"lankatrails/internal/repositories"
	"lankatrails/pkg/utils"
	"log"
)

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, prefs request_models.RecommendationPreferences) (*response_models.RecommendationResult, error)
	EngineConfig() engine.Config
}

type RecommendationService struct {
	destinationRepo repositories.DestinationRepository
	packageRepo     repositories.PackageRepository
	engine          *engine.Engine
}

func NewRecommendationService(
	destinationRepo repositories.DestinationRepository,
	packageRepo repositories.PackageRepository,
	eng *engine.Engine,
) RecommendationServiceInterface {
	return &RecommendationService{
		destinationRepo: destinationRepo,
		packageRepo:     packageRepo,
		engine:          eng,
	}
}

// Recommend fetches the catalogs and runs the scoring pipeline. The engine
// itself does no I/O; this is its only suspend point.
func (s *RecommendationService) Recommend(ctx context.Context, prefs request_models.RecommendationPreferences) (*response_models.RecommendationResult, error) {
	destinations, err := s.destinationRepo.List(ctx)
	if err != nil {
		log.Printf("Error fetching destination catalog: %v", err)
		return nil, utils.ErrDatabaseError
	}

	packages, err := s.packageRepo.List(ctx)
	if err != nil {
		log.Printf("Error fetching package catalog: %v", err)
		return nil, utils.ErrDatabaseError
	}

	result, err := s.engine.Recommend(engine.RecommendationRequest{
		Interests:    prefs.Interests,
		Duration:     prefs.Duration,
		TravelerType: prefs.TravelerType,
		Budget:       prefs.Budget,
	}, destinations, packages)
	if err != nil {
		return nil, err
	}

	return buildRecommendationResponse(result, len(destinations), len(packages)), nil
}

func (s *RecommendationService) EngineConfig() engine.Config {
	return s.engine.Config()
}

func buildRecommendationResponse(result *engine.RecommendationResult, destinationCount, packageCount int) *response_models.RecommendationResult {
	cities := make([]response_models.RecommendedCity, 0, len(result.Cities))
	for _, sd := range result.Cities {
		cities = append(cities, response_models.RecommendedCity{
			ID:          sd.Destination.ID.String(),
			Name:        sd.Destination.Name,
			Category:    sd.Destination.Category,
			Description: sd.Destination.Description,
			Latitude:    sd.Destination.Latitude,
			Longitude:   sd.Destination.Longitude,
			Region:      sd.Region,
			Score:       sd.Score,
			Tags:        sd.Destination.Tags,
		})
	}

	packages := make([]response_models.SuggestedPackage, 0, len(result.Packages))
	for _, mp := range result.Packages {
		route := make([]response_models.RouteStop, 0, len(mp.Stops))
		for _, stop := range mp.Stops {
			route = append(route, response_models.RouteStop{
				Day:      stop.Day,
				Location: stop.Location,
				Note:     stop.Note,
			})
		}

		packages = append(packages, response_models.SuggestedPackage{
			ID:             mp.Package.ID.String(),
			Name:           mp.Package.Name,
			Category:       mp.Package.Category,
			DurationDays:   mp.Package.DurationDays,
			PricePerPerson: mp.Package.PricePerPerson,
			Route:          route,
			MatchedStops:   mp.Overlap,
		})
	}

	return &response_models.RecommendationResult{
		Cities:    cities,
		Packages:  packages,
		Rationale: result.Rationale,
		Metadata: response_models.RecommendationMetadata{
			DestinationCount: destinationCount,
			PackageCount:     packageCount,
			CityCount:        result.Preferences.CityCount,
			DurationDays:     result.Preferences.DurationDays,
			BudgetCeiling:    result.Preferences.BudgetCeiling,
			TravelerType:     result.Preferences.TravelerType,
			Interest:         result.Preferences.Interest.Label,
		},
	}
}
