package engine_fx

import (
	"go.uber.org/fx"
	"lankatrails/internal/engine"
	"lankatrails/internal/repositories"
	"lankatrails/internal/services"
	"lankatrails/pkg/utils"
)

var Module = fx.Provide(
	provideEngine,
	provideRecommendationService,
	provideItineraryService)

func provideEngine() *engine.Engine {
	// Season scoring follows the Sri Lanka calendar.
	return engine.NewWithClock(engine.DefaultConfig(), utils.NowLK)
}

func provideRecommendationService(
	destinationRepo repositories.DestinationRepository,
	packageRepo repositories.PackageRepository,
	eng *engine.Engine,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(destinationRepo, packageRepo, eng)
}

func provideItineraryService(
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	eng *engine.Engine,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(destinationRepo, hotelRepo, eng)
}
