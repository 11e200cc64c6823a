package controllers_fx

import (
	"go.uber.org/fx"
	"lankatrails/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewPackagesController),
	fx.Provide(controllers.NewHotelsController))
