package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"lankatrails/cmd/fx/controllers_fx"
	"lankatrails/cmd/fx/db_fx"
	"lankatrails/cmd/fx/destination_fx"
	"lankatrails/cmd/fx/engine_fx"
	"lankatrails/cmd/fx/hotel_fx"
	"lankatrails/cmd/fx/package_fx"
	"lankatrails/internal/api/controllers"
	"lankatrails/pkg/middleware"
	"log"
	"os"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		destination_fx.Module,
		package_fx.Module,
		hotel_fx.Module,
		engine_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	recommendationController *controllers.RecommendationController,
	itineraryController *controllers.ItineraryController,
	destinationsController *controllers.DestinationsController,
	packagesController *controllers.PackagesController,
	hotelsController *controllers.HotelsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		recommendationController,
		itineraryController,
		destinationsController,
		packagesController,
		hotelsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendationController *controllers.RecommendationController,
	itineraryController *controllers.ItineraryController,
	destinationsController *controllers.DestinationsController,
	packagesController *controllers.PackagesController,
	hotelsController *controllers.HotelsController) {

	recommendationsGroup := r.Group("/recommendations")
	recommendationsGroup.POST("", recommendationController.Recommend)
	recommendationsGroup.GET("/config", recommendationController.GetEngineConfig)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("", itineraryController.BuildItinerary)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.POST("", destinationsController.CreateDestination)
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/search", destinationsController.SearchDestinations)
	destinationsGroup.GET("/:id", destinationsController.GetDestinationById)
	destinationsGroup.DELETE("/:id", destinationsController.DeleteDestination)

	packagesGroup := r.Group("/packages")
	packagesGroup.POST("", packagesController.CreatePackage)
	packagesGroup.GET("", packagesController.ListPackages)
	packagesGroup.GET("/:id", packagesController.GetPackageById)

	hotelsGroup := r.Group("/hotels")
	hotelsGroup.POST("", hotelsController.CreateHotel)
	hotelsGroup.GET("", hotelsController.ListHotels)
}
