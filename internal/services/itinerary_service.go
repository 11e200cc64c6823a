package services

import (
	"context"
	"github.com/google/uuid"
	"lankatrails/internal/engine"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/models/response_models"
	"lankatrails/internal/repositories"
	"lankatrails/pkg/utils"
	"log"
	"time"
)

type ItineraryServiceInterface interface {
	BuildItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	destinationRepo repositories.DestinationRepository
	hotelRepo       repositories.HotelRepository
	engine          *engine.Engine
}

func NewItineraryService(
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	eng *engine.Engine,
) ItineraryServiceInterface {
	return &ItineraryService{
		destinationRepo: destinationRepo,
		hotelRepo:       hotelRepo,
		engine:          eng,
	}
}

// BuildItinerary resolves the requested destination names against the
// catalog, orders them into a route, and attaches hotels. Names that resolve
// to nothing are silently dropped; an entirely unknown list yields an empty
// itinerary, not an error.
func (s *ItineraryService) BuildItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	if len(req.Destinations) == 0 {
		return nil, utils.ErrInvalidInput
	}

	destinations, err := s.destinationRepo.ListByNames(ctx, req.Destinations)
	if err != nil {
		log.Printf("Error resolving itinerary destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(destinations))
	for _, d := range destinations {
		ids = append(ids, d.ID)
	}

	hotels, err := s.hotelRepo.ListByDestinationIDs(ctx, ids)
	if err != nil {
		log.Printf("Error fetching hotels for itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}

	itinerary, err := s.engine.BuildItinerary(engine.ItineraryRequest{
		Interests:     req.Interests,
		Destinations:  req.Destinations,
		StartingPoint: req.StartingPoint,
		Accommodation: req.Accommodation,
		Days:          req.Days,
		Budget:        req.Budget,
	}, destinations, hotels)
	if err != nil {
		return nil, err
	}

	return buildItineraryResponse(itinerary, time.Now()), nil
}

func buildItineraryResponse(itinerary *engine.Itinerary, start time.Time) *response_models.ItineraryResponse {
	stops := make([]response_models.ItineraryStop, 0, len(itinerary.Stops))
	for _, stop := range itinerary.Stops {
		stops = append(stops, response_models.ItineraryStop{
			Day:                    stop.Day,
			Date:                   utils.FormatDateLK(start.AddDate(0, 0, stop.Day-1)),
			DestinationID:          stop.Destination.ID.String(),
			Name:                   stop.Destination.Name,
			Category:               stop.Destination.Category,
			Latitude:               stop.Destination.Latitude,
			Longitude:              stop.Destination.Longitude,
			DistanceFromPreviousKm: roundKm(stop.LegDistanceKm),
		})
	}

	hotels := make([]response_models.StopHotel, 0, len(itinerary.Hotels))
	for _, pick := range itinerary.Hotels {
		hotels = append(hotels, response_models.StopHotel{
			Day:           pick.Day,
			HotelID:       pick.Hotel.ID.String(),
			Name:          pick.Hotel.Name,
			Category:      pick.Hotel.Category,
			PricePerNight: pick.Hotel.PricePerNight,
		})
	}

	return &response_models.ItineraryResponse{
		Stops:           stops,
		TotalDistanceKm: roundKm(itinerary.TotalDistanceKm),
		Hotels:          hotels,
		NightlyBudget:   itinerary.NightlyBudget,
	}
}

func roundKm(km float64) float64 {
	return float64(int(km*10+0.5)) / 10
}
