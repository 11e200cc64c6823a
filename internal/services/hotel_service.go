package services

import (
	"context"
	"github.com/google/uuid"
	"lankatrails/internal/models/db_models"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/models/response_models"
	"lankatrails/internal/repositories"
	"lankatrails/pkg/utils"
	"log"
)

type HotelServiceInterface interface {
	CreateHotel(ctx context.Context, req request_models.CreateHotelRequest) (string, error)
	ListHotels(ctx context.Context, page, pageSize int) ([]response_models.Hotel, error)
}

type HotelService struct {
	hotelRepo       repositories.HotelRepository
	destinationRepo repositories.DestinationRepository
}

func NewHotelService(
	hotelRepo repositories.HotelRepository,
	destinationRepo repositories.DestinationRepository,
) HotelServiceInterface {
	return &HotelService{
		hotelRepo:       hotelRepo,
		destinationRepo: destinationRepo,
	}
}

var validHotelCategories = map[string]bool{
	db_models.HotelCategoryEconomic:    true,
	db_models.HotelCategoryThreeStar:   true,
	db_models.HotelCategoryFourStar:    true,
	db_models.HotelCategoryFiveStar:    true,
	db_models.HotelCategoryBoutique:    true,
	db_models.HotelCategoryLuxBoutique: true,
}

func (s *HotelService) CreateHotel(ctx context.Context, req request_models.CreateHotelRequest) (string, error) {
	if !validHotelCategories[req.Category] || req.PricePerNight <= 0 {
		return "", utils.ErrInvalidInput
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	destination, err := s.destinationRepo.GetByID(ctx, req.DestinationID)
	if err != nil {
		log.Printf("Error fetching destination for hotel: %v", err)
		return "", utils.ErrDatabaseError
	}
	if destination == nil {
		return "", utils.ErrDestinationNotFound
	}

	hotel := &db_models.Hotel{
		Name:          req.Name,
		DestinationID: destinationID,
		Category:      req.Category,
		PricePerNight: req.PricePerNight,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}

	id, err := s.hotelRepo.Create(ctx, hotel)
	if err != nil {
		log.Printf("Error creating hotel: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (s *HotelService) ListHotels(ctx context.Context, page, pageSize int) ([]response_models.Hotel, error) {
	hotels, err := s.hotelRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing hotels: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, response_models.Hotel{
			ID:            h.ID.String(),
			Name:          h.Name,
			DestinationID: h.DestinationID.String(),
			Category:      h.Category,
			PricePerNight: h.PricePerNight,
			Latitude:      h.Latitude,
			Longitude:     h.Longitude,
		})
	}
	return out, nil
}
