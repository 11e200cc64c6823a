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

type DestinationServiceInterface interface {
	CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (string, error)
	GetDestinationByID(ctx context.Context, id string) (response_models.Destination, error)
	ListDestinations(ctx context.Context) ([]response_models.Destination, error)
	SearchDestinations(ctx context.Context, name string, page, pageSize int) ([]response_models.Destination, error)
	DeleteDestination(ctx context.Context, id uuid.UUID) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
	}
}

var validCategories = map[string]bool{
	db_models.CategoryCultural:    true,
	db_models.CategoryBeach:       true,
	db_models.CategoryAdventure:   true,
	db_models.CategoryWildlife:    true,
	db_models.CategoryCity:        true,
	db_models.CategoryHillCountry: true,
	db_models.CategoryHistorical:  true,
}

func (s *DestinationService) CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (string, error) {
	if !validCategories[req.Category] {
		return "", utils.ErrInvalidInput
	}
	if req.Latitude != 0 || req.Longitude != 0 {
		if !utils.ValidCoordinates(req.Latitude, req.Longitude) {
			return "", utils.ErrInvalidInput
		}
	}

	destination := &db_models.Destination{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		BestFrom:    req.BestFrom,
		BestTo:      req.BestTo,
		Tags:        req.Tags,
	}

	id, err := s.destinationRepo.Create(ctx, destination)
	if err != nil {
		log.Printf("Error creating destination: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (s *DestinationService) GetDestinationByID(ctx context.Context, id string) (response_models.Destination, error) {
	destination, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return response_models.Destination{}, utils.ErrDatabaseError
	}
	if destination == nil {
		return response_models.Destination{}, utils.ErrDestinationNotFound
	}
	return toDestinationResponse(*destination), nil
}

func (s *DestinationService) ListDestinations(ctx context.Context) ([]response_models.Destination, error) {
	destinations, err := s.destinationRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toDestinationResponses(destinations), nil
}

func (s *DestinationService) SearchDestinations(ctx context.Context, name string, page, pageSize int) ([]response_models.Destination, error) {
	destinations, err := s.destinationRepo.SearchByName(ctx, name, page, pageSize)
	if err != nil {
		log.Printf("Error searching destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toDestinationResponses(destinations), nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	existing, err := s.destinationRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching destination: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrDestinationNotFound
	}

	if err := s.destinationRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting destination: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toDestinationResponse(d db_models.Destination) response_models.Destination {
	return response_models.Destination{
		ID:          d.ID.String(),
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		BestFrom:    d.BestFrom,
		BestTo:      d.BestTo,
		Tags:        d.Tags,
	}
}

func toDestinationResponses(destinations []db_models.Destination) []response_models.Destination {
	out := make([]response_models.Destination, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, toDestinationResponse(d))
	}
	return out
}
