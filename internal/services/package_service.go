package services

import (
	"context"
	"encoding/json"
	"lankatrails/internal/models/db_models"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/models/response_models"
	"lankatrails/internal/repositories"
	"lankatrails/pkg/utils"
	"log"
)

type PackageServiceInterface interface {
	CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (string, error)
	GetPackageByID(ctx context.Context, id string) (response_models.TourPackage, error)
	ListPackages(ctx context.Context, page, pageSize int) ([]response_models.TourPackage, error)
}

type PackageService struct {
	packageRepo repositories.PackageRepository
}

func NewPackageService(packageRepo repositories.PackageRepository) PackageServiceInterface {
	return &PackageService{
		packageRepo: packageRepo,
	}
}

func (s *PackageService) CreatePackage(ctx context.Context, req request_models.CreatePackageRequest) (string, error) {
	if req.DurationDays <= 0 || req.PricePerPerson <= 0 {
		return "", utils.ErrInvalidInput
	}

	stops := make([]utils.RouteStopRecord, 0, len(req.Route))
	for _, stop := range req.Route {
		stops = append(stops, utils.RouteStopRecord{
			Day:      stop.Day,
			Location: stop.Location,
			Note:     stop.Note,
		})
	}
	route, err := json.Marshal(stops)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	pkg := &db_models.TourPackage{
		Name:           req.Name,
		Category:       req.Category,
		DurationDays:   req.DurationDays,
		PricePerPerson: req.PricePerPerson,
		Description:    req.Description,
		Route:          string(route),
	}

	id, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		log.Printf("Error creating package: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (s *PackageService) GetPackageByID(ctx context.Context, id string) (response_models.TourPackage, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return response_models.TourPackage{}, utils.ErrDatabaseError
	}
	if pkg == nil {
		return response_models.TourPackage{}, utils.ErrPackageNotFound
	}
	return toPackageResponse(*pkg), nil
}

func (s *PackageService) ListPackages(ctx context.Context, page, pageSize int) ([]response_models.TourPackage, error) {
	packages, err := s.packageRepo.ListPaged(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing packages: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TourPackage, 0, len(packages))
	for _, pkg := range packages {
		out = append(out, toPackageResponse(pkg))
	}
	return out, nil
}

func toPackageResponse(pkg db_models.TourPackage) response_models.TourPackage {
	stops := utils.DecodeRouteStops(pkg.Route)
	route := make([]response_models.RouteStop, 0, len(stops))
	for _, stop := range stops {
		route = append(route, response_models.RouteStop{
			Day:      stop.Day,
			Location: stop.Location,
			Note:     stop.Note,
		})
	}

	return response_models.TourPackage{
		ID:             pkg.ID.String(),
		Name:           pkg.Name,
		Category:       pkg.Category,
		DurationDays:   pkg.DurationDays,
		PricePerPerson: pkg.PricePerPerson,
		Description:    pkg.Description,
		Route:          route,
	}
}
