package repositories

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"lankatrails/internal/models/db_models"
	"strings"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *db_models.TourPackage) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.TourPackage, error)
	List(ctx context.Context) ([]db_models.TourPackage, error)
	ListPaged(ctx context.Context, page, pageSize int) ([]db_models.TourPackage, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *db_models.TourPackage) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return uuid.Nil, err
	}
	return pkg.ID, nil
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*db_models.TourPackage, error) {
	var pkg db_models.TourPackage
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context) ([]db_models.TourPackage, error) {
	packages := make([]db_models.TourPackage, 0)
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) ListPaged(ctx context.Context, page, pageSize int) ([]db_models.TourPackage, error) {
	packages := make([]db_models.TourPackage, 0)
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("created_at ASC, id ASC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
