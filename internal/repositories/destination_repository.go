package repositories

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"lankatrails/internal/models/db_models"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error)
	Update(ctx context.Context, destination *db_models.Destination) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	List(ctx context.Context) ([]db_models.Destination, error)
	ListByNames(ctx context.Context, names []string) ([]db_models.Destination, error)
	SearchByName(ctx context.Context, name string, page, pageSize int) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(destination).Error; err != nil {
		return uuid.Nil, err
	}
	return destination.ID, nil
}

func (r *destinationRepository) Update(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(destination)
		if result.Error != nil {
			return fmt.Errorf("failed to update destination: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *destinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Destination{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return a default value and nil error when no rows are found.

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		First(&destination, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

// List returns the whole destination catalog in insertion order. The engine
// depends on a stable catalog order for deterministic tie-breaking.
func (r *destinationRepository) List(ctx context.Context) ([]db_models.Destination, error) {
	destinations := make([]db_models.Destination, 0)
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) ListByNames(ctx context.Context, names []string) ([]db_models.Destination, error) {
	if len(names) == 0 {
		return []db_models.Destination{}, nil
	}

	destinations := make([]db_models.Destination, 0)
	err := r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", lowerAll(names)).
		Order("created_at ASC, id ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) SearchByName(ctx context.Context, name string, page, pageSize int) ([]db_models.Destination, error) {
	destinations := make([]db_models.Destination, 0)
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Offset(offset).
		Limit(pageSize).
		Order("created_at ASC, id ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}
