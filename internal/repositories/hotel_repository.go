package repositories

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"lankatrails/internal/models/db_models"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *db_models.Hotel) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Hotel, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Hotel, error)
	ListByDestinationIDs(ctx context.Context, destinationIDs []uuid.UUID) ([]db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *db_models.Hotel) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(hotel).Error; err != nil {
		return uuid.Nil, err
	}
	return hotel.ID, nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id string) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Hotel, error) {
	hotels := make([]db_models.Hotel, 0)
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("price_per_night ASC, id ASC").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

// ListByDestinationIDs returns hotels for the given destinations ordered by
// nightly price, cheapest first, which is the order hotel selection wants.
func (r *hotelRepository) ListByDestinationIDs(ctx context.Context, destinationIDs []uuid.UUID) ([]db_models.Hotel, error) {
	if len(destinationIDs) == 0 {
		return []db_models.Hotel{}, nil
	}

	hotels := make([]db_models.Hotel, 0)
	err := r.db.WithContext(ctx).
		Where("destination_id IN ?", destinationIDs).
		Order("price_per_night ASC, id ASC").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}
