package repositories

import (
	"context"

	"airport-booking/concourse/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) Create(ctx context.Context, airport *gorm.Airport) error {
	return r.db.WithContext(ctx).Create(airport).Error
}

func (r *AirportRepository) List(ctx context.Context) ([]gorm.Airport, error) {
	var airports []gorm.Airport
	err := r.db.WithContext(ctx).Order("id").Find(&airports).Error
	return airports, err
}

func (r *AirportRepository) FindByID(ctx context.Context, id uint) (*gorm.Airport, error) {
	var airport gorm.Airport
	if err := r.db.WithContext(ctx).First(&airport, id).Error; err != nil {
		return nil, notFound(err, "airport", id)
	}
	return &airport, nil
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Airport{}).Count(&count).Error
	return count, err
}
