package repositories

import (
	"context"

	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AirplaneTypeRepository struct {
	db *gorm.DB
}

func NewAirplaneTypeRepository(db *gorm.DB) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{db: db}
}

func (r *AirplaneTypeRepository) WithTx(tx *gorm.DB) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{db: tx}
}

func (r *AirplaneTypeRepository) Create(ctx context.Context, t *gormModels.AirplaneType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *AirplaneTypeRepository) List(ctx context.Context) ([]gormModels.AirplaneType, error) {
	var types []gormModels.AirplaneType
	err := r.db.WithContext(ctx).Order("id").Find(&types).Error
	return types, err
}

func (r *AirplaneTypeRepository) FindByID(ctx context.Context, id uint) (*gormModels.AirplaneType, error) {
	var t gormModels.AirplaneType
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound(err, "airplane type", id)
	}
	return &t, nil
}

type AirplaneRepository struct {
	db *gorm.DB
}

func NewAirplaneRepository(db *gorm.DB) *AirplaneRepository {
	return &AirplaneRepository{db: db}
}

func (r *AirplaneRepository) WithTx(tx *gorm.DB) *AirplaneRepository {
	return &AirplaneRepository{db: tx}
}

// Transaction runs fn inside one database transaction
func (r *AirplaneRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *AirplaneRepository) Create(ctx context.Context, a *gormModels.Airplane) error {
	return r.db.WithContext(ctx).Omit("AirplaneType").Create(a).Error
}

// Save writes every column of an existing airplane
func (r *AirplaneRepository) Save(ctx context.Context, a *gormModels.Airplane) error {
	return r.db.WithContext(ctx).Omit("AirplaneType").Save(a).Error
}

func (r *AirplaneRepository) List(ctx context.Context) ([]gormModels.Airplane, error) {
	var airplanes []gormModels.Airplane
	err := r.db.WithContext(ctx).Preload("AirplaneType").Order("id").Find(&airplanes).Error
	return airplanes, err
}

func (r *AirplaneRepository) FindByID(ctx context.Context, id uint) (*gormModels.Airplane, error) {
	var a gormModels.Airplane
	if err := r.db.WithContext(ctx).Preload("AirplaneType").First(&a, id).Error; err != nil {
		return nil, notFound(err, "airplane", id)
	}
	return &a, nil
}

// LockByID loads the airplane under a row lock. Exclusive blocks bookings on its
// flights; shared only keeps the layout from changing until the transaction ends.
func (r *AirplaneRepository) LockByID(ctx context.Context, id uint, exclusive bool) (*gormModels.Airplane, error) {
	strength := clause.LockingStrengthShare
	if exclusive {
		strength = clause.LockingStrengthUpdate
	}
	if err := lockRow(r.db.WithContext(ctx), &gormModels.Airplane{}, id, strength); err != nil {
		return nil, notFound(err, "airplane", id)
	}
	return r.FindByID(ctx, id)
}

// BookedExtent is the highest row and seat held by tickets
type BookedExtent struct {
	MaxRow  int `gorm:"column:max_row"`
	MaxSeat int `gorm:"column:max_seat"`
}

// BookedExtent covers every ticket on the airplane's flights
func (r *AirplaneRepository) BookedExtent(ctx context.Context, airplaneID uint) (BookedExtent, error) {
	var extent BookedExtent
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("COALESCE(MAX(tickets.seat_row), 0) AS max_row, COALESCE(MAX(tickets.seat_number), 0) AS max_seat").
		Joins("JOIN flights ON flights.id = tickets.flight_id").
		Where("flights.airplane_id = ?", airplaneID).
		Scan(&extent).Error
	return extent, err
}
