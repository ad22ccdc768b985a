package repositories

import (
	"context"

	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order row only; tickets are written separately by the booking engine
func (r *OrderRepository) Create(ctx context.Context, o *gormModels.Order) error {
	return r.db.WithContext(ctx).Omit("User", "Tickets").Create(o).Error
}

// CreateTickets batch-inserts tickets. A unique violation here means a seat was taken
// between validation and insert.
func (r *OrderRepository) CreateTickets(ctx context.Context, tickets []gormModels.Ticket) error {
	return r.db.WithContext(ctx).Omit("Flight").Create(&tickets).Error
}

// ListByUser returns one page of the user's orders, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]gormModels.Order, int64, error) {
	base := r.db.WithContext(ctx).Model(&gormModels.Order{}).Where("user_id = ?", userID)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []gormModels.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Tickets", orderBySeat).
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination").
		Preload("Tickets.Flight.Airplane").
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

func orderBySeat(db *gorm.DB) *gorm.DB {
	return db.Order("seat_row, seat_number")
}
