package repositories

import (
	"context"

	"airport-booking/concourse/internal/common"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
)

type CrewRepository struct {
	db *gorm.DB
}

func NewCrewRepository(db *gorm.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

func (r *CrewRepository) WithTx(tx *gorm.DB) *CrewRepository {
	return &CrewRepository{db: tx}
}

func (r *CrewRepository) Create(ctx context.Context, c *gormModels.Crew) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CrewRepository) List(ctx context.Context) ([]gormModels.Crew, error) {
	var crews []gormModels.Crew
	err := r.db.WithContext(ctx).Order("id").Find(&crews).Error
	return crews, err
}

// FindByIDs loads every id or fails with NotFoundError naming the first missing one
func (r *CrewRepository) FindByIDs(ctx context.Context, ids []uint) ([]gormModels.Crew, error) {
	if len(ids) == 0 {
		return []gormModels.Crew{}, nil
	}

	var crews []gormModels.Crew
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&crews).Error; err != nil {
		return nil, err
	}

	found := make(map[uint]struct{}, len(crews))
	for _, c := range crews {
		found[c.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, &common.NotFoundError{Resource: "crew", ID: id, Field: "crew"}
		}
	}
	return crews, nil
}
