package repositories

import (
	"context"
	"strings"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db"
	"airport-booking/concourse/internal/models/dtos"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/gorm"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) WithTx(tx *gorm.DB) *RouteRepository {
	return &RouteRepository{db: tx}
}

// Create inserts a route. The unique (source, destination) index turns a racing
// duplicate into a ConstraintError.
func (r *RouteRepository) Create(ctx context.Context, route *gormModels.Route) error {
	err := r.db.WithContext(ctx).Omit("Source", "Destination").Create(route).Error
	if db.IsUniqueViolation(err) {
		return common.NewConstraintError("non_field_errors", constants.MsgRouteAlreadyExists)
	}
	return err
}

// Exists reports whether the ordered pair is already taken
func (r *RouteRepository) Exists(ctx context.Context, sourceID, destinationID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Route{}).
		Where("source_id = ? AND destination_id = ?", sourceID, destinationID).
		Count(&count).Error
	return count > 0, err
}

// List applies the optional airport-name filters. Each route joins exactly one
// source and one destination airport, so rows are distinct without DISTINCT.
func (r *RouteRepository) List(ctx context.Context, filter dtos.RouteFilter) ([]gormModels.Route, error) {
	q := r.db.WithContext(ctx).
		Model(&gormModels.Route{}).
		Joins("JOIN airports src ON src.id = routes.source_id").
		Joins("JOIN airports dst ON dst.id = routes.destination_id")

	if s := strings.TrimSpace(filter.Source); s != "" {
		q = q.Where(likeLower("src.name"), containsPattern(s))
	}
	if d := strings.TrimSpace(filter.Destination); d != "" {
		q = q.Where(likeLower("dst.name"), containsPattern(d))
	}

	var routes []gormModels.Route
	err := q.Preload("Source").Preload("Destination").Order("routes.id").Find(&routes).Error
	return routes, err
}

func (r *RouteRepository) FindByID(ctx context.Context, id uint) (*gormModels.Route, error) {
	var route gormModels.Route
	err := r.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		First(&route, id).Error
	if err != nil {
		return nil, notFound(err, "route", id)
	}
	return &route, nil
}

// likeLower is a case-insensitive LIKE on column; the pattern comes from containsPattern
func likeLower(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(strings.ToLower(s))
	return "%" + escaped + "%"
}
