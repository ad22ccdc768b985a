package repositories

import (
	"context"
	"testing"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/db/dbtest"
	"airport-booking/concourse/internal/models/dtos"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteRepository_DuplicatePairIsConstraintError(t *testing.T) {
	orm := dbtest.Open(t)
	fx := dbtest.Seed(t, orm)
	repo := NewRouteRepository(orm)

	dup := gormModels.Route{SourceID: fx.Source.ID, DestinationID: fx.Destination.ID, Distance: 1}
	err := repo.Create(context.Background(), &dup)
	assert.True(t, common.IsConstraintError(err), "got %v", err)

	reverse := gormModels.Route{SourceID: fx.Destination.ID, DestinationID: fx.Source.ID, Distance: 1}
	assert.NoError(t, repo.Create(context.Background(), &reverse))
}

func TestRouteRepository_ListFilters(t *testing.T) {
	orm := dbtest.Open(t)
	fx := dbtest.Seed(t, orm)
	repo := NewRouteRepository(orm)
	ctx := context.Background()

	reverse := gormModels.Route{SourceID: fx.Destination.ID, DestinationID: fx.Source.ID, Distance: 2130}
	require.NoError(t, repo.Create(ctx, &reverse))

	all, err := repo.List(ctx, dtos.RouteFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bySource, err := repo.List(ctx, dtos.RouteFilter{Source: "BORY"})
	require.NoError(t, err)
	require.Len(t, bySource, 1)
	assert.Equal(t, "Heathrow", bySource[0].Destination.Name)

	none, err := repo.List(ctx, dtos.RouteFilter{Source: "bory", Destination: "bory"})
	require.NoError(t, err)
	assert.Empty(t, none)

	wildcard, err := repo.List(ctx, dtos.RouteFilter{Source: "%"})
	require.NoError(t, err)
	assert.Empty(t, wildcard)
}

func TestRouteRepository_FindByIDNotFound(t *testing.T) {
	orm := dbtest.Open(t)

	_, err := NewRouteRepository(orm).FindByID(context.Background(), 42)
	assert.True(t, common.IsNotFoundError(err))
}
