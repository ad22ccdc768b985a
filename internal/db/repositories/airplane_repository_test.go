package repositories

import (
	"context"
	"testing"

	"airport-booking/concourse/internal/db/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirplaneRepository_BookedExtent(t *testing.T) {
	orm := dbtest.Open(t)
	fx := dbtest.Seed(t, orm)
	repo := NewAirplaneRepository(orm)
	ctx := context.Background()

	extent, err := repo.BookedExtent(ctx, fx.Airplane.ID)
	require.NoError(t, err)
	assert.Equal(t, BookedExtent{}, extent)

	dbtest.Book(t, orm, fx.User.ID, fx.Flight.ID, [2]int{2, 1}, [2]int{1, 7})

	extent, err = repo.BookedExtent(ctx, fx.Airplane.ID)
	require.NoError(t, err)
	assert.Equal(t, BookedExtent{MaxRow: 2, MaxSeat: 7}, extent)
}
