package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/model"
)

type mockDestinationDB struct {
	byID    map[uint]*entity.Destination
	byTrip  []entity.Destination
	created *entity.Destination
	deleted []uint
}

func (m *mockDestinationDB) FindByID(id uint) (*entity.Destination, error) { return m.byID[id], nil }

func (m *mockDestinationDB) FindByTripID(tripID uint) ([]entity.Destination, error) {
	return m.byTrip, nil
}

func (m *mockDestinationDB) FindAllWithKeysetPagination(lastID uint, size int) ([]entity.Destination, error) {
	return nil, nil
}

func (m *mockDestinationDB) Create(destination entity.Destination) (*entity.Destination, error) {
	destination.ID = 1
	m.created = &destination
	return &destination, nil
}

func (m *mockDestinationDB) UpdateByID(id uint, updated entity.Destination) (*entity.Destination, error) {
	return &updated, nil
}

func (m *mockDestinationDB) DeleteByID(id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockTripDB struct {
	byID map[uint]*entity.Trip
}

func (m *mockTripDB) FindByID(id uint) (*entity.Trip, error) { return m.byID[id], nil }

func (m *mockTripDB) FindAllByUserID(userID uint, page int, size int) ([]entity.Trip, error) {
	return nil, nil
}

func (m *mockTripDB) CountByUserID(userID uint) (int64, error) { return 0, nil }

func (m *mockTripDB) Create(trip entity.Trip) (*entity.Trip, error) { return &trip, nil }

func (m *mockTripDB) UpdateByID(id uint, updated entity.Trip) (*entity.Trip, error) {
	return &updated, nil
}

func (m *mockTripDB) DeleteByID(id uint) error { return nil }

func fixtures() (*mockDestinationDB, *mockTripDB) {
	destDB := &mockDestinationDB{byID: map[uint]*entity.Destination{
		1: {ID: 1, TripID: 1, City: "Alger", Country: "Algérie"},
	}}
	tripDB := &mockTripDB{byID: map[uint]*entity.Trip{
		1: {ID: 1, UserID: 10},
	}}
	return destDB, tripDB
}

func TestGetDestinationResolvesOwnershipThroughTrip(t *testing.T) {
	destDB, tripDB := fixtures()
	uc := NewDestinationUseCase(destDB, tripDB)

	destination, err := uc.GetDestination(10, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alger", destination.City)

	_, err = uc.GetDestination(11, 1)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = uc.GetDestination(10, 99)
	assert.ErrorIs(t, err, ErrDestinationNotFound)
}

func TestListByTripChecksOwnership(t *testing.T) {
	destDB, tripDB := fixtures()
	destDB.byTrip = []entity.Destination{{ID: 1, TripID: 1}}
	uc := NewDestinationUseCase(destDB, tripDB)

	destinations, err := uc.ListByTrip(10, 1)
	require.NoError(t, err)
	assert.Len(t, destinations, 1)

	_, err = uc.ListByTrip(11, 1)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = uc.ListByTrip(10, 99)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestCreateDestinationRequiresOwnedTrip(t *testing.T) {
	destDB, tripDB := fixtures()
	uc := NewDestinationUseCase(destDB, tripDB)

	dto := model.CreateDestinationDTO{City: "Oran", Country: "DZ", TripID: 1}
	created, err := uc.CreateDestination(10, dto)
	require.NoError(t, err)
	assert.Equal(t, "Oran", created.City)
	assert.Equal(t, uint(1), created.TripID)

	_, err = uc.CreateDestination(11, dto)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateDestinationAppliesOnlyProvidedFields(t *testing.T) {
	destDB, tripDB := fixtures()
	uc := NewDestinationUseCase(destDB, tripDB)

	city := "Constantine"
	updated, err := uc.UpdateDestination(10, 1, model.UpdateDestinationDTO{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Constantine", updated.City)
	assert.Equal(t, "Algérie", updated.Country)
}

func TestDeleteDestinationRequiresOwnership(t *testing.T) {
	destDB, tripDB := fixtures()
	uc := NewDestinationUseCase(destDB, tripDB)

	err := uc.DeleteDestination(11, 1)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, destDB.deleted)

	err = uc.DeleteDestination(10, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, destDB.deleted)
}
