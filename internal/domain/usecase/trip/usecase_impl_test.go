package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/model"
)

type mockTripDB struct {
	byID    map[uint]*entity.Trip
	created *entity.Trip
	updated *entity.Trip
	deleted []uint
	byUser  []entity.Trip
	count   int64
}

func (m *mockTripDB) FindByID(id uint) (*entity.Trip, error) { return m.byID[id], nil }

func (m *mockTripDB) FindAllByUserID(userID uint, page int, size int) ([]entity.Trip, error) {
	return m.byUser, nil
}

func (m *mockTripDB) CountByUserID(userID uint) (int64, error) { return m.count, nil }

func (m *mockTripDB) Create(trip entity.Trip) (*entity.Trip, error) {
	trip.ID = 1
	m.created = &trip
	return &trip, nil
}

func (m *mockTripDB) UpdateByID(id uint, updated entity.Trip) (*entity.Trip, error) {
	m.updated = &updated
	return &updated, nil
}

func (m *mockTripDB) DeleteByID(id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func TestGetTripOwnershipEnforced(t *testing.T) {
	db := &mockTripDB{byID: map[uint]*entity.Trip{
		1: {ID: 1, UserID: 10, Name: "Côte d'Azur"},
	}}
	uc := NewTripUseCase(db)

	trip, err := uc.GetTrip(10, 1)
	require.NoError(t, err)
	assert.Equal(t, "Côte d'Azur", trip.Name)

	_, err = uc.GetTrip(11, 1)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = uc.GetTrip(10, 2)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestListTripsBuildsPage(t *testing.T) {
	db := &mockTripDB{
		byUser: []entity.Trip{{ID: 1, UserID: 10}, {ID: 2, UserID: 10}},
		count:  5,
	}
	uc := NewTripUseCase(db)

	page, err := uc.ListTrips(10, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.NumberOfElements)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
}

func TestCreateTripStampsOwner(t *testing.T) {
	db := &mockTripDB{byID: map[uint]*entity.Trip{}}
	uc := NewTripUseCase(db)

	created, err := uc.CreateTrip(10, model.CreateTripDTO{Name: "Vacances d'été"})
	require.NoError(t, err)
	assert.Equal(t, uint(10), created.UserID)
	assert.Equal(t, "Vacances d'été", created.Name)
}

func TestUpdateTripAppliesOnlyProvidedFields(t *testing.T) {
	db := &mockTripDB{byID: map[uint]*entity.Trip{
		1: {ID: 1, UserID: 10, Name: "Old name", Description: "Old description"},
	}}
	uc := NewTripUseCase(db)

	name := "New name"
	updated, err := uc.UpdateTrip(10, 1, model.UpdateTripDTO{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, "Old description", updated.Description)
}

func TestDeleteTripRequiresOwnership(t *testing.T) {
	db := &mockTripDB{byID: map[uint]*entity.Trip{
		1: {ID: 1, UserID: 10},
	}}
	uc := NewTripUseCase(db)

	err := uc.DeleteTrip(11, 1)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, db.deleted)

	err = uc.DeleteTrip(10, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, db.deleted)
}
