package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/domain/entity"
)

type mockUserDB struct {
	byID   map[uint]*entity.User
	byName map[string]*entity.User
}

func (m *mockUserDB) FindByID(id uint) (*entity.User, error) { return m.byID[id], nil }

func (m *mockUserDB) FindByUsername(username string) (*entity.User, error) {
	return m.byName[username], nil
}

func TestGetProfile(t *testing.T) {
	db := &mockUserDB{byID: map[uint]*entity.User{
		10: {ID: 10, Username: "amina", Email: "amina@example.com"},
	}}
	uc := NewUserUseCase(db)

	user, err := uc.GetProfile(10)
	require.NoError(t, err)
	assert.Equal(t, "amina", user.Username)

	_, err = uc.GetProfile(11)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByUsername(t *testing.T) {
	db := &mockUserDB{byName: map[string]*entity.User{
		"amina": {ID: 10, Username: "amina"},
	}}
	uc := NewUserUseCase(db)

	user, err := uc.GetByUsername("amina")
	require.NoError(t, err)
	assert.Equal(t, uint(10), user.ID)

	_, err = uc.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
