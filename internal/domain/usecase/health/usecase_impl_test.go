package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-api/internal/domain/model"
)

type mockHealthDB struct {
	status model.ComponentHealthStatus
}

func (m *mockHealthDB) Health() model.ComponentHealthStatus { return m.status }

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

func TestCheckAllUp(t *testing.T) {
	uc := NewHealthUseCase(
		&mockHealthDB{status: model.ComponentHealthStatus{Status: model.StatusUp}},
		&mockPinger{},
	)

	response := uc.Check(context.Background())
	assert.Equal(t, model.StatusUp, response.Status)
	assert.Equal(t, model.StatusUp, response.Database.Status)
	assert.Equal(t, model.StatusUp, response.Redis.Status)
}

func TestCheckDatabaseDown(t *testing.T) {
	uc := NewHealthUseCase(
		&mockHealthDB{status: model.ComponentHealthStatus{Status: model.StatusDown}},
		&mockPinger{},
	)

	response := uc.Check(context.Background())
	assert.Equal(t, model.StatusDown, response.Status)
}

func TestCheckRedisDownCarriesDetails(t *testing.T) {
	uc := NewHealthUseCase(
		&mockHealthDB{status: model.ComponentHealthStatus{Status: model.StatusUp}},
		&mockPinger{err: errors.New("connection refused")},
	)

	response := uc.Check(context.Background())
	assert.Equal(t, model.StatusDown, response.Status)
	assert.Equal(t, "connection refused", response.Redis.Details["error"])
}
