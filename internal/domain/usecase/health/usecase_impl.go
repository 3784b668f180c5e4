package health

import (
	"context"
	"time"

	"travel-api/internal/domain/gateway/db"
	"travel-api/internal/domain/model"
)

const pingTimeout = 2 * time.Second

type healthUseCase struct {
	healthDB db.HealthDBGateway
	redis    RedisPinger
}

func NewHealthUseCase(healthDB db.HealthDBGateway, redis RedisPinger) UseCase {
	return &healthUseCase{
		healthDB: healthDB,
		redis:    redis,
	}
}

// Check reports UP only when every dependency answers. Component details are
// kept in the response so a DOWN status points at the failing dependency.
func (uc *healthUseCase) Check(ctx context.Context) model.HealthResponse {
	database := uc.healthDB.Health()
	redis := uc.checkRedis(ctx)

	status := model.StatusUp
	if database.Status == model.StatusDown || redis.Status == model.StatusDown {
		status = model.StatusDown
	}

	return model.HealthResponse{
		Status:   status,
		Database: database,
		Redis:    redis,
	}
}

func (uc *healthUseCase) checkRedis(ctx context.Context) model.ComponentHealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := uc.redis.Ping(pingCtx); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"error": err.Error()},
		}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp}
}
