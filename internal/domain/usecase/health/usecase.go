package health

import (
	"context"

	"travel-api/internal/domain/model"
)

// RedisPinger is the slice of the cache client the health check needs.
type RedisPinger interface {
	Ping(ctx context.Context) error
}

// UseCase aggregates the health of the service's dependencies.
type UseCase interface {
	Check(ctx context.Context) model.HealthResponse
}
