package db

import (
	"travel-api/internal/domain/entity"
)

// UserGateway reads users. Account management lives in the upstream auth
// service; this API only needs existence and profile lookups.
type UserGateway interface {
	FindByID(id uint) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}
