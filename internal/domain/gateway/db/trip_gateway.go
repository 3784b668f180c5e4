package db

import (
	"travel-api/internal/domain/entity"
)

// TripGateway persists trips.
type TripGateway interface {
	FindByID(id uint) (*entity.Trip, error)
	FindAllByUserID(userID uint, page int, size int) ([]entity.Trip, error)
	CountByUserID(userID uint) (int64, error)
	Create(trip entity.Trip) (*entity.Trip, error)
	UpdateByID(id uint, updated entity.Trip) (*entity.Trip, error)
	DeleteByID(id uint) error
}
