package db

import (
	"travel-api/internal/domain/entity"
)

// DestinationGateway persists destinations.
type DestinationGateway interface {
	FindByID(id uint) (*entity.Destination, error)
	FindByTripID(tripID uint) ([]entity.Destination, error)

	// FindAllWithKeysetPagination walks every destination ordered by ID,
	// returning at most size rows with ID greater than lastID. Used by the
	// scheduled forecast refresh to fan out without OFFSET scans.
	FindAllWithKeysetPagination(lastID uint, size int) ([]entity.Destination, error)

	Create(destination entity.Destination) (*entity.Destination, error)
	UpdateByID(id uint, updated entity.Destination) (*entity.Destination, error)
	DeleteByID(id uint) error
}
