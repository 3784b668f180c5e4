package destination

import (
	"errors"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/model"
)

var (
	// ErrDestinationNotFound is returned when the destination does not exist.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrTripNotFound is returned when the enclosing trip does not exist.
	ErrTripNotFound = errors.New("trip not found")
	// ErrNotOwner is returned when the enclosing trip belongs to another user.
	ErrNotOwner = errors.New("trip does not belong to user")
)

// UseCase manages the destinations of a trip. Ownership is resolved through
// the enclosing trip: a destination is reachable only by its trip's owner.
type UseCase interface {
	GetDestination(userID uint, destinationID uint) (*entity.Destination, error)
	ListByTrip(userID uint, tripID uint) ([]entity.Destination, error)
	CreateDestination(userID uint, dto model.CreateDestinationDTO) (*entity.Destination, error)
	UpdateDestination(userID uint, destinationID uint, dto model.UpdateDestinationDTO) (*entity.Destination, error)
	DeleteDestination(userID uint, destinationID uint) error
}
