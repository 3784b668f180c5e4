package destination

import (
	"fmt"
	"strings"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/gateway/db"
	"travel-api/internal/domain/model"
)

type destinationUseCase struct {
	destinationDB db.DestinationGateway
	tripDB        db.TripGateway
}

func NewDestinationUseCase(destinationDB db.DestinationGateway, tripDB db.TripGateway) UseCase {
	return &destinationUseCase{
		destinationDB: destinationDB,
		tripDB:        tripDB,
	}
}

func (uc *destinationUseCase) GetDestination(userID uint, destinationID uint) (*entity.Destination, error) {
	return uc.findOwnedDestination(userID, destinationID)
}

func (uc *destinationUseCase) ListByTrip(userID uint, tripID uint) ([]entity.Destination, error) {
	if err := uc.checkTripOwnership(userID, tripID); err != nil {
		return nil, err
	}

	destinations, err := uc.destinationDB.FindByTripID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations of trip %d: %w", tripID, err)
	}
	return destinations, nil
}

func (uc *destinationUseCase) CreateDestination(userID uint, dto model.CreateDestinationDTO) (*entity.Destination, error) {
	if err := uc.checkTripOwnership(userID, dto.TripID); err != nil {
		return nil, err
	}

	destination := entity.Destination{
		City:          strings.TrimSpace(dto.City),
		Country:       strings.TrimSpace(dto.Country),
		ArrivalDate:   dto.ArrivalDate,
		DepartureDate: dto.DepartureDate,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		TripID:        dto.TripID,
	}

	created, err := uc.destinationDB.Create(destination)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination in trip %d: %w", dto.TripID, err)
	}
	return created, nil
}

func (uc *destinationUseCase) UpdateDestination(userID uint, destinationID uint, dto model.UpdateDestinationDTO) (*entity.Destination, error) {
	destination, err := uc.findOwnedDestination(userID, destinationID)
	if err != nil {
		return nil, err
	}

	if dto.City != nil {
		destination.City = *dto.City
	}
	if dto.Country != nil {
		destination.Country = *dto.Country
	}
	if dto.ArrivalDate != nil {
		destination.ArrivalDate = dto.ArrivalDate
	}
	if dto.DepartureDate != nil {
		destination.DepartureDate = dto.DepartureDate
	}
	if dto.Latitude != nil {
		destination.Latitude = dto.Latitude
	}
	if dto.Longitude != nil {
		destination.Longitude = dto.Longitude
	}

	updated, err := uc.destinationDB.UpdateByID(destinationID, *destination)
	if err != nil {
		return nil, fmt.Errorf("failed to update destination %d: %w", destinationID, err)
	}
	return updated, nil
}

func (uc *destinationUseCase) DeleteDestination(userID uint, destinationID uint) error {
	if _, err := uc.findOwnedDestination(userID, destinationID); err != nil {
		return err
	}

	if err := uc.destinationDB.DeleteByID(destinationID); err != nil {
		return fmt.Errorf("failed to delete destination %d: %w", destinationID, err)
	}
	return nil
}

func (uc *destinationUseCase) findOwnedDestination(userID uint, destinationID uint) (*entity.Destination, error) {
	destination, err := uc.destinationDB.FindByID(destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination %d: %w", destinationID, err)
	}
	if destination == nil {
		return nil, ErrDestinationNotFound
	}

	if err := uc.checkTripOwnership(userID, destination.TripID); err != nil {
		return nil, err
	}
	return destination, nil
}

func (uc *destinationUseCase) checkTripOwnership(userID uint, tripID uint) error {
	trip, err := uc.tripDB.FindByID(tripID)
	if err != nil {
		return fmt.Errorf("failed to load trip %d: %w", tripID, err)
	}
	if trip == nil {
		return ErrTripNotFound
	}
	if trip.UserID != userID {
		return ErrNotOwner
	}
	return nil
}
