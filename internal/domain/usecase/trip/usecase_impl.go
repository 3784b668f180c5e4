package trip

import (
	"fmt"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/gateway/db"
	"travel-api/internal/domain/model"
)

type tripUseCase struct {
	tripDB db.TripGateway
}

func NewTripUseCase(tripDB db.TripGateway) UseCase {
	return &tripUseCase{tripDB: tripDB}
}

func (uc *tripUseCase) GetTrip(userID uint, tripID uint) (*entity.Trip, error) {
	return uc.findOwnedTrip(userID, tripID)
}

func (uc *tripUseCase) ListTrips(userID uint, page int, size int) (*model.Page[entity.Trip], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}

	trips, err := uc.tripDB.FindAllByUserID(userID, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for user %d: %w", userID, err)
	}

	total, err := uc.tripDB.CountByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips for user %d: %w", userID, err)
	}

	return model.NewPage(trips, page, size, total), nil
}

func (uc *tripUseCase) CreateTrip(userID uint, dto model.CreateTripDTO) (*entity.Trip, error) {
	trip := entity.Trip{
		Name:        dto.Name,
		Description: dto.Description,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		UserID:      userID,
	}

	created, err := uc.tripDB.Create(trip)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip for user %d: %w", userID, err)
	}
	return created, nil
}

func (uc *tripUseCase) UpdateTrip(userID uint, tripID uint, dto model.UpdateTripDTO) (*entity.Trip, error) {
	trip, err := uc.findOwnedTrip(userID, tripID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		trip.Name = *dto.Name
	}
	if dto.Description != nil {
		trip.Description = *dto.Description
	}
	if dto.StartDate != nil {
		trip.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		trip.EndDate = dto.EndDate
	}

	updated, err := uc.tripDB.UpdateByID(tripID, *trip)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip %d: %w", tripID, err)
	}
	return updated, nil
}

func (uc *tripUseCase) DeleteTrip(userID uint, tripID uint) error {
	if _, err := uc.findOwnedTrip(userID, tripID); err != nil {
		return err
	}

	if err := uc.tripDB.DeleteByID(tripID); err != nil {
		return fmt.Errorf("failed to delete trip %d: %w", tripID, err)
	}
	return nil
}

func (uc *tripUseCase) findOwnedTrip(userID uint, tripID uint) (*entity.Trip, error) {
	trip, err := uc.tripDB.FindByID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip %d: %w", tripID, err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	if trip.UserID != userID {
		return nil, ErrNotOwner
	}
	return trip, nil
}
