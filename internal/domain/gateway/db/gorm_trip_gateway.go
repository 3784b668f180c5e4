package db

import (
	"errors"

	"gorm.io/gorm"

	"travel-api/internal/domain/entity"
)

// GormTripGateway implements TripGateway.
type GormTripGateway struct {
	DB *gorm.DB
}

var _ TripGateway = (*GormTripGateway)(nil)

func NewGormTripGateway(db *gorm.DB) *GormTripGateway {
	return &GormTripGateway{DB: db}
}

func (gateway *GormTripGateway) FindByID(id uint) (*entity.Trip, error) {
	var trip entity.Trip
	err := gateway.DB.First(&trip, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (gateway *GormTripGateway) FindAllByUserID(userID uint, page int, size int) ([]entity.Trip, error) {
	if page < 0 {
		page = 0
	}

	trips := make([]entity.Trip, 0)
	err := gateway.DB.
		Where("user_id = ?", userID).
		Order("id ASC").
		Offset(page * size).
		Limit(size).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (gateway *GormTripGateway) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := gateway.DB.
		Model(&entity.Trip{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (gateway *GormTripGateway) Create(trip entity.Trip) (*entity.Trip, error) {
	trip.ID = 0
	if err := gateway.DB.Create(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (gateway *GormTripGateway) UpdateByID(id uint, updated entity.Trip) (*entity.Trip, error) {
	existing, err := gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	if err := gateway.DB.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes a trip with its destinations and their weather records.
func (gateway *GormTripGateway) DeleteByID(id uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		var destinationIDs []uint
		if err := tx.Model(&entity.Destination{}).
			Where("trip_id = ?", id).
			Pluck("id", &destinationIDs).Error; err != nil {
			return err
		}

		if len(destinationIDs) > 0 {
			if err := tx.Where("destination_id IN ?", destinationIDs).
				Delete(&entity.WeatherRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("trip_id = ?", id).
				Delete(&entity.Destination{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&entity.Trip{}, id).Error
	})
}
