package db

import (
	"errors"

	"gorm.io/gorm"

	"travel-api/internal/domain/entity"
)

// GormDestinationGateway implements DestinationGateway.
type GormDestinationGateway struct {
	DB *gorm.DB
}

var _ DestinationGateway = (*GormDestinationGateway)(nil)

func NewGormDestinationGateway(db *gorm.DB) *GormDestinationGateway {
	return &GormDestinationGateway{DB: db}
}

func (gateway *GormDestinationGateway) FindByID(id uint) (*entity.Destination, error) {
	var destination entity.Destination
	err := gateway.DB.First(&destination, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (gateway *GormDestinationGateway) FindByTripID(tripID uint) ([]entity.Destination, error) {
	destinations := make([]entity.Destination, 0)
	err := gateway.DB.
		Where("trip_id = ?", tripID).
		Order("id ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (gateway *GormDestinationGateway) FindAllWithKeysetPagination(lastID uint, size int) ([]entity.Destination, error) {
	destinations := make([]entity.Destination, 0)
	query := gateway.DB.Order("id ASC").Limit(size)
	if lastID > 0 {
		query = query.Where("id > ?", lastID)
	}
	if err := query.Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (gateway *GormDestinationGateway) Create(destination entity.Destination) (*entity.Destination, error) {
	destination.ID = 0
	if err := gateway.DB.Create(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

func (gateway *GormDestinationGateway) UpdateByID(id uint, updated entity.Destination) (*entity.Destination, error) {
	existing, err := gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updated.ID = existing.ID
	updated.TripID = existing.TripID
	updated.CreatedAt = existing.CreatedAt
	if err := gateway.DB.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes a destination and its weather records. The weather rows
// go first so the delete does not depend on database-level cascades.
func (gateway *GormDestinationGateway) DeleteByID(id uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_id = ?", id).Delete(&entity.WeatherRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Destination{}, id).Error
	})
}
