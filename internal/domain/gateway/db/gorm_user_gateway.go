package db

import (
	"errors"

	"gorm.io/gorm"

	"travel-api/internal/domain/entity"
)

// GormUserGateway implements UserGateway.
type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
