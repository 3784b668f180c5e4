package db

import (
	"gorm.io/gorm"

	"travel-api/internal/domain/model"
)

// GormHealthGateway implements HealthDBGateway by pinging the underlying
// connection pool.
type GormHealthGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthGateway)(nil)

func NewGormHealthGateway(db *gorm.DB) *GormHealthGateway {
	return &GormHealthGateway{DB: db}
}

func (gateway *GormHealthGateway) Health() model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return down(err)
	}

	if err := sqlDB.Ping(); err != nil {
		return down(err)
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}

func down(err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"message": err.Error(),
		},
	}
}
