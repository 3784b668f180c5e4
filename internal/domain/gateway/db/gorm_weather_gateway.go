package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"travel-api/internal/domain/entity"
)

// GormWeatherGateway implements WeatherGateway on the relational store.
type GormWeatherGateway struct {
	DB *gorm.DB
}

var _ WeatherGateway = (*GormWeatherGateway)(nil)

func NewGormWeatherGateway(db *gorm.DB) *GormWeatherGateway {
	return &GormWeatherGateway{DB: db}
}

// Save inserts one weather record, stamping the fetch timestamp.
func (gateway *GormWeatherGateway) Save(destinationID uint, record entity.WeatherRecord, forecastAt *time.Time) (*entity.WeatherRecord, error) {
	record.ID = 0
	record.DestinationID = destinationID
	record.ForecastAt = forecastAt
	record.FetchedAt = time.Now().UTC()

	if err := gateway.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindFreshCurrent returns the newest current-weather record fetched within
// maxAge, or nil when none qualifies. The cutoff comparison is inclusive.
func (gateway *GormWeatherGateway) FindFreshCurrent(destinationID uint, maxAge time.Duration) (*entity.WeatherRecord, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	var record entity.WeatherRecord
	err := gateway.DB.
		Where("destination_id = ? AND forecast_at IS NULL AND fetched_at >= ?", destinationID, cutoff).
		Order("fetched_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ReplaceForecast swaps the destination's forecast set inside one
// transaction. Concurrent refreshes for the same destination serialize on the
// row deletes, so readers never observe a mixed set.
func (gateway *GormWeatherGateway) ReplaceForecast(destinationID uint, records []entity.WeatherRecord) ([]entity.WeatherRecord, error) {
	persisted := make([]entity.WeatherRecord, 0, len(records))

	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("destination_id = ? AND forecast_at IS NOT NULL", destinationID).
			Delete(&entity.WeatherRecord{}).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		for i := range records {
			record := records[i]
			record.ID = 0
			record.DestinationID = destinationID
			record.FetchedAt = now
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			persisted = append(persisted, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return persisted, nil
}

// ListForecast returns the destination's forecast series in chronological
// order, capped at limit.
func (gateway *GormWeatherGateway) ListForecast(destinationID uint, limit int) ([]entity.WeatherRecord, error) {
	records := make([]entity.WeatherRecord, 0)
	err := gateway.DB.
		Where("destination_id = ? AND forecast_at IS NOT NULL", destinationID).
		Order("forecast_at ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteOlderThan prunes current-weather history fetched before the cutoff.
func (gateway *GormWeatherGateway) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := gateway.DB.
		Where("forecast_at IS NULL AND fetched_at < ?", cutoff).
		Delete(&entity.WeatherRecord{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
