package db

import (
	"time"

	"travel-api/internal/domain/entity"
)

// WeatherGateway persists weather records and answers freshness queries.
//
// A record with a nil forecast timestamp is a current-weather observation; a
// non-nil one is a forecast point. Save always stamps the fetch timestamp.
type WeatherGateway interface {
	// Save inserts one record for the destination. forecastAt nil marks a
	// current-weather record, non-nil a forecast point. Returns the
	// persisted record with its generated identifier.
	Save(destinationID uint, record entity.WeatherRecord, forecastAt *time.Time) (*entity.WeatherRecord, error)

	// FindFreshCurrent returns the most recently fetched current-weather
	// record whose fetch timestamp is within maxAge of now, or nil when
	// none qualifies.
	FindFreshCurrent(destinationID uint, maxAge time.Duration) (*entity.WeatherRecord, error)

	// ReplaceForecast atomically deletes every forecast record of the
	// destination and inserts the given batch. Current-weather records are
	// untouched. On any failure the transaction rolls back and the prior
	// forecast set stays visible.
	ReplaceForecast(destinationID uint, records []entity.WeatherRecord) ([]entity.WeatherRecord, error)

	// ListForecast returns forecast records ordered by forecast timestamp
	// ascending, capped at limit.
	ListForecast(destinationID uint, limit int) ([]entity.WeatherRecord, error)

	// DeleteOlderThan removes current-weather history fetched before the
	// cutoff. Forecast records are left to ReplaceForecast.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
