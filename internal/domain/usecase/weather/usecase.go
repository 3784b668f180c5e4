package weather

import (
	"errors"
	"time"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/model"
	"travel-api/internal/domain/model/external"
)

var (
	// ErrDestinationNotFound is returned when the destination does not exist.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrTripNotFound is returned when the trip does not exist.
	ErrTripNotFound = errors.New("trip not found")
)

// UseCase coordinates the weather cache and the external provider: it decides
// when a cached value is fresh enough to serve and when to go back to the
// provider, and it reconciles forecast batches with storage.
type UseCase interface {
	// GetDestinationWeather returns the destination with its current
	// conditions (cache or provider) and stored forecast series.
	GetDestinationWeather(destinationID uint, forceRefresh bool) (*model.DestinationWeatherResponse, error)

	// GetOrFetchCurrent serves the freshest cached current-weather record,
	// or fetches and persists a new one. A nil record with a nil error
	// means the provider was unavailable and nothing fresh is cached; the
	// stale cache, if any, is left in place.
	GetOrFetchCurrent(destination entity.Destination, forceRefresh bool) (*entity.WeatherRecord, error)

	// RefreshForecast replaces the destination's forecast series from the
	// provider. Provider unavailability yields an empty result, not an
	// error.
	RefreshForecast(destinationID uint) (*model.ForecastRefreshResponse, error)

	// RefreshForecastForDestination is the provider-to-storage step of a
	// forecast refresh; days bounds the series at eight points per day.
	RefreshForecastForDestination(destination entity.Destination, days int) ([]entity.WeatherRecord, error)

	// GetTripWeather returns current conditions for every destination of a
	// trip, preserving the destinations' stored order.
	GetTripWeather(tripID uint) (*model.TripWeatherResponse, error)

	// LookupCity queries the provider directly without touching storage.
	// Used for pre-save searches.
	LookupCity(city string, country string) (*external.CurrentWeatherResponse, error)

	// EnqueueAllForecastRefreshes fans out a forecast refresh for every
	// destination onto the queue, batching with keyset pagination.
	EnqueueAllForecastRefreshes(requestID string) error

	// PruneWeatherHistory deletes current-weather history older than the
	// retention window.
	PruneWeatherHistory(retention time.Duration) error
}
