package api

import (
	"travel-api/internal/domain/model/external"
)

// WeatherGateway defines the outbound calls to the external weather provider.
//
// Both methods collapse provider failures (network errors, timeouts, non-2xx
// statuses) into a nil response with a nil error: unavailability is the
// expected failure mode of the provider, not an exceptional condition. A
// non-nil error is reserved for local problems building the request.
type WeatherGateway interface {
	// GetCurrent fetches current conditions for a city. The country is
	// free text and is normalized to an ISO2 code before querying.
	GetCurrent(city string, country string) (*external.CurrentWeatherResponse, error)

	// GetForecast fetches the multi-day forecast series for a city, one
	// point roughly every three hours.
	GetForecast(city string, country string) (*external.ForecastResponse, error)
}
