package model

import "travel-api/internal/domain/entity"

// DestinationWeatherResponse is the payload for a destination weather lookup:
// the destination itself, its freshest current conditions (null when the
// provider is unavailable and nothing fresh is cached) and the stored
// forecast series.
type DestinationWeatherResponse struct {
	Destination    entity.Destination     `json:"destination"`
	CurrentWeather *entity.WeatherRecord  `json:"currentWeather"`
	Forecast       []entity.WeatherRecord `json:"forecast"`
}

// ForecastRefreshResponse reports the outcome of a forecast refresh.
type ForecastRefreshResponse struct {
	Message   string                 `json:"message"`
	Count     int                    `json:"count"`
	Forecasts []entity.WeatherRecord `json:"forecasts"`
}

// DestinationCurrentWeather pairs a destination with its current conditions
// inside a trip-wide response.
type DestinationCurrentWeather struct {
	Destination    entity.Destination    `json:"destination"`
	CurrentWeather *entity.WeatherRecord `json:"currentWeather"`
}

// TripWeatherResponse is the payload for a trip-wide weather lookup; entries
// preserve the destinations' stored order.
type TripWeatherResponse struct {
	Trip                entity.Trip                 `json:"trip"`
	DestinationsWeather []DestinationCurrentWeather `json:"destinationsWeather"`
}
