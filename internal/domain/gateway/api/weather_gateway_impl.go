package api

import (
	"fmt"

	"travel-api/internal/domain/model/external"
	"travel-api/pkg/http"
	"travel-api/pkg/log"
	"travel-api/pkg/util/countryutils"
)

// weatherGatewayImpl implements WeatherGateway against the OpenWeatherMap API.
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewWeatherGateway creates a WeatherGateway bound to the given base URL and
// API key. The request timeout comes from the client options.
func NewWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		apiKey:     apiKey,
	}
}

// GetCurrent fetches current conditions from the provider's /weather endpoint.
func (w *weatherGatewayImpl) GetCurrent(city string, country string) (*external.CurrentWeatherResponse, error) {
	successResp, _, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.buildQueryParams(city, country)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		log.Warnf("Weather provider unavailable for current conditions of %s (status %d): %v", city, status, err)
		return nil, nil
	}

	return successResp.(*external.CurrentWeatherResponse), nil
}

// GetForecast fetches the 3-hourly forecast series from the provider's
// /forecast endpoint.
func (w *weatherGatewayImpl) GetForecast(city string, country string) (*external.ForecastResponse, error) {
	successResp, _, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.buildQueryParams(city, country)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		log.Warnf("Weather provider unavailable for forecast of %s (status %d): %v", city, status, err)
		return nil, nil
	}

	return successResp.(*external.ForecastResponse), nil
}

// buildQueryParams assembles the provider query: "{city},{ISO2}" when a
// country code resolves, bare city otherwise, metric units, French condition
// texts.
func (w *weatherGatewayImpl) buildQueryParams(city string, country string) map[string]string {
	location := city
	if code := countryutils.NormalizeISO2(country); code != "" {
		location = fmt.Sprintf("%s,%s", city, code)
	}

	return map[string]string{
		"q":     location,
		"appid": w.apiKey,
		"units": "metric",
		"lang":  "fr",
	}
}
