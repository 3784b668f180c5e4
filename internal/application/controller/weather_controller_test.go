package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/domain/entity"
	"travel-api/internal/domain/model"
	"travel-api/internal/domain/model/external"
	"travel-api/internal/domain/usecase/weather"
)

type mockWeatherUseCase struct {
	destinationWeather *model.DestinationWeatherResponse
	destinationErr     error
	refresh            *model.ForecastRefreshResponse
	refreshErr         error
	tripWeather        *model.TripWeatherResponse
	tripErr            error
	lookup             *external.CurrentWeatherResponse
	lastForceRefresh   bool
}

func (m *mockWeatherUseCase) GetDestinationWeather(destinationID uint, forceRefresh bool) (*model.DestinationWeatherResponse, error) {
	m.lastForceRefresh = forceRefresh
	return m.destinationWeather, m.destinationErr
}

func (m *mockWeatherUseCase) GetOrFetchCurrent(destination entity.Destination, forceRefresh bool) (*entity.WeatherRecord, error) {
	return nil, nil
}

func (m *mockWeatherUseCase) RefreshForecast(destinationID uint) (*model.ForecastRefreshResponse, error) {
	return m.refresh, m.refreshErr
}

func (m *mockWeatherUseCase) RefreshForecastForDestination(destination entity.Destination, days int) ([]entity.WeatherRecord, error) {
	return nil, nil
}

func (m *mockWeatherUseCase) GetTripWeather(tripID uint) (*model.TripWeatherResponse, error) {
	return m.tripWeather, m.tripErr
}

func (m *mockWeatherUseCase) LookupCity(city string, country string) (*external.CurrentWeatherResponse, error) {
	return m.lookup, nil
}

func (m *mockWeatherUseCase) EnqueueAllForecastRefreshes(requestID string) error { return nil }

func (m *mockWeatherUseCase) PruneWeatherHistory(retention time.Duration) error { return nil }

func newWeatherTestServer(useCase weather.UseCase) (*echo.Echo, *WeatherController) {
	e := echo.New()
	api := e.Group("")
	controller := NewWeatherController(api, useCase)
	controller.InitWeatherRoutes()
	return e, controller
}

func TestGetDestinationWeatherOK(t *testing.T) {
	useCase := &mockWeatherUseCase{
		destinationWeather: &model.DestinationWeatherResponse{
			Destination:    entity.Destination{ID: 1, City: "Paris"},
			CurrentWeather: &entity.WeatherRecord{ID: 7, Temperature: 20},
		},
	}
	e, _ := newWeatherTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/weather/destination/1?forceRefresh=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, useCase.lastForceRefresh)

	var body model.DestinationWeatherResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Paris", body.Destination.City)
	require.NotNil(t, body.CurrentWeather)
	assert.Equal(t, 20.0, body.CurrentWeather.Temperature)
}

func TestGetDestinationWeatherNotFound(t *testing.T) {
	useCase := &mockWeatherUseCase{destinationErr: weather.ErrDestinationNotFound}
	e, _ := newWeatherTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/weather/destination/99", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDestinationWeatherBadID(t *testing.T) {
	e, _ := newWeatherTestServer(&mockWeatherUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/weather/destination/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshForecastOK(t *testing.T) {
	useCase := &mockWeatherUseCase{
		refresh: &model.ForecastRefreshResponse{Message: "refreshed", Count: 3},
	}
	e, _ := newWeatherTestServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/weather/destination/1/forecast", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body model.ForecastRefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
}

func TestGetTripWeatherNotFound(t *testing.T) {
	useCase := &mockWeatherUseCase{tripErr: weather.ErrTripNotFound}
	e, _ := newWeatherTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/weather/trip/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLookupCityProviderUnavailable(t *testing.T) {
	e, _ := newWeatherTestServer(&mockWeatherUseCase{lookup: nil})

	req := httptest.NewRequest(http.MethodGet, "/weather/city/Atlantis", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshAllForecastsAccepted(t *testing.T) {
	e, _ := newWeatherTestServer(&mockWeatherUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/weather/refresh", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["requestId"])
}
