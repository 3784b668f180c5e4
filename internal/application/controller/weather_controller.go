package controller

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/usecase/weather"
	"travel-api/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/destination/:id", controller.GetDestinationWeather)
	controller.api.POST("/weather/destination/:id/forecast", controller.RefreshForecast)
	controller.api.GET("/weather/trip/:id", controller.GetTripWeather)
	controller.api.GET("/weather/city/:city", controller.LookupCity)
	controller.api.POST("/weather/refresh", controller.RefreshAllForecasts)
}

// GetDestinationWeather godoc
// @Summary Get weather for a destination
// @Description Retrieve current conditions (cached or freshly fetched) and the stored forecast series for a destination
// @Tags weather
// @Accept json
// @Produce json
// @Param id path int true "Destination ID"
// @Param forceRefresh query bool false "Bypass the cache and query the provider" default(false)
// @Success 200 {object} model.DestinationWeatherResponse "Destination weather"
// @Failure 400 {object} map[string]string "Invalid destination id"
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/destination/{id} [get]
func (controller *WeatherController) GetDestinationWeather(c echo.Context) error {
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid destination id"})
	}
	forceRefresh := numberutils.ToBoolWithDefault(c.QueryParam("forceRefresh"), false)

	response, err := controller.useCase.GetDestinationWeather(id, forceRefresh)
	if err != nil {
		if errors.Is(err, weather.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Destination not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, response)
}

// RefreshForecast godoc
// @Summary Refresh the forecast of a destination
// @Description Fetch the multi-day forecast from the provider and replace the stored series
// @Tags weather
// @Accept json
// @Produce json
// @Param id path int true "Destination ID"
// @Success 200 {object} model.ForecastRefreshResponse "Refreshed forecast"
// @Failure 400 {object} map[string]string "Invalid destination id"
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/destination/{id}/forecast [post]
func (controller *WeatherController) RefreshForecast(c echo.Context) error {
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid destination id"})
	}

	response, err := controller.useCase.RefreshForecast(id)
	if err != nil {
		if errors.Is(err, weather.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Destination not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, response)
}

// GetTripWeather godoc
// @Summary Get weather for a whole trip
// @Description Retrieve current conditions for every destination of a trip
// @Tags weather
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} model.TripWeatherResponse "Trip weather"
// @Failure 400 {object} map[string]string "Invalid trip id"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/trip/{id} [get]
func (controller *WeatherController) GetTripWeather(c echo.Context) error {
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid trip id"})
	}

	response, err := controller.useCase.GetTripWeather(id)
	if err != nil {
		if errors.Is(err, weather.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, response)
}

// LookupCity godoc
// @Summary Look up current weather for a city
// @Description Query the provider directly for a city without persisting anything
// @Tags weather
// @Accept json
// @Produce json
// @Param city path string true "City name"
// @Param country query string false "Country name or ISO code"
// @Success 200 {object} external.CurrentWeatherResponse "Current conditions"
// @Failure 404 {object} map[string]string "City not found or provider unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/city/{city} [get]
func (controller *WeatherController) LookupCity(c echo.Context) error {
	city := c.Param("city")
	country := c.QueryParam("country")

	response, err := controller.useCase.LookupCity(city, country)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if response == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "City not found"})
	}
	return c.JSON(http.StatusOK, response)
}

// RefreshAllForecasts godoc
// @Summary Schedule a forecast refresh for all destinations
// @Description Fan out a forecast refresh message per destination onto the queue
// @Tags weather
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Refresh scheduled"
// @Router /weather/refresh [post]
func (controller *WeatherController) RefreshAllForecasts(c echo.Context) error {
	requestID := uuid.NewString()

	// Execute in a separate goroutine to avoid blocking the request
	go func() {
		controller.useCase.EnqueueAllForecastRefreshes(requestID)
	}()

	return c.JSON(http.StatusAccepted, map[string]string{
		"message":   "Forecast refresh scheduled",
		"requestId": requestID,
	})
}
