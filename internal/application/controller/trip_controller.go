package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/model"
	"travel-api/internal/domain/usecase/trip"
	"travel-api/pkg/util/numberutils"
)

type TripController struct {
	api     *echo.Group
	useCase trip.UseCase
}

func NewTripController(api *echo.Group, useCase trip.UseCase) *TripController {
	return &TripController{api: api, useCase: useCase}
}

// InitTripRoutes initializes trip routes
func (controller *TripController) InitTripRoutes() {
	controller.api.GET("/trips", controller.ListTrips)
	controller.api.GET("/trips/:id", controller.GetTrip)
	controller.api.POST("/trips", controller.CreateTrip)
	controller.api.PUT("/trips/:id", controller.UpdateTrip)
	controller.api.DELETE("/trips/:id", controller.DeleteTrip)
}

// ListTrips godoc
// @Summary List the user's trips
// @Description Retrieve the authenticated user's trips with pagination
// @Tags trips
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} model.Page[entity.Trip] "Paginated list of trips"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [get]
func (controller *TripController) ListTrips(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), 20)

	trips, err := controller.useCase.ListTrips(userID, page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, trips)
}

// GetTrip godoc
// @Summary Get a trip
// @Description Retrieve one of the authenticated user's trips
// @Tags trips
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Trip ID"
// @Success 200 {object} entity.Trip "Trip"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [get]
func (controller *TripController) GetTrip(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid trip id"})
	}

	found, err := controller.useCase.GetTrip(userID, id)
	if err != nil {
		return tripError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip for the authenticated user
// @Tags trips
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param trip body model.CreateTripDTO true "Trip data"
// @Success 201 {object} entity.Trip "Created trip"
// @Failure 400 {object} map[string]string "Invalid request body or missing required fields"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [post]
func (controller *TripController) CreateTrip(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}

	var dto model.CreateTripDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if dto.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	created, err := controller.useCase.CreateTrip(userID, dto)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Update fields of one of the authenticated user's trips
// @Tags trips
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Trip ID"
// @Param trip body model.UpdateTripDTO true "Fields to update"
// @Success 200 {object} entity.Trip "Updated trip"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [put]
func (controller *TripController) UpdateTrip(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid trip id"})
	}

	var dto model.UpdateTripDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.UpdateTrip(userID, id, dto)
	if err != nil {
		return tripError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete one of the authenticated user's trips with its destinations and weather records
// @Tags trips
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Trip ID"
// @Success 204 "Trip deleted"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id} [delete]
func (controller *TripController) DeleteTrip(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid trip id"})
	}

	if err := controller.useCase.DeleteTrip(userID, id); err != nil {
		return tripError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func tripError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, trip.ErrTripNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Trip not found"})
	case errors.Is(err, trip.ErrNotOwner):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Trip belongs to another user"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
