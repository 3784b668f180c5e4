package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/model"
	"travel-api/internal/domain/usecase/destination"
	"travel-api/pkg/util/numberutils"
)

type DestinationController struct {
	api     *echo.Group
	useCase destination.UseCase
}

func NewDestinationController(api *echo.Group, useCase destination.UseCase) *DestinationController {
	return &DestinationController{api: api, useCase: useCase}
}

// InitDestinationRoutes initializes destination routes
func (controller *DestinationController) InitDestinationRoutes() {
	controller.api.GET("/destinations/:id", controller.GetDestination)
	controller.api.GET("/trips/:id/destinations", controller.ListByTrip)
	controller.api.POST("/destinations", controller.CreateDestination)
	controller.api.PUT("/destinations/:id", controller.UpdateDestination)
	controller.api.DELETE("/destinations/:id", controller.DeleteDestination)
}

// GetDestination godoc
// @Summary Get a destination
// @Description Retrieve a destination of one of the authenticated user's trips
// @Tags destinations
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Destination ID"
// @Success 200 {object} entity.Destination "Destination"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Destination not found"
// @Router /destinations/{id} [get]
func (controller *DestinationController) GetDestination(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid destination id"})
	}

	found, err := controller.useCase.GetDestination(userID, id)
	if err != nil {
		return destinationError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// ListByTrip godoc
// @Summary List the destinations of a trip
// @Description Retrieve every destination of one of the authenticated user's trips
// @Tags destinations
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Trip ID"
// @Success 200 {array} entity.Destination "Destinations"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /trips/{id}/destinations [get]
func (controller *DestinationController) ListByTrip(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	tripID, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid trip id"})
	}

	destinations, err := controller.useCase.ListByTrip(userID, tripID)
	if err != nil {
		return destinationError(c, err)
	}
	return c.JSON(http.StatusOK, destinations)
}

// CreateDestination godoc
// @Summary Add a destination to a trip
// @Description Create a destination in one of the authenticated user's trips
// @Tags destinations
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param destination body model.CreateDestinationDTO true "Destination data"
// @Success 201 {object} entity.Destination "Created destination"
// @Failure 400 {object} map[string]string "Invalid request body or missing required fields"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Trip not found"
// @Router /destinations [post]
func (controller *DestinationController) CreateDestination(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}

	var dto model.CreateDestinationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if dto.City == "" || dto.Country == "" || dto.TripID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city, country and tripId are required"})
	}

	created, err := controller.useCase.CreateDestination(userID, dto)
	if err != nil {
		return destinationError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateDestination godoc
// @Summary Update a destination
// @Description Update fields of a destination in one of the authenticated user's trips
// @Tags destinations
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Destination ID"
// @Param destination body model.UpdateDestinationDTO true "Fields to update"
// @Success 200 {object} entity.Destination "Updated destination"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Destination not found"
// @Router /destinations/{id} [put]
func (controller *DestinationController) UpdateDestination(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid destination id"})
	}

	var dto model.UpdateDestinationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.UpdateDestination(userID, id, dto)
	if err != nil {
		return destinationError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteDestination godoc
// @Summary Delete a destination
// @Description Delete a destination and its weather records
// @Tags destinations
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Destination ID"
// @Success 204 "Destination deleted"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 403 {object} map[string]string "Trip belongs to another user"
// @Failure 404 {object} map[string]string "Destination not found"
// @Router /destinations/{id} [delete]
func (controller *DestinationController) DeleteDestination(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid destination id"})
	}

	if err := controller.useCase.DeleteDestination(userID, id); err != nil {
		return destinationError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func destinationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, destination.ErrDestinationNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Destination not found"})
	case errors.Is(err, destination.ErrTripNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Trip not found"})
	case errors.Is(err, destination.ErrNotOwner):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Trip belongs to another user"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
