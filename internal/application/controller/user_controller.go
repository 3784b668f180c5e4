package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/usecase/user"
)

type UserController struct {
	api     *echo.Group
	useCase user.UseCase
}

func NewUserController(api *echo.Group, useCase user.UseCase) *UserController {
	return &UserController{api: api, useCase: useCase}
}

// InitUserRoutes initializes user routes
func (controller *UserController) InitUserRoutes() {
	controller.api.GET("/users/me", controller.GetProfile)
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Description Retrieve the profile of the user identified by the auth header
// @Tags users
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Success 200 {object} entity.User "User profile"
// @Failure 401 {object} map[string]string "Missing or invalid user header"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/me [get]
func (controller *UserController) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing user identity"})
	}

	profile, err := controller.useCase.GetProfile(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, profile)
}
