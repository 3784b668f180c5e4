package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/model"
	"travel-api/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth)
}

// CheckHealth godoc
// @Summary Health check
// @Description Report the health of the service and its dependencies
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} model.HealthResponse "All dependencies up"
// @Failure 503 {object} model.HealthResponse "A dependency is down"
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	response := controller.useCase.Check(c.Request().Context())

	status := http.StatusOK
	if response.Status == model.StatusDown {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, response)
}
