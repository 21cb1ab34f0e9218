package http

import (
	"net/http"

	"golang-trading-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": utils.TimeNowUTC(),
	})
}
