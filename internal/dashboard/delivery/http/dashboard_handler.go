package http

import (
	"errors"
	"net/http"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/service"
	"golang-trading-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles HTTP requests for the combined dashboard view.
type DashboardHandler struct {
	dashboardService service.DashboardService
	refreshService   service.RefreshService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, refreshService service.RefreshService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		refreshService:   refreshService,
		logger:           logger,
	}
}

// RegisterRoutes registers the dashboard routes to the Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.FetchAll)
	g.GET("/latest", h.Latest)
}

// FetchAll godoc
// @Summary Fetch every dashboard section
// @Description Load the account snapshot, open positions, the requested page of closed positions and the stats concurrently. A failed section carries its own error.
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Param   request  body    dto.DashboardRequest   false    "Closed positions page and filters"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /dashboard [post]
func (h *DashboardHandler) FetchAll(c echo.Context) error {
	var req dto.DashboardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	snap := h.dashboardService.FetchAll(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, dto.DashboardResponse{Success: !snap.Failed(), DashboardSnapshot: *snap})
}

// Latest godoc
// @Summary Get the latest refreshed dashboard
// @Description Get the snapshot published by the periodic refresher
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/latest [get]
func (h *DashboardHandler) Latest(c echo.Context) error {
	snap, err := h.refreshService.Latest(c.Request().Context())
	if errors.Is(err, service.ErrNoSnapshot) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.logger.Error("Failed to read latest dashboard snapshot", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.DashboardResponse{Success: !snap.Failed(), DashboardSnapshot: *snap})
}
