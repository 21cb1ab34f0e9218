package http

import (
	"net/http"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/service"
	"golang-trading-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles HTTP requests for the account and its positions.
type AccountHandler struct {
	accountService  service.AccountService
	statsService    service.StatsService
	positionService service.PositionService
	logger          *logger.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountService, statsService service.StatsService, positionService service.PositionService, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		statsService:    statsService,
		positionService: positionService,
		logger:          logger,
	}
}

// RegisterRoutes registers the account routes to the Echo group.
func (h *AccountHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAccount)
	g.GET("/snapshot", h.GetSnapshot)
	g.GET("/stats", h.GetStats)
	g.POST("/positions", h.QueryPositions)
}

// GetAccount godoc
// @Summary Get the trading account
// @Description Get the singleton account balance snapshot. account is null when none exists.
// @Tags account
// @Produce  json
// @Success 200 {object} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /account [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.accountService.GetAccount(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.AccountResponse{Success: true, Account: account})
}

// GetSnapshot godoc
// @Summary Get the account snapshot
// @Description Get the account with growth, realized and unrealized P&L and the open position count
// @Tags account
// @Produce  json
// @Success 200 {object} dto.SnapshotResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /account/snapshot [get]
func (h *AccountHandler) GetSnapshot(c echo.Context) error {
	snapshot, err := h.accountService.GetSnapshot(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.SnapshotResponse{Success: true, Snapshot: *snapshot})
}

// GetStats godoc
// @Summary Get realized P&L stats
// @Description Get max profit, max loss and the signed P&L sums over closed positions
// @Tags account
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /account/stats [get]
func (h *AccountHandler) GetStats(c echo.Context) error {
	stats, err := h.statsService.GetStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: *stats})
}

// QueryPositions godoc
// @Summary Query positions
// @Description Get one page of positions, newest first, with the distinct symbols and position types
// @Tags account
// @Accept  json
// @Produce  json
// @Param   request  body    dto.PositionQueryRequest   true    "Page, status and filters"
// @Success 200 {object} dto.PositionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /account/positions [post]
func (h *AccountHandler) QueryPositions(c echo.Context) error {
	var req dto.PositionQueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	page, err := h.positionService.QueryPositions(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.PositionsResponse{Success: true, PositionPage: *page})
}
