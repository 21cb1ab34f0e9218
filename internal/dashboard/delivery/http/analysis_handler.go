package http

import (
	"net/http"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/service"
	"golang-trading-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles HTTP requests for the analysis archive.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.QueryAnalysis)
	g.GET("/health", h.Health)
}

// QueryAnalysis godoc
// @Summary Query archived analyses
// @Description Get one page of AI analyses, latest first. A searchTerm that is a record id returns only that record.
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalysisQueryRequest   true    "Page, search term and filters"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis [post]
func (h *AnalysisHandler) QueryAnalysis(c echo.Context) error {
	var req dto.AnalysisQueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	page, err := h.analysisService.QueryAnalysis(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.AnalysisResponse{Success: true, AnalysisPage: *page})
}

// Health godoc
// @Summary Analysis store health
// @Description Count the archived analyses to check the store is reachable
// @Tags analysis
// @Produce  json
// @Success 200 {object} dto.AnalysisHealth
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/health [get]
func (h *AnalysisHandler) Health(c echo.Context) error {
	health, err := h.analysisService.Health(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, health)
}
