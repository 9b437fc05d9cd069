package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/dto"
	"github.com/savesphere/savings_tracker_app/internal/middleware"
)

// reportingHandler handles HTTP requests for aggregate savings reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers all reporting routes. All of them are
// admin-only, enforced by the service layer.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/monthly", h.getMonthlySavings)
		reports.GET("/top-savers", h.getTopSavers)
	}
}

// getSummary godoc
// @Summary Community savings summary
// @Description Retrieves community-wide savings totals (admin only)
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SavingsSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.GetSavingsSummary(c.Request.Context(), loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to build savings summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingsSummaryResponse(summary))
}

// getMonthlySavings godoc
// @Summary Monthly savings report
// @Description Retrieves per-month deposit totals for the trailing months (admin only)
// @Tags reports
// @Produce  json
// @Param   months query int false "Number of trailing months" default(12)
// @Success 200 {object} dto.MonthlySavingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySavings(c *gin.Context) {
	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.MonthlyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.GetMonthlySavings(c.Request.Context(), params.Months, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to build monthly savings report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySavingsResponse(rows))
}

// getTopSavers godoc
// @Summary Top savers leaderboard
// @Description Retrieves the users with the highest gross deposits (admin only)
// @Tags reports
// @Produce  json
// @Param   limit query int false "Number of entries" default(10)
// @Success 200 {object} dto.TopSaversResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-savers [get]
func (h *reportingHandler) getTopSavers(c *gin.Context) {
	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.TopSaversParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.GetTopSavers(c.Request.Context(), params.Limit, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to build top savers report")
		return
	}

	c.JSON(http.StatusOK, dto.ToTopSaversResponse(rows))
}
