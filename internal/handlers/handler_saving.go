package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/dto"
	"github.com/savesphere/savings_tracker_app/internal/middleware"
)

// savingHandler handles HTTP requests related to savings entries.
type savingHandler struct {
	savingService portssvc.SavingSvcFacade
}

// newSavingHandler creates a new savingHandler.
func newSavingHandler(ss portssvc.SavingSvcFacade) *savingHandler {
	return &savingHandler{
		savingService: ss,
	}
}

// RegisterSavingRoutes registers all savings-related routes.
func RegisterSavingRoutes(rg *gin.RouterGroup, savingService portssvc.SavingSvcFacade) {
	h := newSavingHandler(savingService)

	userSavings := rg.Group("/users/:id/savings")
	{
		userSavings.POST("", h.createSaving)
		userSavings.GET("", h.listSavings)
	}

	savings := rg.Group("/savings")
	{
		savings.GET("/:savingID", h.getSaving)
		savings.PUT("/:savingID", h.updateSaving)
		savings.DELETE("/:savingID", h.deleteSaving)
	}
}

// createSaving godoc
// @Summary Record a deposit
// @Description Records a new savings deposit for the user
// @Tags savings
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   saving body dto.CreateSavingRequest true "Deposit details"
// @Success 201 {object} dto.SavingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/savings [post]
func (h *savingHandler) createSaving(c *gin.Context) {
	userID := c.Param("id")
	var req dto.CreateSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	saving, err := h.savingService.CreateSaving(c.Request.Context(), userID, req, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to record deposit")
		return
	}

	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Deposit recorded",
		slog.String("saving_id", saving.TransactionID),
		slog.String("user_id", userID),
		slog.String("amount", saving.Amount.String()),
	)
	c.JSON(http.StatusCreated, dto.ToSavingResponse(saving))
}

// listSavings godoc
// @Summary List a user's deposits
// @Description Retrieves a page of the user's deposits, newest first
// @Tags savings
// @Produce  json
// @Param   id path string true "User ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListSavingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/savings [get]
func (h *savingHandler) listSavings(c *gin.Context) {
	userID := c.Param("id")
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	savings, nextToken, err := h.savingService.ListSavings(c.Request.Context(), userID, params.Limit, params.NextToken, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to list deposits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSavingsResponse(savings, nextToken))
}

// getSaving godoc
// @Summary Get a deposit by ID
// @Description Retrieves a specific deposit
// @Tags savings
// @Produce  json
// @Param   savingID path string true "Saving ID"
// @Success 200 {object} dto.SavingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings/{savingID} [get]
func (h *savingHandler) getSaving(c *gin.Context) {
	savingID := c.Param("savingID")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	saving, err := h.savingService.GetSavingByID(c.Request.Context(), savingID, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve deposit")
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingResponse(saving))
}

// updateSaving godoc
// @Summary Amend a deposit
// @Description Updates a deposit's amount or description. Rejected when the
// @Description change would leave the balance negative.
// @Tags savings
// @Accept  json
// @Produce  json
// @Param   savingID path string true "Saving ID"
// @Param   saving body dto.UpdateSavingRequest true "Fields to update"
// @Success 200 {object} dto.SavingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Failure 409 {object} ErrorResponse "Change would overdraw balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings/{savingID} [put]
func (h *savingHandler) updateSaving(c *gin.Context) {
	savingID := c.Param("savingID")
	var req dto.UpdateSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	saving, err := h.savingService.UpdateSaving(c.Request.Context(), savingID, req, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update deposit")
		return
	}

	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Deposit updated", slog.String("saving_id", savingID))
	c.JSON(http.StatusOK, dto.ToSavingResponse(saving))
}

// deleteSaving godoc
// @Summary Remove a deposit
// @Description Marks a deposit as deleted. Rejected when the removal would
// @Description leave the balance negative.
// @Tags savings
// @Produce  json
// @Param   savingID path string true "Saving ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Failure 409 {object} ErrorResponse "Removal would overdraw balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings/{savingID} [delete]
func (h *savingHandler) deleteSaving(c *gin.Context) {
	savingID := c.Param("savingID")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.savingService.DeleteSaving(c.Request.Context(), savingID, loggedInUserID); err != nil {
		respondWithError(c, err, "Failed to delete deposit")
		return
	}

	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Deposit deleted", slog.String("saving_id", savingID))
	c.Status(http.StatusNoContent)
}
