package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/dto"
	"github.com/savesphere/savings_tracker_app/internal/middleware"
)

// withdrawalHandler handles HTTP requests related to withdrawals.
type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

// newWithdrawalHandler creates a new withdrawalHandler.
func newWithdrawalHandler(ws portssvc.WithdrawalSvcFacade) *withdrawalHandler {
	return &withdrawalHandler{
		withdrawalService: ws,
	}
}

// RegisterWithdrawalRoutes registers all withdrawal-related routes.
func RegisterWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade) {
	h := newWithdrawalHandler(withdrawalService)

	userWithdrawals := rg.Group("/users/:id/withdrawals")
	{
		userWithdrawals.POST("", h.createWithdrawal)
		userWithdrawals.GET("", h.listWithdrawals)
	}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.GET("/:withdrawalID", h.getWithdrawal)
	}
}

// createWithdrawal godoc
// @Summary Record a withdrawal
// @Description Authorizes a withdrawal against the user's available balance and
// @Description records it. The check and the write happen atomically.
// @Tags withdrawals
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/withdrawals [post]
func (h *withdrawalHandler) createWithdrawal(c *gin.Context) {
	userID := c.Param("id")
	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	withdrawal, err := h.withdrawalService.CreateWithdrawal(c.Request.Context(), userID, req, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to record withdrawal")
		return
	}

	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Withdrawal recorded",
		slog.String("withdrawal_id", withdrawal.TransactionID),
		slog.String("user_id", userID),
		slog.String("amount", withdrawal.Amount.String()),
	)
	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(withdrawal))
}

// listWithdrawals godoc
// @Summary List a user's withdrawals
// @Description Retrieves a page of the user's withdrawals, newest first
// @Tags withdrawals
// @Produce  json
// @Param   id path string true "User ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListWithdrawalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/withdrawals [get]
func (h *withdrawalHandler) listWithdrawals(c *gin.Context) {
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

	withdrawals, nextToken, err := h.withdrawalService.ListWithdrawals(c.Request.Context(), userID, params.Limit, params.NextToken, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to list withdrawals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWithdrawalsResponse(withdrawals, nextToken))
}

// getWithdrawal godoc
// @Summary Get a withdrawal by ID
// @Description Retrieves a specific withdrawal
// @Tags withdrawals
// @Produce  json
// @Param   withdrawalID path string true "Withdrawal ID"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Withdrawal not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /withdrawals/{withdrawalID} [get]
func (h *withdrawalHandler) getWithdrawal(c *gin.Context) {
	withdrawalID := c.Param("withdrawalID")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	withdrawal, err := h.withdrawalService.GetWithdrawalByID(c.Request.Context(), withdrawalID, loggedInUserID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve withdrawal")
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(withdrawal))
}
