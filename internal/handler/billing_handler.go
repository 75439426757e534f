package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"huddle/internal/auth"
	"huddle/internal/service"
)

// BillingHandler handles subscription endpoints.
type BillingHandler struct {
	billingService service.BillingService
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(billingService service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// ChangePlanRequest represents a plan change request.
type ChangePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=FREE STANDARD PREMIUM"`
}

// GetSubscription godoc
// @Summary Get the team's subscription
// @Tags billing
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} model.Subscription
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/{teamId}/billing [get]
func (h *BillingHandler) GetSubscription(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	sub, err := h.billingService.GetSubscription(c.Request().Context(), sess.UserID, teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sub)
}

// ChangePlan godoc
// @Summary Change the team's subscription plan
// @Tags billing
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body ChangePlanRequest true "Plan"
// @Success 200 {object} model.Subscription
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/billing/plan [put]
func (h *BillingHandler) ChangePlan(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req ChangePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.billingService.ChangePlan(c.Request().Context(), sess.UserID, teamID, req.Plan)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sub)
}
