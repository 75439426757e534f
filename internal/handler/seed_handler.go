package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"huddle/internal/errors"
	"huddle/internal/seed"
)

// SeedHandler provisions demo data for local development.
type SeedHandler struct {
	repos seed.Repos
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(repos seed.Repos) *SeedHandler {
	return &SeedHandler{repos: repos}
}

// SeedDemo godoc
// @Summary Seed the demo workspace
// @Tags seed
// @Produce json
// @Success 200 {object} errors.Result
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	if err := seed.Demo(c.Request().Context(), h.repos); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to seed demo data",
			Code:  "SEED_FAILED",
		})
	}
	return c.JSON(http.StatusOK, errors.OK)
}
