package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"huddle/internal/auth"
	"huddle/internal/errors"
	"huddle/internal/service"
)

// TeamHandler handles team lifecycle, membership, invites, and theming.
type TeamHandler struct {
	teamService    service.TeamService
	billingService service.BillingService
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService service.TeamService, billingService service.BillingService) *TeamHandler {
	return &TeamHandler{teamService: teamService, billingService: billingService}
}

// CreateTeamRequest represents a team creation request.
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// JoinTeamRequest represents a join-by-invite-code request.
type JoinTeamRequest struct {
	Code string `json:"code" validate:"required,min=6,max=16"`
}

// UpdateThemeRequest represents a theme color change request.
type UpdateThemeRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

// InviteResponse carries a freshly generated invite code.
type InviteResponse struct {
	Code string `json:"code"`
}

// CreateTeam godoc
// @Summary Create a team owned by the caller
// @Tags teams
// @Accept json
// @Produce json
// @Param request body CreateTeamRequest true "Team data"
// @Success 201 {object} model.Team
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}

	var req CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.teamService.CreateTeam(c.Request().Context(), sess.UserID, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	// Every team starts on the free plan.
	if _, err := h.billingService.EnsureSubscription(c.Request().Context(), team.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, team)
}

// GetTeam godoc
// @Summary Get a team by ID
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} model.Team
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c echo.Context) error {
	if _, err := auth.RequireAuth(auth.SessionFrom(c)); err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	team, err := h.teamService.GetTeam(c.Request().Context(), teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, team)
}

// GenerateInvite godoc
// @Summary Regenerate the team's invite code
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} InviteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/invite [post]
func (h *TeamHandler) GenerateInvite(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	code, err := h.teamService.GenerateInvite(c.Request().Context(), sess.UserID, teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, InviteResponse{Code: code})
}

// JoinTeam godoc
// @Summary Join a team by invite code
// @Tags teams
// @Accept json
// @Produce json
// @Param request body JoinTeamRequest true "Invite code"
// @Success 200 {object} model.Team
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/join [post]
func (h *TeamHandler) JoinTeam(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}

	var req JoinTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.teamService.JoinByCode(c.Request().Context(), sess.UserID, req.Code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, team)
}

// SwitchTeam godoc
// @Summary Switch the caller's active team (owner only)
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} model.Team
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/switch [post]
func (h *TeamHandler) SwitchTeam(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	team, err := h.teamService.SwitchTeam(c.Request().Context(), sess.UserID, teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, team)
}

// KickMember godoc
// @Summary Remove a member from the team
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Param userId path int true "User ID"
// @Success 200 {object} errors.Result
// @Failure 400 {object} errors.Result
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/members/{userId} [delete]
func (h *TeamHandler) KickMember(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid userId",
			Code:  "INVALID_USER_ID",
		})
	}

	if err := h.teamService.KickMember(c.Request().Context(), sess.UserID, uint(targetID), teamID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errors.OK)
}

// UpdateTheme godoc
// @Summary Change the team's theme color
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body UpdateThemeRequest true "Theme color"
// @Success 200 {object} model.Team
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/theme [put]
func (h *TeamHandler) UpdateTheme(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req UpdateThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.teamService.UpdateTheme(c.Request().Context(), sess.UserID, teamID, req.Color)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, team)
}

// ListMembers godoc
// @Summary List the team's members
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/members [get]
func (h *TeamHandler) ListMembers(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	members, err := h.teamService.ListMembers(c.Request().Context(), sess.UserID, teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, members)
}
