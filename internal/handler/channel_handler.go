package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"huddle/internal/auth"
	"huddle/internal/errors"
	"huddle/internal/service"
)

// ChannelHandler handles channel endpoints.
type ChannelHandler struct {
	channelService service.ChannelService
}

// NewChannelHandler creates a new channel handler.
func NewChannelHandler(channelService service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// CreateChannelRequest represents a channel creation request.
type CreateChannelRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CreateChannel godoc
// @Summary Create a channel in the team
// @Tags channels
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body CreateChannelRequest true "Channel data"
// @Success 201 {object} model.Channel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/channels [post]
func (h *ChannelHandler) CreateChannel(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req CreateChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	channel, err := h.channelService.CreateChannel(c.Request().Context(), sess.UserID, teamID, req.Name, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, channel)
}

// ListChannels godoc
// @Summary List the team's channels
// @Tags channels
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {array} model.Channel
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/channels [get]
func (h *ChannelHandler) ListChannels(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	channels, err := h.channelService.ListChannels(c.Request().Context(), sess.UserID, teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, channels)
}

// DeleteChannel godoc
// @Summary Delete a channel
// @Tags channels
// @Produce json
// @Param teamId path string true "Team ID"
// @Param channelId path string true "Channel ID"
// @Success 200 {object} errors.Result
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/{teamId}/channels/{channelId} [delete]
func (h *ChannelHandler) DeleteChannel(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}
	channelID, err := parseUUIDParam(c, "channelId")
	if err != nil {
		return err
	}

	if err := h.channelService.DeleteChannel(c.Request().Context(), sess.UserID, teamID, channelID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errors.OK)
}
