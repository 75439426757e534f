package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"huddle/internal/auth"
	"huddle/internal/errors"
	"huddle/internal/model"
	"huddle/internal/service"
)

// MessageHandler handles chat message endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// PostMessageRequest represents a message posting request. Scope is derived
// from which target fields are set: channel_id for channel messages,
// receiver_id for direct messages, neither for the global stream.
type PostMessageRequest struct {
	Content    string     `json:"content" validate:"required,min=1,max=4000"`
	ChannelID  *uuid.UUID `json:"channel_id,omitempty"`
	ReceiverID *uint      `json:"receiver_id,omitempty"`
}

// PostMessage godoc
// @Summary Post a message (global, channel, or direct)
// @Tags messages
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body PostMessageRequest true "Message"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/messages [post]
func (h *MessageHandler) PostMessage(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ChannelID != nil && req.ReceiverID != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "a message targets a channel or a receiver, not both",
			Code:  "AMBIGUOUS_SCOPE",
		})
	}

	ctx := c.Request().Context()
	var message *model.Message
	switch {
	case req.ChannelID != nil:
		message, err = h.messageService.PostToChannel(ctx, sess.UserID, teamID, *req.ChannelID, req.Content)
	case req.ReceiverID != nil:
		message, err = h.messageService.PostDirect(ctx, sess.UserID, teamID, *req.ReceiverID, req.Content)
	default:
		message, err = h.messageService.PostGlobal(ctx, sess.UserID, teamID, req.Content)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

// ListMessages godoc
// @Summary List messages for one scope
// @Description Scope is selected by query parameters: channel_id for a
// @Description channel stream, with for a direct conversation, neither for
// @Description the global stream. Clients poll with `after` (unix seconds).
// @Tags messages
// @Produce json
// @Param teamId path string true "Team ID"
// @Param channel_id query string false "Channel scope"
// @Param with query int false "Direct-conversation peer"
// @Param after query int false "Unix timestamp cursor"
// @Success 200 {array} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	after := time.Time{}
	if v := c.QueryParam("after"); v != "" {
		secs, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid after timestamp",
				Code:  "INVALID_TIMESTAMP",
			})
		}
		after = time.Unix(secs, 0)
	}

	channelParam := c.QueryParam("channel_id")
	withParam := c.QueryParam("with")
	if channelParam != "" && withParam != "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "a fetch targets a channel or a peer, not both",
			Code:  "AMBIGUOUS_SCOPE",
		})
	}

	ctx := c.Request().Context()
	var messages []model.Message
	switch {
	case channelParam != "":
		channelID, err := uuid.Parse(channelParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid channel_id",
				Code:  "INVALID_UUID",
			})
		}
		messages, err = h.messageService.ListChannel(ctx, sess.UserID, teamID, channelID, after)
		if err != nil {
			return respondError(c, err)
		}
	case withParam != "":
		otherID, err := strconv.ParseUint(withParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid with parameter",
				Code:  "INVALID_USER_ID",
			})
		}
		messages, err = h.messageService.ListDirect(ctx, sess.UserID, teamID, uint(otherID), after)
		if err != nil {
			return respondError(c, err)
		}
	default:
		messages, err = h.messageService.ListGlobal(ctx, sess.UserID, teamID, after)
		if err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, messages)
}
