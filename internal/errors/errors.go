package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid session accompanies a request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrUnauthorized is returned when a session lacks the required role or team.
	ErrUnauthorized = errors.New("insufficient privileges")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound is returned when a team is not found.
	ErrTeamNotFound = errors.New("team not found")
	// ErrChannelNotFound is returned when a channel is not found.
	ErrChannelNotFound = errors.New("channel not found")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInviteNotFound is returned when no team matches an invite code.
	ErrInviteNotFound = errors.New("team not found for invite code")
	// ErrOwnerImmune is returned when a kick targets the team owner.
	ErrOwnerImmune = errors.New("owner cannot be expelled from the team")
	// ErrNotTeamMember is returned when the target user does not belong to the team.
	ErrNotTeamMember = errors.New("user is not a member of this team")
	// ErrSubscriptionNotFound is returned when a team has no subscription row.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Result is the structured outcome envelope for data-level failures. Guard
// failures throw instead and are mapped at the route boundary.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Failure builds a failed Result from a domain error.
func Failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// OK is the successful Result.
var OK = Result{Success: true}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUnauthenticated:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case ErrUnauthorized:
		return NewHTTPError(http.StatusForbidden, err.Error(), "UNAUTHORIZED")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrTeamNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TEAM_NOT_FOUND")
	case ErrChannelNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CHANNEL_NOT_FOUND")
	case ErrProjectNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case ErrTaskNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case ErrInviteNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "INVITE_NOT_FOUND")
	case ErrOwnerImmune:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "OWNER_IMMUNE")
	case ErrNotTeamMember:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_TEAM_MEMBER")
	case ErrSubscriptionNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUBSCRIPTION_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
