package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"huddle/internal/errors"
)

// respondError routes a domain error to the right failure shape. Guard-level
// failures (unauthenticated/unauthorized) throw an echo HTTPError that the
// boundary turns into a 401/403 JSON body; data-level failures come back as
// a structured {success:false, error} envelope so the UI can render them
// without treating the response as a crash.
func respondError(c echo.Context, err error) error {
	switch err {
	case errors.ErrUnauthenticated, errors.ErrUnauthorized:
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.Code == "INTERNAL_ERROR" {
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(httpErr.StatusCode, errors.Failure(err))
}

// parseUUIDParam reads a UUID path parameter or fails with a 400.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}
