package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "unauthenticated", err: ErrUnauthenticated, expectedStatus: http.StatusUnauthorized, expectedCode: "UNAUTHENTICATED"},
		{name: "unauthorized", err: ErrUnauthorized, expectedStatus: http.StatusForbidden, expectedCode: "UNAUTHORIZED"},
		{name: "team not found", err: ErrTeamNotFound, expectedStatus: http.StatusNotFound, expectedCode: "TEAM_NOT_FOUND"},
		{name: "stale invite code", err: ErrInviteNotFound, expectedStatus: http.StatusNotFound, expectedCode: "INVITE_NOT_FOUND"},
		{name: "owner immune", err: ErrOwnerImmune, expectedStatus: http.StatusBadRequest, expectedCode: "OWNER_IMMUNE"},
		{name: "not a member", err: ErrNotTeamMember, expectedStatus: http.StatusBadRequest, expectedCode: "NOT_TEAM_MEMBER"},
		{name: "unknown error is not leaked", err: errors.New("sql: connection refused"), expectedStatus: http.StatusInternalServerError, expectedCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
			if tt.expectedCode == "INTERNAL_ERROR" {
				assert.Equal(t, "internal server error", httpErr.Message)
			} else {
				assert.Equal(t, tt.err.Error(), httpErr.Message)
			}
		})
	}
}

func TestFailure(t *testing.T) {
	res := Failure(ErrOwnerImmune)
	assert.False(t, res.Success)
	assert.Equal(t, "owner cannot be expelled from the team", res.Error)

	assert.True(t, OK.Success)
	assert.Empty(t, OK.Error)
}
