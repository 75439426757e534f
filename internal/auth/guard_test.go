package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"huddle/internal/errors"
	"huddle/internal/model"
)

func TestGuards(t *testing.T) {
	admin := &Session{UserID: 1, Role: model.RoleAdmin}
	employee := &Session{UserID: 2, Role: model.RoleEmployee}

	tests := []struct {
		name          string
		guard         func(*Session) (*Session, error)
		sess          *Session
		expectedError error
	}{
		{name: "auth with nil session", guard: RequireAuth, sess: nil, expectedError: errors.ErrUnauthenticated},
		{name: "auth with admin", guard: RequireAuth, sess: admin, expectedError: nil},
		{name: "auth with employee", guard: RequireAuth, sess: employee, expectedError: nil},
		{name: "admin with nil session", guard: RequireAdmin, sess: nil, expectedError: errors.ErrUnauthenticated},
		{name: "admin with employee session", guard: RequireAdmin, sess: employee, expectedError: errors.ErrUnauthorized},
		{name: "admin with admin session", guard: RequireAdmin, sess: admin, expectedError: nil},
		{name: "employee with admin session", guard: RequireEmployee, sess: admin, expectedError: errors.ErrUnauthorized},
		{name: "employee with employee session", guard: RequireEmployee, sess: employee, expectedError: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.guard(tt.sess)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.sess, got)
			}
		})
	}
}
