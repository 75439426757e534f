package auth

import (
	"huddle/internal/errors"
	"huddle/internal/model"
)

// Guards are the single choke point per privilege level. They are meant to be
// the first call of any privileged operation, before any write begins.

// RequireAuth fails when no session was resolved.
func RequireAuth(sess *Session) (*Session, error) {
	if sess == nil {
		return nil, errors.ErrUnauthenticated
	}
	return sess, nil
}

// RequireAdmin fails unless the session holds the admin role.
func RequireAdmin(sess *Session) (*Session, error) {
	sess, err := RequireAuth(sess)
	if err != nil {
		return nil, err
	}
	if sess.Role != model.RoleAdmin {
		return nil, errors.ErrUnauthorized
	}
	return sess, nil
}

// RequireEmployee fails unless the session holds the employee role.
func RequireEmployee(sess *Session) (*Session, error) {
	sess, err := RequireAuth(sess)
	if err != nil {
		return nil, err
	}
	if sess.Role != model.RoleEmployee {
		return nil, errors.ErrUnauthorized
	}
	return sess, nil
}
