package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// sessionContextKey is where the resolved session lives on the echo context.
const sessionContextKey = "session"

// ResolveSession reads the session cookies off the request and resolves the
// first valid one, admin namespace first, employee second. Returns nil when
// neither cookie carries a valid token.
func (s *JWTService) ResolveSession(r *http.Request) *Session {
	for _, name := range []string{AdminCookie, EmployeeCookie} {
		c, err := r.Cookie(name)
		if err != nil {
			continue
		}
		if sess := s.ResolveToken(c.Value); sess != nil {
			return sess
		}
	}
	return nil
}

// cookieName picks the token namespace for a role.
func cookieName(role string) string {
	if role == "ADMIN" {
		return AdminCookie
	}
	return EmployeeCookie
}

// SetSessionCookie writes the signed token into the role's cookie namespace.
func SetSessionCookie(c echo.Context, role, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName(role),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL.Seconds()),
	})
}

// ClearSessionCookies expires both token namespaces.
func ClearSessionCookies(c echo.Context) {
	for _, name := range []string{AdminCookie, EmployeeCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

// WithSession stores a resolved session on the echo context.
func WithSession(c echo.Context, sess *Session) {
	c.Set(sessionContextKey, sess)
}

// SessionFrom returns the session placed on the context by the middleware,
// or nil when the request is anonymous.
func SessionFrom(c echo.Context) *Session {
	sess, _ := c.Get(sessionContextKey).(*Session)
	return sess
}

// SessionFromClaims converts verified claims into a Session.
func SessionFromClaims(claims *Claims) *Session {
	sess := &Session{
		UserID: claims.UserID,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		sess.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		sess.Expiry = claims.ExpiresAt.Time
	}
	return sess
}
