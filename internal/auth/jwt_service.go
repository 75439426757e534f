package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionTTL is the duration for which session tokens are valid.
const SessionTTL = 24 * time.Hour

// Token namespaces. Admin and employee sessions live in separate cookies,
// each independently signed with the same secret.
const (
	AdminCookie    = "admin_session"
	EmployeeCookie = "employee_session"
)

// Claims represents the signed session payload.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session is a verified, time-bounded proof of identity and role.
type Session struct {
	UserID   uint
	Role     string
	IssuedAt time.Time
	Expiry   time.Time
}

// JWTService mints and verifies signed session tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// MintSession generates a signed session token for the user.
func (s *JWTService) MintSession(userID uint, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken validates a session token and returns its claims.
func (s *JWTService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ResolveToken turns a raw cookie value into a Session. Any failure (empty
// value, bad signature, expiry) yields nil; absence of a session is a normal
// outcome, not an error.
func (s *JWTService) ResolveToken(raw string) *Session {
	if raw == "" {
		return nil
	}
	claims, err := s.VerifyToken(raw)
	if err != nil {
		return nil
	}
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
