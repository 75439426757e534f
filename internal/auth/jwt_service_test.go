package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"huddle/internal/model"
)

func TestJWTService_MintAndResolve(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.MintSession(42, model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sess := service.ResolveToken(token)
	assert.NotNil(t, sess)
	assert.Equal(t, uint(42), sess.UserID)
	assert.Equal(t, model.RoleAdmin, sess.Role)
	assert.True(t, sess.Expiry.After(time.Now()))
}

func TestJWTService_ResolveToken_Failures(t *testing.T) {
	service := NewJWTService("test-secret")

	// Token signed with a different secret.
	otherService := NewJWTService("other-secret")
	foreign, err := otherService.MintSession(1, model.RoleAdmin)
	assert.NoError(t, err)

	// Token that expired an hour ago, signed with the right secret.
	expiredClaims := &Claims{
		UserID: 1,
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty value", raw: ""},
		{name: "garbage value", raw: "not-a-token"},
		{name: "wrong signature", raw: foreign},
		{name: "expired token", raw: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, service.ResolveToken(tt.raw))
		})
	}
}

func TestJWTService_ResolveSession_AdminCookieWins(t *testing.T) {
	service := NewJWTService("test-secret")

	adminToken, err := service.MintSession(1, model.RoleAdmin)
	assert.NoError(t, err)
	employeeToken, err := service.MintSession(2, model.RoleEmployee)
	assert.NoError(t, err)

	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: EmployeeCookie, Value: employeeToken})
	r.AddCookie(&http.Cookie{Name: AdminCookie, Value: adminToken})

	sess := service.ResolveSession(r)
	assert.NotNil(t, sess)
	assert.Equal(t, uint(1), sess.UserID)
	assert.Equal(t, model.RoleAdmin, sess.Role)
}

func TestJWTService_ResolveSession_FallsBackToEmployee(t *testing.T) {
	service := NewJWTService("test-secret")

	employeeToken, err := service.MintSession(7, model.RoleEmployee)
	assert.NoError(t, err)

	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: AdminCookie, Value: "tampered"})
	r.AddCookie(&http.Cookie{Name: EmployeeCookie, Value: employeeToken})

	sess := service.ResolveSession(r)
	assert.NotNil(t, sess)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, model.RoleEmployee, sess.Role)
}

func TestJWTService_ResolveSession_NoCookies(t *testing.T) {
	service := NewJWTService("test-secret")

	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, service.ResolveSession(r))
}
