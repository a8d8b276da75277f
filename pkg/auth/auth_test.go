package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTServiceRequiresKey(t *testing.T) {
	_, err := NewJWTService("", "constru", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService("segredo", "constru", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken("5511999990000", RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5511999990000", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "constru", claims.Issuer)
}

func TestValidateRejects(t *testing.T) {
	svc, _ := NewJWTService("segredo", "constru", time.Hour)
	other, _ := NewJWTService("outro", "constru", time.Hour)

	foreign, _ := other.GenerateToken("u1", "")
	_, err := svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("segredo"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{})
	signed, _ = noSubject.SignedString([]byte("segredo"))
	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func newRouter(svc *JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/conversas", JWTAuthMiddleware(svc), ConversationOwnerMiddleware("user"))
	g.GET("/:user", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r http.Handler, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestMiddleware(t *testing.T) {
	svc, _ := NewJWTService("segredo", "constru", time.Hour)
	r := newRouter(svc)

	owner, _ := svc.GenerateToken("u1", "")
	admin, _ := svc.GenerateToken("ops", RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/conversas/u1", ""))
	assert.Equal(t, http.StatusUnauthorized, get(r, "/conversas/u1", "lixo"))
	assert.Equal(t, http.StatusOK, get(r, "/conversas/u1", owner))
	assert.Equal(t, http.StatusForbidden, get(r, "/conversas/u2", owner))
	assert.Equal(t, http.StatusOK, get(r, "/conversas/u2", admin))
}

func TestMiddlewareDisabled(t *testing.T) {
	r := newRouter(nil)
	assert.Equal(t, http.StatusOK, get(r, "/conversas/u1", ""))
}
