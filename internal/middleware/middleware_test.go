package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func signToken(t *testing.T, subject, issuer string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(issuer string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()), AuthMiddleware(testSecret, issuer))
	r.GET("/whoami", func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		issuer     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + signToken(t, "user-1", "bizbooks", time.Hour), issuer: "bizbooks", wantStatus: http.StatusOK, wantBody: "user-1"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", header: "Token abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + signToken(t, "user-1", "", -time.Minute), wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "wrong issuer", header: "Bearer " + signToken(t, "user-1", "someone-else", time.Hour), issuer: "bizbooks", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "missing subject", header: "Bearer " + signToken(t, "", "", time.Hour), wantStatus: http.StatusUnauthorized, wantBody: "Invalid token claims"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.issuer)
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiterInstance, err := NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(RateLimit(limiterInstance))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_Fallback(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(nil, nil))
	assert.Equal(t, custom, GetLoggerFromCtx(WithLogger(context.Background(), custom)))
}
