package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authRouter(t *testing.T) (*gin.Engine, *int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var gotUserID int64
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		gotUserID = c.GetInt64(UserIDKey)
		c.Status(http.StatusOK)
	})
	return r, &gotUserID
}

func signToken(t *testing.T, secret string, subject string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r, gotUserID := authRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, strconv.FormatInt(42, 10), time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 42, *gotUserID)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cases := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"missing header", func(*http.Request) {}},
		{"not bearer", func(r *http.Request) {
			r.Header.Set("Authorization", "Basic abc")
		}},
		{"wrong secret", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "42", time.Hour))
		}},
		{"expired", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "42", -time.Hour))
		}},
		{"non-numeric subject", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin@example.com", time.Hour))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := authRouter(t)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
