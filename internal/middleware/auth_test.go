package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"careercode_backend/internal/auth"
	"careercode_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	email string
	err   error
	calls int
}

func (v *stubVerifier) VerifyIDToken(_ context.Context, _ string) (string, error) {
	v.calls++
	return v.email, v.err
}

func sessionRouter(tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/owned",
		middleware.RequireSessionToken(tokens),
		middleware.RequireEmailMatch(),
		func(c *gin.Context) {
			claims, ok := middleware.GetSessionClaims(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, gin.H{"email": claims.Email})
		},
	)
	// Проверка email без сессионного middleware перед ней
	r.GET("/unguarded", middleware.RequireEmailMatch(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestRequireSessionToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 0)
	router := sessionRouter(tokens)

	valid, err := tokens.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)
	noEmail, err := tokens.Issue(map[string]any{"name": "nobody"})
	require.NoError(t, err)
	numericEmail, err := tokens.Issue(map[string]any{"email": 42})
	require.NoError(t, err)
	foreign, err := auth.NewTokenService("other-secret", 0).Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		cookie      string
		query       string
		wantStatus  int
		wantMessage string
	}{
		{name: "no cookie", query: "a@x.com", wantStatus: http.StatusUnauthorized, wantMessage: "Unauthorized access"},
		{name: "garbage token", cookie: "garbage", query: "a@x.com", wantStatus: http.StatusUnauthorized, wantMessage: "Unauthorized access"},
		{name: "wrong secret", cookie: foreign, query: "a@x.com", wantStatus: http.StatusUnauthorized, wantMessage: "Unauthorized access"},
		{name: "email mismatch", cookie: valid, query: "b@y.com", wantStatus: http.StatusForbidden, wantMessage: "Forbidden access"},
		{name: "case differs", cookie: valid, query: "A@x.com", wantStatus: http.StatusForbidden, wantMessage: "Forbidden access"},
		{name: "email missing", cookie: valid, wantStatus: http.StatusForbidden, wantMessage: "Forbidden access"},
		{name: "session without email, no query", cookie: noEmail, wantStatus: http.StatusForbidden, wantMessage: "Forbidden access"},
		{name: "session with non-string email", cookie: numericEmail, wantStatus: http.StatusForbidden, wantMessage: "Forbidden access"},
		{name: "match", cookie: valid, query: "a@x.com", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/owned?email="+tt.query, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, w))
			} else {
				assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
			}
		})
	}
}

func TestRequireEmailMatch_WithoutSessionGate(t *testing.T) {
	router := sessionRouter(auth.NewTokenService("test-secret", 0))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unguarded?email=a@x.com", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireExternalIdentity(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		verifier    *stubVerifier
		wantStatus  int
		wantMessage string
		wantCalls   int
	}{
		{
			name:        "header absent",
			verifier:    &stubVerifier{email: "b@y.com"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized access",
		},
		{
			name:        "not bearer",
			header:      "Token abc",
			verifier:    &stubVerifier{email: "b@y.com"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized access",
		},
		{
			name:        "provider rejects",
			header:      "Bearer abc",
			verifier:    &stubVerifier{err: auth.ErrInvalidIdentityToken},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unauthorized access",
			wantCalls:   1,
		},
		{
			name:        "provider unreachable",
			header:      "Bearer abc",
			verifier:    &stubVerifier{err: errors.New("dial tcp: timeout")},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unauthorized access",
			wantCalls:   1,
		},
		{
			name:       "verified",
			header:     "Bearer abc",
			verifier:   &stubVerifier{email: "b@y.com"},
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/mine", middleware.RequireExternalIdentity(tt.verifier), func(c *gin.Context) {
				email, _ := middleware.GetTokenEmail(c)
				c.JSON(http.StatusOK, gin.H{"email": email})
			})

			req := httptest.NewRequest(http.MethodGet, "/mine", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalls, tt.verifier.calls)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, w))
			} else {
				assert.JSONEq(t, `{"email":"b@y.com"}`, w.Body.String())
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"http://localhost:5173"}))
	r.GET("/jobs", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	req := httptest.NewRequest(http.MethodOptions, "/jobs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
