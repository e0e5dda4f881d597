package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nurse-manager/config"
	"nurse-manager/internal/middleware"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/scope"
)

type fakeJWT struct {
	scopes map[string]scope.Scope
}

func (f fakeJWT) CreateTokens(s scope.Scope) (scope.Tokens, error) {
	return scope.Tokens{}, errors.New("not implemented")
}

func (f fakeJWT) VerifyAccessToken(token string) (scope.Scope, error) {
	s, ok := f.scopes[token]
	if !ok {
		return scope.Scope{}, scope.ErrInvalidToken
	}
	return s, nil
}

func (f fakeJWT) VerifyRefreshToken(token string) (scope.Scope, error) {
	return scope.Scope{}, scope.ErrInvalidToken
}

func newMiddleware(rate config.RateLimitConfig) middleware.Middleware {
	jwt := fakeJWT{scopes: map[string]scope.Scope{
		"nurse-token": {UserID: 2, Username: "sarah.chen", Role: "nurse"},
		"admin-token": {UserID: 1, Username: "admin", Role: "admin"},
	}}
	return middleware.New(log.NewNop(), jwt, config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}, rate)
}

func TestAuthAndRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(config.RateLimitConfig{})

	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.Username)
	})
	r.GET("/admin", mw.Auth(), mw.RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "missing header", path: "/me", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", path: "/me", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "invalid token", path: "/me", header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "valid token", path: "/me", header: "Bearer nurse-token", wantCode: http.StatusOK, wantBody: "sarah.chen"},
		{name: "role denied", path: "/admin", header: "Bearer nurse-token", wantCode: http.StatusForbidden},
		{name: "role allowed", path: "/admin", header: "Bearer admin-token", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2})

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[i] = w.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request code = %d, want 429", codes[2])
	}

	t.Run("other client unaffected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		off := newMiddleware(config.RateLimitConfig{})
		r := gin.New()
		r.GET("/ping", off.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d code = %d", i, w.Code)
			}
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(config.RateLimitConfig{})

	r := gin.New()
	r.GET("/id", mw.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("propagates header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Body.String() != "abc-123" || w.Header().Get(middleware.RequestIDHeader) != "abc-123" {
			t.Errorf("body = %q, header = %q", w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
		}
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
		if len(w.Body.String()) != 36 {
			t.Errorf("generated id = %q", w.Body.String())
		}
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newMiddleware(config.RateLimitConfig{})

	r := gin.New()
	r.Use(mw.CORS())
	r.GET("/data", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/data", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("code = %d, want 204", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})
}
