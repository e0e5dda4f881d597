package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nurse-manager/internal/auth"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/scope"
)

type stubUseCase struct {
	auth.UseCase
	out  auth.AuthOutput
	user model.User
	err  error
}

func (s *stubUseCase) Login(ctx context.Context, in auth.LoginInput) (auth.AuthOutput, error) {
	return s.out, s.err
}

func (s *stubUseCase) Me(ctx context.Context, id int64) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	u := s.user
	u.ID = id
	return u, nil
}

func (s *stubUseCase) Register(ctx context.Context, in auth.RegisterInput) (model.User, error) {
	return model.User{ID: 9, Username: in.Username, Role: in.Role}, s.err
}

func newRouter(uc auth.UseCase, withScope bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if withScope {
			ctx := scope.SetScopeToContext(c.Request.Context(), scope.Scope{UserID: 4, Username: "admin", Role: "admin"})
			c.Request = c.Request.WithContext(ctx)
		}
	})
	r.POST("/login", h.Login)
	r.GET("/me", h.Me)
	r.POST("/register", h.Register)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &stubUseCase{out: auth.AuthOutput{
			Tokens: scope.Tokens{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900},
			User:   model.User{ID: 1, Username: "admin", Role: model.RoleAdmin},
		}}
		w := do(newRouter(uc, false), http.MethodPost, "/login", `{"username":"admin","password":"pw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}

		var body struct {
			Data tokenResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Data.AccessToken != "a" || body.Data.TokenType != "Bearer" || body.Data.User.Role != "admin" {
			t.Errorf("data = %+v", body.Data)
		}
		if strings.Contains(w.Body.String(), "password") {
			t.Error("response leaks password fields")
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{err: auth.ErrInvalidCredentials}, false), http.MethodPost, "/login", `{"username":"a","password":"b"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{}, false), http.MethodPost, "/login", `{"username":"a"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestMe(t *testing.T) {
	t.Run("uses scope user", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{user: model.User{Username: "admin"}}, true), http.MethodGet, "/me", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":4`) {
			t.Errorf("code = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("no scope", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{}, false), http.MethodGet, "/me", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"created", `{"username":"sarah.chen","password":"password1","full_name":"Sarah Chen"}`, nil, http.StatusCreated},
		{"duplicate", `{"username":"sarah.chen","password":"password1","full_name":"Sarah Chen"}`, auth.ErrUsernameTaken, http.StatusConflict},
		{"bad role", `{"username":"sarah.chen","password":"password1","full_name":"Sarah Chen","role":"chief"}`, nil, http.StatusBadRequest},
		{"weak password", `{"username":"sarah.chen","password":"pw","full_name":"Sarah Chen"}`, auth.ErrWeakPassword, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&stubUseCase{err: tt.err}, true), http.MethodPost, "/register", tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}
