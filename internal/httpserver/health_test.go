package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nurse-manager/pkg/log"
)

func newSystemServer() HTTPServer {
	gin.SetMode(gin.TestMode)
	srv := HTTPServer{
		gin:         gin.New(),
		l:           log.NewNop(),
		environment: "test",
	}
	srv.registerSystemRoutes()
	return srv
}

func TestSystemRoutes(t *testing.T) {
	srv := newSystemServer()

	tests := []struct {
		path       string
		wantCode   int
		wantStatus string
	}{
		{"/health", http.StatusOK, "healthy"},
		{"/live", http.StatusOK, "alive"},
		{"/ready", http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantStatus == "" {
				return
			}

			var body struct {
				Data map[string]string `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Data["status"] != tt.wantStatus || body.Data["service"] != ServiceName {
				t.Errorf("data = %v", body.Data)
			}
		})
	}
}

func TestNewValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 5000}},
		{"missing port", Config{Mode: gin.TestMode}},
		{"missing dependencies", Config{Port: 5000, Mode: gin.TestMode}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}
