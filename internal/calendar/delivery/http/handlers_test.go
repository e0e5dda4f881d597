package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/scope"
)

type stubUseCase struct {
	calendar.UseCase

	err       error
	lastInput calendar.CreateEventInput
}

func (s *stubUseCase) Create(ctx context.Context, in calendar.CreateEventInput) (model.CalendarEvent, error) {
	s.lastInput = in
	return model.CalendarEvent{ID: 1, Title: in.Title}, s.err
}

func (s *stubUseCase) Delete(ctx context.Context, id int64) error {
	return s.err
}

func TestCreateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		err      error
		wantCode int
	}{
		{name: "create with when", method: http.MethodPost, path: "/calendar", body: `{"title":"Huddle","when":"tomorrow"}`, wantCode: http.StatusCreated},
		{name: "create with date", method: http.MethodPost, path: "/calendar", body: `{"title":"Huddle","event_date":"2025-05-20T09:00:00Z"}`, wantCode: http.StatusCreated},
		{name: "create missing title", method: http.MethodPost, path: "/calendar", body: `{"when":"tomorrow"}`, wantCode: http.StatusBadRequest},
		{name: "create no date", method: http.MethodPost, path: "/calendar", body: `{"title":"Huddle"}`, err: calendar.ErrDateRequired, wantCode: http.StatusBadRequest},
		{name: "delete ok", method: http.MethodDelete, path: "/calendar/3", wantCode: http.StatusOK},
		{name: "delete missing", method: http.MethodDelete, path: "/calendar/3", err: calendar.ErrEventNotFound, wantCode: http.StatusNotFound},
		{name: "delete bad id", method: http.MethodDelete, path: "/calendar/x", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			h := New(log.NewNop(), uc)

			r := gin.New()
			r.Use(func(c *gin.Context) {
				c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), scope.Scope{UserID: 5}))
			})
			r.POST("/calendar", h.Create)
			r.DELETE("/calendar/:id", h.Delete)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.method == http.MethodPost && tt.wantCode == http.StatusCreated && uc.lastInput.UserID != 5 {
				t.Errorf("UserID = %d, want 5", uc.lastInput.UserID)
			}
		})
	}
}
