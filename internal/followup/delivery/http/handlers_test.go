package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nurse-manager/internal/followup"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/response"
	"nurse-manager/pkg/scope"
)

type stubUseCase struct {
	followup.UseCase

	pending      followup.PendingOutput
	task         model.Task
	err          error
	lastComplete followup.CompleteTaskInput
	lastCreate   followup.CreateTaskInput
}

func (s *stubUseCase) Pending(ctx context.Context) (followup.PendingOutput, error) {
	return s.pending, s.err
}

func (s *stubUseCase) Create(ctx context.Context, in followup.CreateTaskInput) (model.Task, error) {
	s.lastCreate = in
	return s.task, s.err
}

func (s *stubUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	return s.task, s.err
}

func (s *stubUseCase) Complete(ctx context.Context, in followup.CompleteTaskInput) (model.Task, error) {
	s.lastComplete = in
	return s.task, s.err
}

func newRouter(uc followup.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)

	r := gin.New()
	rg := r.Group("/followups", func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), scope.Scope{UserID: 7, Username: "manager", Role: "manager"})
		c.Request = c.Request.WithContext(ctx)
	})
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Detail)
	rg.POST("/:id/complete", h.Complete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &stubUseCase{pending: followup.PendingOutput{
		Count:       1,
		Items:       []model.Task{{ID: 3, Description: "Review PTO", Priority: model.PriorityHigh}},
		DaysOverdue: followup.DefaultDaysOverdue,
	}}
	w := do(newRouter(uc), http.MethodGet, "/followups", "")

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var body struct {
		Data pendingResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Count != 1 || body.Data.Items[0].ID != 3 || body.Data.DaysOverdue != 3 {
		t.Errorf("unexpected payload: %+v", body.Data)
	}
}

func TestCreate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &stubUseCase{task: model.Task{ID: 9, Description: "Order gloves", Status: model.TaskStatusPending, Priority: model.PriorityLow, CreatedAt: time.Now()}}
		w := do(newRouter(uc), http.MethodPost, "/followups", `{"description":"Order gloves","priority":"low"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
		}
		if uc.lastCreate.Priority != model.PriorityLow {
			t.Errorf("priority = %q", uc.lastCreate.Priority)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{}), http.MethodPost, "/followups", `{"description":"x","priority":"asap"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		w := do(newRouter(&stubUseCase{}), http.MethodPost, "/followups", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestDetailAndComplete(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		err      error
		wantCode int
	}{
		{name: "detail ok", method: http.MethodGet, path: "/followups/4", wantCode: http.StatusOK},
		{name: "detail bad id", method: http.MethodGet, path: "/followups/abc", wantCode: http.StatusBadRequest},
		{name: "detail not found", method: http.MethodGet, path: "/followups/4", err: followup.ErrTaskNotFound, wantCode: http.StatusNotFound},
		{name: "complete no body", method: http.MethodPost, path: "/followups/4/complete", wantCode: http.StatusOK},
		{name: "complete with notes", method: http.MethodPost, path: "/followups/4/complete", body: `{"notes":"called vendor"}`, wantCode: http.StatusOK},
		{name: "complete twice", method: http.MethodPost, path: "/followups/4/complete", err: followup.ErrTaskAlreadyCompleted, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{task: model.Task{ID: 4, Description: "Audit", Status: model.TaskStatusCompleted}, err: tt.err}
			w := do(newRouter(uc), tt.method, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.method == http.MethodPost && tt.err == nil && uc.lastComplete.CompletedBy != 7 {
				t.Errorf("CompletedBy = %d, want caller id", uc.lastComplete.CompletedBy)
			}
		})
	}
}

func TestMapErrorDefault(t *testing.T) {
	h := New(log.NewNop(), &stubUseCase{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, h.mapError(context.DeadlineExceeded), nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", w.Code)
	}
}
