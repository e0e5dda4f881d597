package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "nurse-manager/internal/auth/delivery/http"
	authRepo "nurse-manager/internal/auth/repository/postgre"
	authUC "nurse-manager/internal/auth/usecase"
	"nurse-manager/internal/calendar"
	calendarHTTP "nurse-manager/internal/calendar/delivery/http"
	calendarRepo "nurse-manager/internal/calendar/repository/postgre"
	calendarUC "nurse-manager/internal/calendar/usecase"
	copilotHTTP "nurse-manager/internal/copilot/delivery/http"
	copilotRepo "nurse-manager/internal/copilot/repository/postgre"
	copilotUC "nurse-manager/internal/copilot/usecase"
	emailHTTP "nurse-manager/internal/email/delivery/http"
	emailUC "nurse-manager/internal/email/usecase"
	"nurse-manager/internal/followup"
	followupHTTP "nurse-manager/internal/followup/delivery/http"
	followupRepo "nurse-manager/internal/followup/repository/postgre"
	followupUC "nurse-manager/internal/followup/usecase"
	"nurse-manager/internal/middleware"
	staffingHTTP "nurse-manager/internal/staffing/delivery/http"
	staffingUC "nurse-manager/internal/staffing/usecase"
)

// reminderLeadMinutes is the popup reminder set on mirrored events.
const reminderLeadMinutes = 30

// Each setup follows the same steps: repository, use case, handler, routes.

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(srv.l, repo, srv.jwtManager, srv.encrypter)
	h := authHTTP.New(srv.l, uc)

	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}

func (srv HTTPServer) setupFollowupDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) followup.UseCase {
	repo := followupRepo.New(srv.postgresDB, srv.l)
	uc := followupUC.New(srv.l, repo, srv.detector, srv.roster)
	h := followupHTTP.New(srv.l, uc)

	followupHTTP.RegisterRoutes(api.Group("/followups"), h, mw)

	srv.l.Infof(ctx, "Follow-up domain registered")
	return uc
}

func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) calendar.UseCase {
	repo := calendarRepo.New(srv.postgresDB, srv.l)
	uc := calendarUC.New(srv.l, repo, srv.detector, srv.dateParser, srv.calendarMirror, calendarUC.MirrorConfig{
		CalendarID:      srv.calendarCfg.CalendarID,
		Timezone:        srv.calendarCfg.Timezone,
		ReminderMinutes: reminderLeadMinutes,
	})
	h := calendarHTTP.New(srv.l, uc)

	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, mw)

	if srv.calendarMirror == nil {
		srv.l.Infof(ctx, "Calendar domain registered (Google Calendar mirror disabled)")
	} else {
		srv.l.Infof(ctx, "Calendar domain registered")
	}
	return uc
}

func (srv HTTPServer) setupStaffingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := staffingUC.New(srv.l, srv.roster)
	h := staffingHTTP.New(srv.l, uc)

	// Mounts /staffing and /compliance on the API group.
	staffingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Staffing domain registered")
}

func (srv HTTPServer) setupCopilotDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks followup.UseCase, cal calendar.UseCase) {
	repo := copilotRepo.New(srv.postgresDB, srv.l)
	uc := copilotUC.New(srv.l, repo, tasks, cal, srv.roster, srv.llm, copilotUC.Config{
		SystemName: srv.copilotCfg.SystemName,
	})
	h := copilotHTTP.New(srv.l, uc, srv.copilotCfg.DefaultUserID)

	copilotHTTP.RegisterRoutes(api.Group("/copilot"), h, mw)

	if srv.llm == nil {
		srv.l.Infof(ctx, "Copilot domain registered (no LLM provider, canned answers only)")
	} else {
		srv.l.Infof(ctx, "Copilot domain registered")
	}
}

func (srv HTTPServer) setupEmailDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc, err := emailUC.New(srv.l, srv.emailSender, emailUC.Config{})
	if err != nil {
		return err
	}
	h := emailHTTP.New(srv.l, uc)

	emailHTTP.RegisterRoutes(api.Group("/email"), h, mw)

	if srv.emailSender == nil {
		srv.l.Warnf(ctx, "Email domain registered without SendGrid, sends will fail")
	} else {
		srv.l.Infof(ctx, "Email domain registered")
	}
	return nil
}
