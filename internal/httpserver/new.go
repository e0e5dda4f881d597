package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"nurse-manager/config"
	"nurse-manager/internal/calendar"
	"nurse-manager/internal/copilot"
	"nurse-manager/internal/intent"
	"nurse-manager/internal/roster"
	"nurse-manager/pkg/datemath"
	"nurse-manager/pkg/encrypter"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/scope"
	"nurse-manager/pkg/sendgrid"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	jwtManager scope.Manager
	cors       config.CORSConfig
	rateLimit  config.RateLimitConfig

	// Storage
	postgresDB *sqlx.DB

	// Domain collaborators
	encrypter      encrypter.Encrypter
	roster         *roster.Provider
	detector       *intent.Detector
	dateParser     *datemath.Parser
	calendarMirror calendar.Mirror
	emailSender    sendgrid.ISendGrid
	llm            copilot.Generator

	copilotCfg  config.CopilotConfig
	calendarCfg config.GoogleCalendarConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	JWTManager scope.Manager
	CORS       config.CORSConfig
	RateLimit  config.RateLimitConfig

	PostgresDB *sqlx.DB

	Encrypter  encrypter.Encrypter
	Roster     *roster.Provider
	Detector   *intent.Detector
	DateParser *datemath.Parser

	// Optional: nil disables the Google Calendar mirror.
	CalendarMirror calendar.Mirror
	// Optional: nil makes every email endpoint answer 503.
	EmailSender sendgrid.ISendGrid
	// Optional: nil limits the copilot to its canned answers.
	LLM copilot.Generator

	Copilot        config.CopilotConfig
	GoogleCalendar config.GoogleCalendarConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		jwtManager:      cfg.JWTManager,
		cors:            cfg.CORS,
		rateLimit:       cfg.RateLimit,
		postgresDB:      cfg.PostgresDB,
		encrypter:       cfg.Encrypter,
		roster:          cfg.Roster,
		detector:        cfg.Detector,
		dateParser:      cfg.DateParser,
		calendarMirror:  cfg.CalendarMirror,
		emailSender:     cfg.EmailSender,
		llm:             cfg.LLM,
		copilotCfg:      cfg.Copilot,
		calendarCfg:     cfg.GoogleCalendar,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.roster == nil {
		return errors.New("roster is required")
	}
	if srv.detector == nil {
		return errors.New("intent detector is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
