package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nurse-manager/config"
	"nurse-manager/config/postgre"
	_ "nurse-manager/docs" // Swagger docs
	"nurse-manager/internal/calendar"
	"nurse-manager/internal/copilot"
	"nurse-manager/internal/httpserver"
	"nurse-manager/internal/intent"
	"nurse-manager/internal/roster"
	"nurse-manager/pkg/datemath"
	"nurse-manager/pkg/encrypter"
	"nurse-manager/pkg/gcalendar"
	"nurse-manager/pkg/llmprovider"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/scope"
	"nurse-manager/pkg/sendgrid"
)

// @title       Nuvanta Nurse Manager API
// @description Nurse manager copilot: follow-up tasks, reminders, staffing and compliance.
// @version     1
// @host        localhost:5000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration (.env is optional)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Nuvanta Nurse Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer postgre.Disconnect(db)

	if cfg.Postgres.Migrate {
		if err := postgre.Migrate(ctx, db); err != nil {
			logger.Error(ctx, "Failed to apply migrations: ", err)
			return
		}
		logger.Info(ctx, "Database migrations applied")
	}

	// 4. Auth
	jwtManager, err := scope.New(scope.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 5. Hospital data and heuristics
	rosterData := roster.New(cfg.Roster.Month(time.Now()))

	detectorOpts := []intent.Option{intent.WithSystemName(cfg.Copilot.SystemName)}
	if cfg.Copilot.RulesPath != "" {
		cat, catErr := intent.LoadCatalogue(cfg.Copilot.RulesPath)
		if catErr != nil {
			logger.Warnf(ctx, "Phrase catalogue %q not loaded, using built-in rules: %v", cfg.Copilot.RulesPath, catErr)
		} else {
			detectorOpts = append(detectorOpts, intent.WithCatalogue(cat))
		}
	}
	detector := intent.New(detectorOpts...)

	dateParser, err := datemath.NewParser(cfg.Copilot.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Copilot.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar mirror (optional)
	var calendarMirror calendar.Mirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
			if errors.Is(gErr, gcalendar.ErrNoToken) {
				logger.Warn(ctx, "Run `go run ./cmd/gcal-auth` to generate the OAuth token")
			}
		} else {
			calendarMirror = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. SendGrid (optional)
	var emailSender sendgrid.ISendGrid
	if cfg.SendGrid.APIKey != "" {
		emailSender, err = sendgrid.New(sendgrid.Config{
			APIKey:  cfg.SendGrid.APIKey,
			BaseURL: cfg.SendGrid.BaseURL,
			From:    sendgrid.Address{Email: cfg.SendGrid.FromEmail, Name: cfg.SendGrid.FromName},
		})
		if err != nil {
			logger.Warnf(ctx, "SendGrid not available (optional): %v", err)
			emailSender = nil
		}
	} else {
		logger.Warn(ctx, "SENDGRID_API_KEY is not set, email endpoints are disabled")
	}

	// 8. LLM providers (optional)
	var llm copilot.Generator
	llmManager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	switch {
	case err == nil:
		llm = llmManager
		logger.Infof(ctx, "LLM providers initialized: %d", len(llmManager.Providers()))
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM provider configured, copilot uses canned answers only")
	default:
		logger.Warnf(ctx, "LLM providers not available (optional): %v", err)
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		JWTManager:      jwtManager,
		CORS:            cfg.CORS,
		RateLimit:       cfg.RateLimit,
		PostgresDB:      db,
		Encrypter:       encrypter.New(0),
		Roster:          rosterData,
		Detector:        detector,
		DateParser:      dateParser,
		CalendarMirror:  calendarMirror,
		EmailSender:     emailSender,
		LLM:             llm,
		Copilot:         cfg.Copilot,
		GoogleCalendar:  cfg.GoogleCalendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
