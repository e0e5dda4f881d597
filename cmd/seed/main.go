// cmd/seed fills an empty database with demo users, a sample copilot
// conversation, follow-up tasks and two calendar events.
//
// Usage:
//
//	go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"nurse-manager/config"
	"nurse-manager/config/postgre"
	authRepo "nurse-manager/internal/auth/repository/postgre"
	calendarRepo "nurse-manager/internal/calendar/repository/postgre"
	copilotRepo "nurse-manager/internal/copilot/repository/postgre"
	followupRepo "nurse-manager/internal/followup/repository/postgre"
	"nurse-manager/internal/roster"
	"nurse-manager/pkg/encrypter"
	"nurse-manager/pkg/log"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		os.Exit(1)
	}
	defer postgre.Disconnect(db)

	if err := postgre.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to apply migrations: ", err)
		os.Exit(1)
	}

	s := seeder{
		l:             logger,
		users:         authRepo.New(db, logger),
		conversations: copilotRepo.New(db, logger),
		tasks:         followupRepo.New(db, logger),
		events:        calendarRepo.New(db, logger),
		enc:           encrypter.New(0),
		roster:        roster.New(cfg.Roster.Month(time.Now())),
	}

	seeded, err := s.run(ctx)
	if err != nil {
		logger.Error(ctx, "Seeding failed: ", err)
		os.Exit(1)
	}
	if !seeded {
		logger.Info(ctx, "Database already has data, skipping seed")
		return
	}
	logger.Info(ctx, "Database seeding completed")
}
