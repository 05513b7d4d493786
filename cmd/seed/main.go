package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"reinsure/internal/app"
	"reinsure/internal/config"
	"reinsure/internal/database"
	"reinsure/internal/domain/admin"
	"reinsure/internal/pkg/jwt"
	"reinsure/internal/pkg/logging"
	"reinsure/internal/seed"
)

func main() {
	demoLeads := flag.Int("demo-leads", 0, "number of fake leads to add for trying out the dashboard")
	skipContent := flag.Bool("skip-content", false, "leave services, testimonials and FAQs untouched")
	flag.Parse()

	if err := run(*demoLeads, *skipContent); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(demoLeads int, skipContent bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.LogLevel)
	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, app.Models()...); err != nil {
		return err
	}

	if !skipContent {
		if err := seed.Content(ctx, db); err != nil {
			return err
		}
		logger.Info("seeded services, testimonials and FAQs")
	}

	adminService := admin.NewService(admin.NewAdminRepository(db), jwt.New(cfg.JWTSecret, cfg.JWTExpiresIn), nil)
	a, created, err := adminService.EnsureBootstrapAdmin(ctx, cfg.BootstrapAdmin.Email, cfg.BootstrapAdmin.Password, cfg.BootstrapAdmin.Name)
	if err != nil {
		return err
	}
	if created {
		logger.Info("admin created; change the password after first login", "email", a.Email)
	} else {
		logger.Info("admin already exists", "email", a.Email)
	}

	if demoLeads > 0 {
		now := time.Now()
		leads, err := seed.DemoLeads(ctx, db, demoLeads, now.UnixNano(), now)
		if err != nil {
			return err
		}
		logger.Info("seeded demo leads", "count", len(leads))
	}

	return nil
}
