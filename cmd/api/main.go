package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ticket-marketplace/config"
	_ "ticket-marketplace/docs" // Swagger docs
	"ticket-marketplace/internal/httpserver"
	contractRepo "ticket-marketplace/internal/marketplace/repository/contract"
	"ticket-marketplace/internal/marketplace/repository/source"
	"ticket-marketplace/internal/marketplace/usecase"
	"ticket-marketplace/internal/middleware"
	"ticket-marketplace/internal/session"
	"ticket-marketplace/pkg/datemath"
	"ticket-marketplace/pkg/gcalendar"
	"ticket-marketplace/pkg/log"
)

// @title       Ticket Marketplace API
// @description Paginated, searchable listings of tickets and events on the ticket marketplace contract, plus unsigned transaction preparation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting Ticket Marketplace...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ledger source: %s, contract: %s", cfg.Ledger.Source, cfg.Ledger.ContractAddress)

	// 3. Ledger
	ledger, err := source.Open(ctx, cfg.Ledger, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open ledger: ", err)
		return
	}
	defer ledger.Close()

	txBuilder, err := contractRepo.NewTxBuilder(cfg.Ledger.ContractAddress)
	if err != nil {
		logger.Error(ctx, "Invalid contract address: ", err)
		return
	}

	// 4. Listing sessions
	sessions, err := session.New(session.Config{
		PageSize:    cfg.Listing.PageSize,
		MaxSessions: cfg.Listing.MaxSessions,
		TTL:         cfg.Listing.SessionTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create session store: ", err)
		return
	}

	// DateMath parser
	dates, err := datemath.NewParser(cfg.Listing.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Listing.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.Enabled() {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Marketplace UseCase
	uc := usecase.New(logger, ledger.Ledger, txBuilder, sessions, dates, calendar, usecase.Options{
		AdminAddress: cfg.Ledger.AdminAddress,
		CalendarID:   cfg.GoogleCalendar.CalendarID,
		Timezone:     dates.Location().String(),
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		MarketplaceUC: uc,
		RateLimit: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			MaxClients:      cfg.RateLimit.MaxClients,
		},
		Ready: ledger.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
