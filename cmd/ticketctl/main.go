package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ticket-marketplace/config"
	"ticket-marketplace/internal/marketplace"
	contractRepo "ticket-marketplace/internal/marketplace/repository/contract"
	"ticket-marketplace/internal/marketplace/repository/source"
	"ticket-marketplace/internal/marketplace/usecase"
	"ticket-marketplace/internal/session"
	"ticket-marketplace/pkg/datemath"
	"ticket-marketplace/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(openUseCase).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openUseCase builds a read-only marketplace use case from config.yaml.
func openUseCase(ctx context.Context) (marketplace.UseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})

	src, err := source.Open(ctx, cfg.Ledger, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open ledger: %w", err)
	}

	txBuilder, err := contractRepo.NewTxBuilder(cfg.Ledger.ContractAddress)
	if err != nil {
		src.Close()
		return nil, nil, err
	}

	sessions, err := session.New(session.Config{PageSize: cfg.Listing.PageSize, MaxSessions: 4})
	if err != nil {
		src.Close()
		return nil, nil, err
	}

	dates, err := datemath.NewParser(cfg.Listing.Timezone)
	if err != nil {
		dates, _ = datemath.NewParser("UTC")
	}

	uc := usecase.New(logger, src.Ledger, txBuilder, sessions, dates, nil, usecase.Options{
		AdminAddress: cfg.Ledger.AdminAddress,
		Timezone:     dates.Location().String(),
	})
	return uc, src.Close, nil
}
