// Package source opens the configured ledger read source.
package source

import (
	"context"
	"time"

	"ticket-marketplace/config"
	"ticket-marketplace/internal/marketplace/repository"
	contractRepo "ticket-marketplace/internal/marketplace/repository/contract"
	postgreRepo "ticket-marketplace/internal/marketplace/repository/postgre"
	"ticket-marketplace/pkg/ethrpc"
	"ticket-marketplace/pkg/log"
)

const connectWait = 2 * time.Second

// Source is an open ledger with its readiness probe.
type Source struct {
	Ledger repository.Ledger
	Ready  func(ctx context.Context) error
	Close  func()
}

// Open connects to the contract over JSON-RPC or to the indexer database,
// depending on cfg.Source.
func Open(ctx context.Context, cfg config.LedgerConfig, l log.Logger) (Source, error) {
	if cfg.Source == config.LedgerSourcePostgres {
		db, err := postgreRepo.Open(ctx, cfg.PostgresDSN, cfg.ConnectAttempts, connectWait)
		if err != nil {
			return Source{}, err
		}
		return Source{
			Ledger: postgreRepo.New(db, l),
			Ready:  db.PingContext,
			Close:  func() { _ = db.Close() },
		}, nil
	}

	client, err := ethrpc.Dial(ctx, ethrpc.Config{
		URL:          cfg.RPCURL,
		RetryMax:     cfg.RetryMax,
		RetryWaitMin: cfg.RetryWaitMin,
		RetryWaitMax: cfg.RetryWaitMax,
		Timeout:      cfg.Timeout,
	}, l)
	if err != nil {
		return Source{}, err
	}

	ledger, err := contractRepo.New(client, cfg.ContractAddress, l)
	if err != nil {
		client.Close()
		return Source{}, err
	}
	return Source{
		Ledger: ledger,
		Ready: func(ctx context.Context) error {
			_, err := client.BlockNumber(ctx)
			return err
		},
		Close: client.Close,
	}, nil
}
