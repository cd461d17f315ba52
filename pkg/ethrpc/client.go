// Package ethrpc dials an Ethereum JSON-RPC endpoint over a retrying HTTP
// transport.
package ethrpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hashicorp/go-retryablehttp"

	"ticket-marketplace/pkg/log"
)

var ErrMissingURL = errors.New("ethrpc: rpc url is required")

// Config controls the retry behaviour of the transport.
type Config struct {
	URL          string
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Timeout      time.Duration
}

func (c Config) withDefaults() Config {
	if c.RetryMax <= 0 {
		c.RetryMax = 3
	}
	if c.RetryWaitMin <= 0 {
		c.RetryWaitMin = 200 * time.Millisecond
	}
	if c.RetryWaitMax <= 0 {
		c.RetryWaitMax = 2 * time.Second
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	return c
}

// NewHTTPClient builds the retrying *http.Client used for RPC calls.
// JSON-RPC bodies are replayed on 5xx and connection errors.
func NewHTTPClient(cfg Config, l log.Logger) *http.Client {
	cfg = cfg.withDefaults()

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = leveledLogger{l: l}

	return rc.StandardClient()
}

// Dial connects to cfg.URL. The returned client satisfies bind.ContractCaller.
func Dial(ctx context.Context, cfg Config, l log.Logger) (*ethclient.Client, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}

	rc, err := rpc.DialOptions(ctx, cfg.URL, rpc.WithHTTPClient(NewHTTPClient(cfg, l)))
	if err != nil {
		return nil, fmt.Errorf("ethrpc.Dial: %w", err)
	}
	return ethclient.NewClient(rc), nil
}

// leveledLogger routes retryablehttp logs to pkg/log.
type leveledLogger struct {
	l log.Logger
}

func (ll leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	ll.l.Errorf(context.Background(), "ethrpc: %s %v", msg, keysAndValues)
}

func (ll leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	ll.l.Debugf(context.Background(), "ethrpc: %s %v", msg, keysAndValues)
}

func (ll leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	ll.l.Debugf(context.Background(), "ethrpc: %s %v", msg, keysAndValues)
}

func (ll leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	ll.l.Warnf(context.Background(), "ethrpc: %s %v", msg, keysAndValues)
}
