package log_test

import (
	"context"
	"testing"

	"ticket-marketplace/pkg/log"
)

func TestTraceID(t *testing.T) {
	ctx := log.WithTraceID(context.Background(), "abc")
	if got := log.TraceID(ctx); got != "abc" {
		t.Errorf("expected trace id abc, got %q", got)
	}
	if got := log.TraceID(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "nonsense"},
	} {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(context.Background(), "config %+v", cfg)
	}
	log.NewNop().Info(context.Background(), "discarded")
}
