package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := writeConfig(t, "ledger:\n  contract_address: "+contract+"\n")

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Listing.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.Listing.SessionTTL)
	assert.Equal(t, LedgerSourceContract, cfg.Ledger.Source)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Ledger.RPCURL)
	assert.Equal(t, 200*time.Millisecond, cfg.Ledger.RetryWaitMin)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
	assert.False(t, cfg.GoogleCalendar.Enabled())
}

func TestLoadInvalidPageSize(t *testing.T) {
	for _, size := range []string{"0", "-3"} {
		dir := writeConfig(t, "listing:\n  page_size: "+size+"\nledger:\n  contract_address: "+contract+"\n")
		_, err := load(dir)
		assert.ErrorIs(t, err, ErrInvalidPageSize, "page_size %s", size)
	}
}

func TestLoadLedgerSource(t *testing.T) {
	dir := writeConfig(t, "ledger:\n  source: postgres\n  contract_address: "+contract+"\n")
	_, err := load(dir)
	assert.ErrorIs(t, err, ErrMissingPostgresDSN)

	dir = writeConfig(t, "ledger:\n  source: ipfs\n  contract_address: "+contract+"\n")
	_, err = load(dir)
	assert.ErrorIs(t, err, ErrUnknownLedger)

	dir = writeConfig(t, "ledger:\n  source: Postgres\n  postgres_dsn: postgres://u@localhost/db\n  contract_address: "+contract+"\n")
	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, LedgerSourcePostgres, cfg.Ledger.Source)
}

func TestLoadMissingContract(t *testing.T) {
	_, err := load(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingContract)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LISTING_PAGE_SIZE", "25")
	t.Setenv("LEDGER_CONTRACT_ADDRESS", contract)

	cfg, err := load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Listing.PageSize)
	assert.Equal(t, contract, cfg.Ledger.ContractAddress)
}
