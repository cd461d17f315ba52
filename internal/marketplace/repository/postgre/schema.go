package postgre

// schema mirrors the contract state the indexer copies out of chain logs.
// Prices are wei stored as NUMERIC(78,0).
const schema = `
	CREATE TABLE IF NOT EXISTS market_events (
		event_id          BIGINT        PRIMARY KEY,
		event_name        TEXT          NOT NULL,
		event_date        TEXT          NOT NULL,
		event_location    TEXT          NOT NULL,
		price_wei         NUMERIC(78,0) NOT NULL DEFAULT 0,
		available_tickets BIGINT        NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS market_tickets (
		ticket_id      BIGINT        PRIMARY KEY,
		event_id       BIGINT        NOT NULL REFERENCES market_events(event_id),
		current_owner  TEXT          NOT NULL DEFAULT '0x0000000000000000000000000000000000000000',
		price_wei      NUMERIC(78,0) NOT NULL DEFAULT 0,
		is_for_sale    BOOLEAN       NOT NULL DEFAULT TRUE,
		is_for_resale  BOOLEAN       NOT NULL DEFAULT FALSE,
		is_expired     BOOLEAN       NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS market_ownership (
		ticket_id  BIGINT      NOT NULL REFERENCES market_tickets(ticket_id),
		seq        INTEGER     NOT NULL,
		owner      TEXT        NOT NULL,
		PRIMARY KEY (ticket_id, seq)
	);

	CREATE TABLE IF NOT EXISTS market_role_members (
		role     TEXT NOT NULL,
		account  TEXT NOT NULL,
		PRIMARY KEY (role, account)
	);

	CREATE INDEX IF NOT EXISTS idx_market_tickets_event  ON market_tickets(event_id);
	CREATE INDEX IF NOT EXISTS idx_market_tickets_resale ON market_tickets(is_for_resale);
`
