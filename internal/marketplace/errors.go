package marketplace

import "errors"

var (
	ErrInvalidListing    = errors.New("unknown listing")
	ErrInvalidSession    = errors.New("invalid session id")
	ErrWalletRequired    = errors.New("wallet address is required")
	ErrInvalidInput      = errors.New("invalid input")
	ErrEventNotFound     = errors.New("event not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrEventEnded        = errors.New("event has ended")
	ErrSoldOut           = errors.New("event is fully bought")
	ErrNotForResale      = errors.New("ticket is not listed for resale")
	ErrAlreadyListed     = errors.New("ticket is already listed for resale")
	ErrAlreadyOwner      = errors.New("wallet already owns this ticket")
	ErrNotOwner          = errors.New("wallet does not own this ticket")
	ErrTicketExpired     = errors.New("ticket has expired")
	ErrNotStaff          = errors.New("wallet is not an admin or organizer")
	ErrCalendarDisabled  = errors.New("calendar export is not configured")
	ErrCalendarFailed    = errors.New("calendar export failed")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
)
