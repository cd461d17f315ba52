package marketplace

import (
	"math/big"
	"time"

	"ticket-marketplace/internal/listing"
)

// --- Listings ---

// ListingKind names one of the paginated listing pages.
type ListingKind string

const (
	ListingTickets     ListingKind = "tickets"
	ListingMarketplace ListingKind = "marketplace"
	ListingMine        ListingKind = "mine"
	ListingEvents      ListingKind = "events"
)

// Valid reports whether k is a known listing.
func (k ListingKind) Valid() bool {
	switch k {
	case ListingTickets, ListingMarketplace, ListingMine, ListingEvents:
		return true
	}
	return false
}

// ItemKind is the kind of row the listing shows.
func (k ListingKind) ItemKind() listing.Kind {
	if k == ListingEvents {
		return listing.KindEvent
	}
	return listing.KindTicket
}

// ListingScope identifies one listing view: a browser session looking at a
// listing as a wallet. Wallet is only required for ListingMine.
type ListingScope struct {
	SessionID string
	Kind      ListingKind
	Wallet    string
}

// --- UseCase Inputs ---

type SearchInput struct {
	Scope ListingScope
	Query string
}

type PaginateInput struct {
	Scope     ListingScope
	Direction int // +1 next, -1 previous
}

type GotoInput struct {
	Scope ListingScope
	Page  int
}

type EventTicketsInput struct {
	EventID uint64
	Query   string
	Page    int
}

// Transaction inputs carry raw form values; they are checked against the
// validation table before any ledger call.

type PurchaseInput struct {
	Wallet  string
	EventID string
}

type ResaleBuyInput struct {
	Wallet   string
	TicketID string
}

type ResellInput struct {
	Wallet   string
	TicketID string
	PriceEth string
}

type CancelResaleInput struct {
	Wallet   string
	TicketID string
}

type EventFormInput struct {
	Wallet           string
	EventName        string
	EventDate        string
	EventLocation    string
	PriceEth         string
	AvailableTickets string
}

type UpdateEventInput struct {
	EventID string
	EventFormInput
}

type CreateTicketInput struct {
	Wallet  string
	EventID string
}

// --- UseCase Outputs ---

type ListingOutput struct {
	SessionID string
	Kind      ListingKind
	Page      listing.Page
}

type EventTicketsOutput struct {
	Event listing.Item
	Page  listing.Page
}

// Purchasability reasons shown next to a disabled purchase button.
const (
	ReasonEventEnded  = "Event Ended"
	ReasonFullyBought = "Fully Bought"
)

type EventDetailOutput struct {
	Event       listing.Item
	Purchasable bool
	Reason      string
}

// OwnershipRecord is one transfer of a ticket between two owners.
type OwnershipRecord struct {
	TicketID      uint64
	EventName     string
	EventDate     string
	EventLocation string
	PreviousOwner string
	NewOwner      string
}

type OwnershipHistoryOutput struct {
	Ticket  listing.Item
	Records []OwnershipRecord
}

// Roles held by a wallet. Staff may manage events and tickets.
type Roles struct {
	Admin     bool
	Organizer bool
}

// Staff reports whether any managing role is held.
func (r Roles) Staff() bool {
	return r.Admin || r.Organizer
}

// PreparedTx is an unsigned contract call for the caller's wallet to sign.
type PreparedTx struct {
	Method string
	From   string
	To     string
	Data   []byte
	Value  *big.Int // wei, nil for non-payable calls
}

type CalendarExportOutput struct {
	EventID         uint64
	CalendarEventID string
	HTMLLink        string
	Start           time.Time
}
