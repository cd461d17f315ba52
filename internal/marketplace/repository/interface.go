package repository

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"ticket-marketplace/internal/model"
)

// Ledger is the read side of the ticket contract. Implementations either
// call the contract directly or read an indexed copy of its state.
type Ledger interface {
	EventReader
	TicketReader
	RoleReader
}

// EventReader reads events.
type EventReader interface {
	AllEvents(ctx context.Context) ([]model.Event, error)
}

// TicketReader reads tickets and their transfer history.
// Ticket returns a zero-value Ticket (TicketID == 0) when the id is unknown.
type TicketReader interface {
	TicketsForEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error)
	ResaleTickets(ctx context.Context) ([]model.Ticket, error)
	Ticket(ctx context.Context, ticketID uint64) (model.Ticket, error)
	TicketCount(ctx context.Context) (uint64, error)
	ResaleHistory(ctx context.Context, ticketID uint64) ([]string, error)
}

// RoleReader checks access-control roles.
type RoleReader interface {
	HasRole(ctx context.Context, role common.Hash, account string) (bool, error)
}

// TxBuilder encodes calldata for the contract's write methods.
type TxBuilder interface {
	ContractAddress() string
	PurchaseTicket(opt PurchaseTicketOptions) ([]byte, error)
	PurchaseResaleTicket(opt TicketOptions) ([]byte, error)
	ResellTicket(opt ResellTicketOptions) ([]byte, error)
	CancelResale(opt TicketOptions) ([]byte, error)
	CreateEvent(opt EventOptions) ([]byte, error)
	UpdateEvent(opt UpdateEventOptions) ([]byte, error)
	CreateTicket(opt CreateTicketOptions) ([]byte, error)
}
