package repository

import "math/big"

// PurchaseTicketOptions selects the event a primary ticket is bought from.
type PurchaseTicketOptions struct {
	EventID uint64
}

// TicketOptions addresses a single ticket.
type TicketOptions struct {
	TicketID uint64
}

// ResellTicketOptions lists a ticket for resale at Price wei.
type ResellTicketOptions struct {
	TicketID uint64
	Price    *big.Int
}

// EventOptions holds the editable fields of an event.
type EventOptions struct {
	Name             string
	Date             string
	Location         string
	Price            *big.Int
	AvailableTickets uint64
}

// UpdateEventOptions replaces every editable field of an existing event.
type UpdateEventOptions struct {
	EventID uint64
	EventOptions
}

// CreateTicketOptions mints a ticket for an event.
type CreateTicketOptions struct {
	EventID  uint64
	Name     string
	Date     string
	Location string
	Price    *big.Int
}
