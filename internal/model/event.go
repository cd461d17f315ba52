package model

import "math/big"

// Event is an event record as returned by the ledger.
type Event struct {
	EventID          uint64
	EventName        string
	EventDate        string // YYYY-MM-DD
	EventLocation    string
	Price            *big.Int // wei
	AvailableTickets uint64
	TicketIDs        []uint64
}

// SoldOut reports whether no primary-sale tickets remain.
func (e Event) SoldOut() bool {
	return e.AvailableTickets == 0
}
