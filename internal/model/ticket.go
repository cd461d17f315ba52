package model

import (
	"math/big"
	"strings"
)

// ZeroAddress is the owner of a ticket nobody has bought yet.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Ticket is a ticket record as returned by the ledger.
type Ticket struct {
	TicketID      uint64
	EventID       uint64
	EventName     string
	EventDate     string
	EventLocation string
	CurrentOwner  string   // 0x-prefixed hex address
	Price         *big.Int // wei
	IsForSale     bool
	IsForResale   bool
	IsExpired     bool
}

// Unowned reports whether nobody holds the ticket yet.
func (t Ticket) Unowned() bool {
	return t.CurrentOwner == "" || t.CurrentOwner == ZeroAddress
}

// OwnedBy compares owner addresses case-insensitively.
func (t Ticket) OwnedBy(wallet string) bool {
	return wallet != "" && strings.EqualFold(t.CurrentOwner, wallet)
}
