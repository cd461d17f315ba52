package listing

import (
	"math/big"
	"strconv"

	"ticket-marketplace/internal/model"
	"ticket-marketplace/pkg/ethunit"
)

// Kind distinguishes ticket rows from event rows.
type Kind string

const (
	KindTicket Kind = "ticket"
	KindEvent  Kind = "event"
)

// Flag is the availability/ownership flag set of an item.
type Flag uint8

const (
	FlagForSale Flag = 1 << iota
	FlagForResale
	FlagExpired
	FlagSoldOut
	FlagUnowned
)

// Has reports whether every bit of x is set.
func (f Flag) Has(x Flag) bool {
	return f&x == x
}

// Status is the human label derived from an item's flags.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusForSale   Status = "For Sale"
	StatusResale    Status = "Resale"
	StatusOwned     Status = "Owned"
	StatusSoldOut   Status = "Sold Out"
	StatusExpired   Status = "Expired"
)

// Item is the projection of a ticket or an event shown in a listing.
type Item struct {
	ID        uint64
	Kind      Kind
	EventID   uint64
	Name      string
	Date      string
	Location  string
	Owner     string
	Price     *big.Int // wei
	Available uint64   // remaining primary tickets, events only
	Flags     Flag
}

// Status derives the display status.
// Tickets: Expired > For Sale > Resale > Owned. Events: Expired > Sold Out > Available.
func (it Item) Status() Status {
	if it.Flags.Has(FlagExpired) {
		return StatusExpired
	}
	if it.Kind == KindEvent {
		if it.Flags.Has(FlagSoldOut) {
			return StatusSoldOut
		}
		return StatusAvailable
	}
	switch {
	case it.Flags.Has(FlagForSale):
		return StatusForSale
	case it.Flags.Has(FlagForResale):
		return StatusResale
	default:
		return StatusOwned
	}
}

// PriceEther renders the price in ether.
func (it Item) PriceEther() string {
	return ethunit.FormatEther(it.Price)
}

// OwnerLabel is the owner address, or "Available" while nobody holds the ticket.
func (it Item) OwnerLabel() string {
	if it.Flags.Has(FlagUnowned) {
		return string(StatusAvailable)
	}
	return it.Owner
}

// IDString is the identifier as shown and searched.
func (it Item) IDString() string {
	return strconv.FormatUint(it.ID, 10)
}

func (it Item) clone() Item {
	if it.Price != nil {
		it.Price = new(big.Int).Set(it.Price)
	}
	return it
}

// TicketItem projects a ledger ticket.
func TicketItem(t model.Ticket) Item {
	it := Item{
		ID:       t.TicketID,
		Kind:     KindTicket,
		EventID:  t.EventID,
		Name:     t.EventName,
		Date:     t.EventDate,
		Location: t.EventLocation,
		Owner:    t.CurrentOwner,
		Price:    t.Price,
	}
	if t.IsForSale {
		it.Flags |= FlagForSale
	}
	if t.IsForResale {
		it.Flags |= FlagForResale
	}
	if t.IsExpired {
		it.Flags |= FlagExpired
	}
	if t.Unowned() {
		it.Flags |= FlagUnowned
	}
	return it
}

// TicketItems projects a slice of ledger tickets.
func TicketItems(tickets []model.Ticket) []Item {
	items := make([]Item, len(tickets))
	for i, t := range tickets {
		items[i] = TicketItem(t)
	}
	return items
}

// EventItem projects a ledger event. ended is decided by the caller's clock.
func EventItem(e model.Event, ended bool) Item {
	it := Item{
		ID:        e.EventID,
		Kind:      KindEvent,
		EventID:   e.EventID,
		Name:      e.EventName,
		Date:      e.EventDate,
		Location:  e.EventLocation,
		Price:     e.Price,
		Available: e.AvailableTickets,
	}
	if e.SoldOut() {
		it.Flags |= FlagSoldOut
	}
	if ended {
		it.Flags |= FlagExpired
	}
	return it
}
