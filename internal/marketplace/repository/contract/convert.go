package contract

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/internal/model"
)

// decode converts the first return value of a contract call into T.
func decode[T any](out []any) (v T, err error) {
	if len(out) == 0 {
		return v, fmt.Errorf("%w: empty result", repository.ErrFailedToDecode)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", repository.ErrFailedToDecode, r)
		}
	}()
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}

func toEvent(t eventTuple) model.Event {
	ids := make([]uint64, len(t.TicketIds))
	for i, id := range t.TicketIds {
		ids[i] = u64(id)
	}
	return model.Event{
		EventID:          u64(t.EventId),
		EventName:        t.EventName,
		EventDate:        t.EventDate,
		EventLocation:    t.EventLocation,
		Price:            t.Price,
		AvailableTickets: u64(t.AvailableTickets),
		TicketIDs:        ids,
	}
}

func toTicket(t ticketTuple) model.Ticket {
	return model.Ticket{
		TicketID:      u64(t.TicketId),
		EventID:       u64(t.EventId),
		EventName:     t.EventName,
		EventDate:     t.EventDate,
		EventLocation: t.EventLocation,
		CurrentOwner:  t.CurrentOwner.Hex(),
		Price:         t.Price,
		IsForSale:     t.IsForSale,
		IsForResale:   t.IsForResale,
		IsExpired:     t.IsExpired,
	}
}

func toTickets(ts []ticketTuple) []model.Ticket {
	out := make([]model.Ticket, len(ts))
	for i, t := range ts {
		out[i] = toTicket(t)
	}
	return out
}

// u64 saturates ids and counts that do not fit in 64 bits.
func u64(n *big.Int) uint64 {
	if n == nil || n.Sign() < 0 {
		return 0
	}
	if !n.IsUint64() {
		return ^uint64(0)
	}
	return n.Uint64()
}

func bigU64(n uint64) *big.Int {
	return new(big.Int).SetUint64(n)
}
