package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	repo "ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/internal/model"
)

// AllEvents returns every event with its remaining primary tickets.
func (r *implLedger) AllEvents(ctx context.Context) ([]model.Event, error) {
	out, err := r.call(ctx, "AllEvents", methodAllEvents)
	if err != nil {
		return nil, err
	}
	tuples, err := decode[[]eventTuple](out)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AllEvents"), err)
		return nil, err
	}

	events := make([]model.Event, len(tuples))
	for i, t := range tuples {
		events[i] = toEvent(t)
	}
	return events, nil
}

// TicketsForEvent returns every ticket minted for an event.
func (r *implLedger) TicketsForEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error) {
	out, err := r.call(ctx, "TicketsForEvent", methodTicketsForEvent, bigU64(eventID))
	if err != nil {
		return nil, err
	}
	tuples, err := decode[[]ticketTuple](out)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TicketsForEvent"), err)
		return nil, err
	}
	return toTickets(tuples), nil
}

// ResaleTickets returns tickets currently listed for resale.
func (r *implLedger) ResaleTickets(ctx context.Context) ([]model.Ticket, error) {
	out, err := r.call(ctx, "ResaleTickets", methodResaleTickets)
	if err != nil {
		return nil, err
	}
	tuples, err := decode[[]ticketTuple](out)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ResaleTickets"), err)
		return nil, err
	}
	return toTickets(tuples), nil
}

// Ticket returns one ticket, or a zero value when the id was never minted.
func (r *implLedger) Ticket(ctx context.Context, ticketID uint64) (model.Ticket, error) {
	count, err := r.TicketCount(ctx)
	if err != nil {
		return model.Ticket{}, err
	}
	if ticketID == 0 || ticketID > count {
		return model.Ticket{}, nil
	}

	out, err := r.call(ctx, "Ticket", methodTicket, bigU64(ticketID))
	if err != nil {
		return model.Ticket{}, err
	}
	tuple, err := decode[ticketTuple](out)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Ticket"), err)
		return model.Ticket{}, err
	}
	return toTicket(tuple), nil
}

// TicketCount returns the number of tickets minted so far.
func (r *implLedger) TicketCount(ctx context.Context) (uint64, error) {
	out, err := r.call(ctx, "TicketCount", methodTicketCount)
	if err != nil {
		return 0, err
	}
	n, err := decode[*big.Int](out)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TicketCount"), err)
		return 0, err
	}
	return u64(n), nil
}

// ResaleHistory returns every owner of a ticket, oldest first.
func (r *implLedger) ResaleHistory(ctx context.Context, ticketID uint64) ([]string, error) {
	out, err := r.call(ctx, "ResaleHistory", methodResaleHistory, bigU64(ticketID))
	if err != nil {
		return nil, err
	}
	addrs, err := decode[[]common.Address](out)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ResaleHistory"), err)
		return nil, err
	}

	owners := make([]string, len(addrs))
	for i, a := range addrs {
		owners[i] = a.Hex()
	}
	return owners, nil
}

// HasRole checks an AccessControl role.
func (r *implLedger) HasRole(ctx context.Context, role common.Hash, account string) (bool, error) {
	if !common.IsHexAddress(account) {
		return false, fmt.Errorf("%w: %q", repo.ErrInvalidAddress, account)
	}
	out, err := r.call(ctx, "HasRole", methodHasRole, [32]byte(role), common.HexToAddress(account))
	if err != nil {
		return false, err
	}
	ok, err := decode[bool](out)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasRole"), err)
		return false, err
	}
	return ok, nil
}

func (r *implLedger) call(ctx context.Context, scope, method string, args ...any) ([]any, error) {
	var out []any
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(scope), err)
		return nil, fmt.Errorf("%w: %s: %v", repo.ErrFailedToCall, method, err)
	}
	return out, nil
}
