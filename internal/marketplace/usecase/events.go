package usecase

import (
	"context"

	"ticket-marketplace/internal/listing"
	"ticket-marketplace/internal/marketplace"
)

// EventTickets lists the tickets of one event. It keeps no state between
// calls: every call fetches, sorts, filters and windows afresh.
func (uc *implUseCase) EventTickets(ctx context.Context, input marketplace.EventTicketsInput) (marketplace.EventTicketsOutput, error) {
	event, err := uc.findEvent(ctx, input.EventID)
	if err != nil {
		return marketplace.EventTicketsOutput{}, err
	}

	view, err := listing.NewView(uc.sessions.PageSize())
	if err != nil {
		return marketplace.EventTicketsOutput{}, err
	}
	defer view.Close()

	page, _ := view.Reload(ctx, func(ctx context.Context) ([]listing.Item, error) {
		tickets, err := uc.ledger.TicketsForEvent(ctx, input.EventID)
		if err != nil {
			return nil, err
		}
		return listing.TicketItems(uc.markExpired(tickets)), nil
	})
	if page.Failed {
		uc.l.Warnf(ctx, "uc.EventTickets TicketsForEvent: %v", page.Err)
	}
	if input.Query != "" {
		view.Search(input.Query)
	}
	if input.Page > 1 {
		page = view.Goto(input.Page)
	} else {
		page = view.Snapshot()
	}

	return marketplace.EventTicketsOutput{
		Event: listing.EventItem(event, uc.ended(event.EventDate)),
		Page:  page,
	}, nil
}

// EventDetail returns one event and whether it can still be purchased.
func (uc *implUseCase) EventDetail(ctx context.Context, eventID uint64) (marketplace.EventDetailOutput, error) {
	event, err := uc.findEvent(ctx, eventID)
	if err != nil {
		return marketplace.EventDetailOutput{}, err
	}

	item := listing.EventItem(event, uc.ended(event.EventDate))
	out := marketplace.EventDetailOutput{Event: item, Purchasable: true}
	switch {
	case item.Flags.Has(listing.FlagExpired):
		out.Purchasable = false
		out.Reason = marketplace.ReasonEventEnded
	case item.Flags.Has(listing.FlagSoldOut):
		out.Purchasable = false
		out.Reason = marketplace.ReasonFullyBought
	}
	return out, nil
}
