package usecase

import (
	"context"
	"errors"
	"strings"

	"ticket-marketplace/internal/listing"
	"ticket-marketplace/internal/marketplace"
	"ticket-marketplace/internal/model"
	"ticket-marketplace/internal/session"
	"ticket-marketplace/internal/validation"
)

// Listing returns the current page of a listing view, creating the view and
// running its first load when the session has not seen it yet.
func (uc *implUseCase) Listing(ctx context.Context, scope marketplace.ListingScope) (marketplace.ListingOutput, error) {
	view, scope, err := uc.view(ctx, scope)
	if err != nil {
		return marketplace.ListingOutput{}, err
	}
	return uc.output(scope, view.Snapshot()), nil
}

// Reload replaces the listing with a fresh fetch and goes back to page 1.
func (uc *implUseCase) Reload(ctx context.Context, scope marketplace.ListingScope) (marketplace.ListingOutput, error) {
	scope, _, view, err := uc.open(scope)
	if err != nil {
		return marketplace.ListingOutput{}, err
	}
	return uc.output(scope, uc.load(ctx, scope, view)), nil
}

// Search filters the loaded listing. It never fetches, except for the first
// load of a view that did not exist yet.
func (uc *implUseCase) Search(ctx context.Context, input marketplace.SearchInput) (marketplace.ListingOutput, error) {
	view, scope, err := uc.view(ctx, input.Scope)
	if err != nil {
		return marketplace.ListingOutput{}, err
	}
	return uc.output(scope, view.Search(input.Query)), nil
}

// Paginate moves one page forward or back, saturating at both ends.
func (uc *implUseCase) Paginate(ctx context.Context, input marketplace.PaginateInput) (marketplace.ListingOutput, error) {
	view, scope, err := uc.view(ctx, input.Scope)
	if err != nil {
		return marketplace.ListingOutput{}, err
	}

	var page listing.Page
	switch {
	case input.Direction > 0:
		page = view.Next()
	case input.Direction < 0:
		page = view.Prev()
	default:
		page = view.Snapshot()
	}
	return uc.output(scope, page), nil
}

// Goto jumps to a page, clamped into range.
func (uc *implUseCase) Goto(ctx context.Context, input marketplace.GotoInput) (marketplace.ListingOutput, error) {
	view, scope, err := uc.view(ctx, input.Scope)
	if err != nil {
		return marketplace.ListingOutput{}, err
	}
	return uc.output(scope, view.Goto(input.Page)), nil
}

// view returns the session view for scope, loading it when new.
func (uc *implUseCase) view(ctx context.Context, scope marketplace.ListingScope) (*listing.View, marketplace.ListingScope, error) {
	scope, created, view, err := uc.open(scope)
	if err != nil {
		return nil, scope, err
	}
	if created {
		uc.load(ctx, scope, view)
	}
	return view, scope, nil
}

func (uc *implUseCase) open(scope marketplace.ListingScope) (marketplace.ListingScope, bool, *listing.View, error) {
	scope, err := uc.normalizeScope(scope)
	if err != nil {
		return scope, false, nil, err
	}
	view, created, err := uc.sessions.Get(session.Key{
		SessionID: scope.SessionID,
		Listing:   string(scope.Kind),
		Wallet:    scope.Wallet,
	})
	if errors.Is(err, session.ErrInvalidID) {
		return scope, false, nil, marketplace.ErrInvalidSession
	}
	if err != nil {
		return scope, false, nil, err
	}
	return scope, created, view, nil
}

func (uc *implUseCase) normalizeScope(scope marketplace.ListingScope) (marketplace.ListingScope, error) {
	if !scope.Kind.Valid() {
		return scope, marketplace.ErrInvalidListing
	}
	scope.SessionID = strings.TrimSpace(scope.SessionID)
	if scope.SessionID == "" {
		scope.SessionID = session.NewID()
	}

	if scope.Kind != marketplace.ListingMine {
		scope.Wallet = ""
		return scope, nil
	}
	if strings.TrimSpace(scope.Wallet) == "" {
		return scope, marketplace.ErrWalletRequired
	}
	if err := uc.validate(validation.Fields{validation.FieldWallet: scope.Wallet}); err != nil {
		return scope, err
	}
	scope.Wallet = checksum(scope.Wallet)
	return scope, nil
}

// load runs a reload. Fetch failures are absorbed into the page; a reload
// overtaken by a newer one returns the newer state.
func (uc *implUseCase) load(ctx context.Context, scope marketplace.ListingScope, view *listing.View) listing.Page {
	page, err := view.Reload(ctx, uc.fetcher(scope))
	if errors.Is(err, listing.ErrStaleLoad) {
		uc.l.Debugf(ctx, "uc.load %s: superseded by a newer reload", scope.Kind)
		return view.Snapshot()
	}
	if page.Failed {
		uc.l.Warnf(ctx, "uc.load %s: %v", scope.Kind, page.Err)
	}
	return page
}

func (uc *implUseCase) output(scope marketplace.ListingScope, page listing.Page) marketplace.ListingOutput {
	return marketplace.ListingOutput{
		SessionID: scope.SessionID,
		Kind:      scope.Kind,
		Page:      page,
	}
}

// fetcher builds the FetchFunc behind each listing.
func (uc *implUseCase) fetcher(scope marketplace.ListingScope) listing.FetchFunc {
	switch scope.Kind {
	case marketplace.ListingMarketplace:
		return func(ctx context.Context) ([]listing.Item, error) {
			tickets, err := uc.ledger.ResaleTickets(ctx)
			if err != nil {
				return nil, err
			}
			return listing.TicketItems(uc.markExpired(tickets)), nil
		}
	case marketplace.ListingMine:
		wallet := scope.Wallet
		return func(ctx context.Context) ([]listing.Item, error) {
			tickets, err := uc.allTickets(ctx)
			if err != nil {
				return nil, err
			}
			mine := tickets[:0]
			for _, t := range tickets {
				if t.OwnedBy(wallet) {
					mine = append(mine, t)
				}
			}
			return listing.TicketItems(mine), nil
		}
	case marketplace.ListingEvents:
		return func(ctx context.Context) ([]listing.Item, error) {
			events, err := uc.ledger.AllEvents(ctx)
			if err != nil {
				return nil, err
			}
			items := make([]listing.Item, len(events))
			for i, e := range events {
				items[i] = listing.EventItem(e, uc.ended(e.EventDate))
			}
			return items, nil
		}
	default:
		return func(ctx context.Context) ([]listing.Item, error) {
			tickets, err := uc.allTickets(ctx)
			if err != nil {
				return nil, err
			}
			return listing.TicketItems(tickets), nil
		}
	}
}

// allTickets collects the tickets of every event.
func (uc *implUseCase) allTickets(ctx context.Context) ([]model.Ticket, error) {
	events, err := uc.ledger.AllEvents(ctx)
	if err != nil {
		return nil, err
	}

	var tickets []model.Ticket
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ts, err := uc.ledger.TicketsForEvent(ctx, e.EventID)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ts...)
	}
	return uc.markExpired(tickets), nil
}
