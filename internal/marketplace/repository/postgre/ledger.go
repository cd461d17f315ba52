package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lib/pq"

	repo "ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/internal/model"
)

// AllEvents returns every indexed event with the ids of its tickets.
func (r *implRepository) AllEvents(ctx context.Context) ([]model.Event, error) {
	const query = `
		SELECT e.event_id, e.event_name, e.event_date, e.event_location, e.price_wei::TEXT,
		       e.available_tickets,
		       COALESCE(ARRAY_AGG(t.ticket_id ORDER BY t.ticket_id) FILTER (WHERE t.ticket_id IS NOT NULL), '{}')
		FROM market_events e
		LEFT JOIN market_tickets t ON t.event_id = e.event_id
		GROUP BY e.event_id
		ORDER BY e.event_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AllEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var (
			e         model.Event
			id        int64
			available int64
			price     string
			ticketIDs pq.Int64Array
		)
		if err := rows.Scan(&id, &e.EventName, &e.EventDate, &e.EventLocation, &price, &available, &ticketIDs); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("AllEvents"), err)
			return nil, repo.ErrFailedToList
		}
		e.EventID = uint64(id)
		e.AvailableTickets = uint64(available)
		e.Price = parseWei(price)
		e.TicketIDs = make([]uint64, len(ticketIDs))
		for i, tid := range ticketIDs {
			e.TicketIDs[i] = uint64(tid)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("AllEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// TicketsForEvent returns the tickets of one event.
func (r *implRepository) TicketsForEvent(ctx context.Context, eventID uint64) ([]model.Ticket, error) {
	return r.listTickets(ctx, "TicketsForEvent", ticketFilter{EventID: eventID})
}

// ResaleTickets returns tickets listed for resale.
func (r *implRepository) ResaleTickets(ctx context.Context) ([]model.Ticket, error) {
	return r.listTickets(ctx, "ResaleTickets", ticketFilter{ForResale: true})
}

// Ticket returns one ticket, or a zero value when it is not indexed.
func (r *implRepository) Ticket(ctx context.Context, ticketID uint64) (model.Ticket, error) {
	if ticketID == 0 {
		return model.Ticket{}, nil
	}
	tickets, err := r.listTickets(ctx, "Ticket", ticketFilter{TicketID: ticketID})
	if err != nil {
		return model.Ticket{}, repo.ErrFailedToGet
	}
	if len(tickets) == 0 {
		return model.Ticket{}, nil
	}
	return tickets[0], nil
}

// TicketCount returns the number of indexed tickets.
func (r *implRepository) TicketCount(ctx context.Context) (uint64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM market_tickets`).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TicketCount"), err)
		return 0, repo.ErrFailedToGet
	}
	return uint64(n), nil
}

// ResaleHistory returns every owner of a ticket, oldest first.
func (r *implRepository) ResaleHistory(ctx context.Context, ticketID uint64) ([]string, error) {
	const query = `SELECT owner FROM market_ownership WHERE ticket_id = $1 ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, int64(ticketID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ResaleHistory"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, repo.ErrFailedToList
		}
		owners = append(owners, owner)
	}
	return owners, rows.Err()
}

// HasRole checks the indexed AccessControl membership.
func (r *implRepository) HasRole(ctx context.Context, role common.Hash, account string) (bool, error) {
	if !common.IsHexAddress(account) {
		return false, fmt.Errorf("%w: %q", repo.ErrInvalidAddress, account)
	}
	const query = `SELECT 1 FROM market_role_members WHERE role = $1 AND LOWER(account) = $2 LIMIT 1`

	var one int
	err := r.db.QueryRowContext(ctx, query, role.Hex(), strings.ToLower(account)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasRole"), err)
		return false, repo.ErrFailedToGet
	}
	return true, nil
}

func (r *implRepository) listTickets(ctx context.Context, method string, f ticketFilter) ([]model.Ticket, error) {
	query, args := r.buildTicketQuery(f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tickets []model.Ticket
	for rows.Next() {
		var (
			t                 model.Ticket
			ticketID, eventID int64
			price             string
		)
		if err := rows.Scan(
			&ticketID, &eventID, &t.EventName, &t.EventDate, &t.EventLocation,
			&t.CurrentOwner, &price, &t.IsForSale, &t.IsForResale, &t.IsExpired,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		t.TicketID = uint64(ticketID)
		t.EventID = uint64(eventID)
		t.Price = parseWei(price)
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return tickets, nil
}

// parseWei reads a NUMERIC rendered as text. Malformed values read as zero.
func parseWei(s string) *big.Int {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return new(big.Int)
	}
	return n
}
