package postgre

import (
	"fmt"
	"strings"
)

// ticketFilter narrows the ticket listing query.
type ticketFilter struct {
	TicketID  uint64
	EventID   uint64
	ForResale bool
}

const ticketColumns = `
	t.ticket_id, t.event_id, e.event_name, e.event_date, e.event_location,
	t.current_owner, t.price_wei::TEXT, t.is_for_sale, t.is_for_resale, t.is_expired`

// buildTicketQuery builds the full SELECT for tickets matching f, ordered by id.
func (r *implRepository) buildTicketQuery(f ticketFilter) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if f.TicketID != 0 {
		conditions = append(conditions, fmt.Sprintf("t.ticket_id = $%d", idx))
		args = append(args, int64(f.TicketID))
		idx++
	}
	if f.EventID != 0 {
		conditions = append(conditions, fmt.Sprintf("t.event_id = $%d", idx))
		args = append(args, int64(f.EventID))
		idx++
	}
	if f.ForResale {
		conditions = append(conditions, "t.is_for_resale = TRUE")
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}
	query := fmt.Sprintf(
		`SELECT %s FROM market_tickets t JOIN market_events e ON e.event_id = t.event_id WHERE %s ORDER BY t.ticket_id`,
		ticketColumns, where,
	)
	return query, args
}
