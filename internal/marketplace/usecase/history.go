package usecase

import (
	"context"

	"ticket-marketplace/internal/listing"
	"ticket-marketplace/internal/marketplace"
)

// OwnershipHistory pairs consecutive owners of a ticket. A ticket that never
// changed hands has no records.
func (uc *implUseCase) OwnershipHistory(ctx context.Context, ticketID uint64) (marketplace.OwnershipHistoryOutput, error) {
	ticket, err := uc.findTicket(ctx, ticketID)
	if err != nil {
		return marketplace.OwnershipHistoryOutput{}, err
	}

	owners, err := uc.ledger.ResaleHistory(ctx, ticketID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.OwnershipHistory ResaleHistory: %v", err)
		return marketplace.OwnershipHistoryOutput{}, uc.ledgerErr(err)
	}

	records := []marketplace.OwnershipRecord{}
	for i := 1; i < len(owners); i++ {
		records = append(records, marketplace.OwnershipRecord{
			TicketID:      ticket.TicketID,
			EventName:     ticket.EventName,
			EventDate:     ticket.EventDate,
			EventLocation: ticket.EventLocation,
			PreviousOwner: owners[i-1],
			NewOwner:      owners[i],
		})
	}

	return marketplace.OwnershipHistoryOutput{
		Ticket:  listing.TicketItem(ticket),
		Records: records,
	}, nil
}
