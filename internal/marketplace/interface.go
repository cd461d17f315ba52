package marketplace

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Listings (per-session view state)
	Listing(ctx context.Context, scope ListingScope) (ListingOutput, error)
	Reload(ctx context.Context, scope ListingScope) (ListingOutput, error)
	Search(ctx context.Context, input SearchInput) (ListingOutput, error)
	Paginate(ctx context.Context, input PaginateInput) (ListingOutput, error)
	Goto(ctx context.Context, input GotoInput) (ListingOutput, error)

	// Read-only pages
	EventTickets(ctx context.Context, input EventTicketsInput) (EventTicketsOutput, error)
	EventDetail(ctx context.Context, eventID uint64) (EventDetailOutput, error)
	OwnershipHistory(ctx context.Context, ticketID uint64) (OwnershipHistoryOutput, error)

	// Roles
	Roles(ctx context.Context, wallet string) (Roles, error)
	IsStaff(ctx context.Context, wallet string) (bool, error)

	// Transaction preparation
	PreparePurchase(ctx context.Context, input PurchaseInput) (PreparedTx, error)
	PrepareResaleBuy(ctx context.Context, input ResaleBuyInput) (PreparedTx, error)
	PrepareResell(ctx context.Context, input ResellInput) (PreparedTx, error)
	PrepareCancelResale(ctx context.Context, input CancelResaleInput) (PreparedTx, error)
	PrepareCreateEvent(ctx context.Context, input EventFormInput) (PreparedTx, error)
	PrepareUpdateEvent(ctx context.Context, input UpdateEventInput) (PreparedTx, error)
	PrepareCreateTicket(ctx context.Context, input CreateTicketInput) (PreparedTx, error)

	// Calendar
	ExportEventToCalendar(ctx context.Context, eventID uint64) (CalendarExportOutput, error)
}
