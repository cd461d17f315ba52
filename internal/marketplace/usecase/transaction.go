package usecase

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"ticket-marketplace/internal/marketplace"
	repo "ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/internal/model"
	"ticket-marketplace/internal/validation"
)

// PreparePurchase builds a primary purchase of one ticket of an event.
func (uc *implUseCase) PreparePurchase(ctx context.Context, input marketplace.PurchaseInput) (marketplace.PreparedTx, error) {
	if err := uc.validate(validation.Fields{
		validation.FieldWallet:  input.Wallet,
		validation.FieldEventID: input.EventID,
	}); err != nil {
		return marketplace.PreparedTx{}, err
	}

	event, err := uc.findEvent(ctx, parseID(input.EventID))
	if err != nil {
		return marketplace.PreparedTx{}, err
	}
	if uc.ended(event.EventDate) {
		return marketplace.PreparedTx{}, marketplace.ErrEventEnded
	}
	if event.SoldOut() {
		return marketplace.PreparedTx{}, marketplace.ErrSoldOut
	}

	data, err := uc.tx.PurchaseTicket(repo.PurchaseTicketOptions{EventID: event.EventID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PreparePurchase PurchaseTicket: %v", err)
		return marketplace.PreparedTx{}, err
	}
	return uc.prepared("purchaseTicket", input.Wallet, data, cloneWei(event.Price)), nil
}

// PrepareResaleBuy builds the purchase of a ticket listed for resale.
func (uc *implUseCase) PrepareResaleBuy(ctx context.Context, input marketplace.ResaleBuyInput) (marketplace.PreparedTx, error) {
	if err := uc.validate(validation.Fields{
		validation.FieldWallet:   input.Wallet,
		validation.FieldTicketID: input.TicketID,
	}); err != nil {
		return marketplace.PreparedTx{}, err
	}

	ticket, err := uc.findTicket(ctx, parseID(input.TicketID))
	if err != nil {
		return marketplace.PreparedTx{}, err
	}
	if !ticket.IsForResale {
		return marketplace.PreparedTx{}, marketplace.ErrNotForResale
	}
	if ticket.IsExpired {
		return marketplace.PreparedTx{}, marketplace.ErrTicketExpired
	}
	if ticket.OwnedBy(strings.TrimSpace(input.Wallet)) {
		return marketplace.PreparedTx{}, marketplace.ErrAlreadyOwner
	}

	data, err := uc.tx.PurchaseResaleTicket(repo.TicketOptions{TicketID: ticket.TicketID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PrepareResaleBuy PurchaseResaleTicket: %v", err)
		return marketplace.PreparedTx{}, err
	}
	return uc.prepared("purchaseResaleTicket", input.Wallet, data, cloneWei(ticket.Price)), nil
}

// PrepareResell lists an owned ticket for resale.
func (uc *implUseCase) PrepareResell(ctx context.Context, input marketplace.ResellInput) (marketplace.PreparedTx, error) {
	if err := uc.validate(validation.Fields{
		validation.FieldWallet:   input.Wallet,
		validation.FieldTicketID: input.TicketID,
		validation.FieldPriceEth: input.PriceEth,
	}); err != nil {
		return marketplace.PreparedTx{}, err
	}

	ticket, err := uc.ownedTicket(ctx, input.Wallet, input.TicketID)
	if err != nil {
		return marketplace.PreparedTx{}, err
	}
	if ticket.IsExpired {
		return marketplace.PreparedTx{}, marketplace.ErrTicketExpired
	}
	if ticket.IsForResale {
		return marketplace.PreparedTx{}, marketplace.ErrAlreadyListed
	}

	data, err := uc.tx.ResellTicket(repo.ResellTicketOptions{
		TicketID: ticket.TicketID,
		Price:    parseEther(input.PriceEth),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PrepareResell ResellTicket: %v", err)
		return marketplace.PreparedTx{}, err
	}
	return uc.prepared("resellTicket", input.Wallet, data, nil), nil
}

// PrepareCancelResale withdraws an owned ticket from resale.
func (uc *implUseCase) PrepareCancelResale(ctx context.Context, input marketplace.CancelResaleInput) (marketplace.PreparedTx, error) {
	if err := uc.validate(validation.Fields{
		validation.FieldWallet:   input.Wallet,
		validation.FieldTicketID: input.TicketID,
	}); err != nil {
		return marketplace.PreparedTx{}, err
	}

	ticket, err := uc.ownedTicket(ctx, input.Wallet, input.TicketID)
	if err != nil {
		return marketplace.PreparedTx{}, err
	}
	if !ticket.IsForResale {
		return marketplace.PreparedTx{}, marketplace.ErrNotForResale
	}

	data, err := uc.tx.CancelResale(repo.TicketOptions{TicketID: ticket.TicketID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PrepareCancelResale CancelResale: %v", err)
		return marketplace.PreparedTx{}, err
	}
	return uc.prepared("cancelResale", input.Wallet, data, nil), nil
}

// PrepareCreateEvent builds a new event. Staff only.
func (uc *implUseCase) PrepareCreateEvent(ctx context.Context, input marketplace.EventFormInput) (marketplace.PreparedTx, error) {
	if err := uc.validate(eventFields(input)); err != nil {
		return marketplace.PreparedTx{}, err
	}
	if err := uc.requireStaff(ctx, input.Wallet); err != nil {
		return marketplace.PreparedTx{}, err
	}

	data, err := uc.tx.CreateEvent(eventOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.PrepareCreateEvent CreateEvent: %v", err)
		return marketplace.PreparedTx{}, err
	}
	return uc.prepared("createEvent", input.Wallet, data, nil), nil
}

// PrepareUpdateEvent replaces the fields of an existing event. Staff only.
func (uc *implUseCase) PrepareUpdateEvent(ctx context.Context, input marketplace.UpdateEventInput) (marketplace.PreparedTx, error) {
	fields := eventFields(input.EventFormInput)
	fields[validation.FieldEventID] = input.EventID
	if err := uc.validate(fields); err != nil {
		return marketplace.PreparedTx{}, err
	}
	if err := uc.requireStaff(ctx, input.Wallet); err != nil {
		return marketplace.PreparedTx{}, err
	}

	event, err := uc.findEvent(ctx, parseID(input.EventID))
	if err != nil {
		return marketplace.PreparedTx{}, err
	}

	data, err := uc.tx.UpdateEvent(repo.UpdateEventOptions{
		EventID:      event.EventID,
		EventOptions: eventOptions(input.EventFormInput),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PrepareUpdateEvent UpdateEvent: %v", err)
		return marketplace.PreparedTx{}, err
	}
	return uc.prepared("updateEvent", input.Wallet, data, nil), nil
}

// PrepareCreateTicket mints a ticket carrying the event's details. Staff only.
func (uc *implUseCase) PrepareCreateTicket(ctx context.Context, input marketplace.CreateTicketInput) (marketplace.PreparedTx, error) {
	if err := uc.validate(validation.Fields{
		validation.FieldWallet:  input.Wallet,
		validation.FieldEventID: input.EventID,
	}); err != nil {
		return marketplace.PreparedTx{}, err
	}
	if err := uc.requireStaff(ctx, input.Wallet); err != nil {
		return marketplace.PreparedTx{}, err
	}

	event, err := uc.findEvent(ctx, parseID(input.EventID))
	if err != nil {
		return marketplace.PreparedTx{}, err
	}
	if uc.ended(event.EventDate) {
		return marketplace.PreparedTx{}, marketplace.ErrEventEnded
	}

	data, err := uc.tx.CreateTicket(repo.CreateTicketOptions{
		EventID:  event.EventID,
		Name:     event.EventName,
		Date:     event.EventDate,
		Location: event.EventLocation,
		Price:    cloneWei(event.Price),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PrepareCreateTicket CreateTicket: %v", err)
		return marketplace.PreparedTx{}, err
	}
	return uc.prepared("createTicket", input.Wallet, data, nil), nil
}

// ownedTicket loads a ticket and checks the caller holds it.
func (uc *implUseCase) ownedTicket(ctx context.Context, wallet, ticketID string) (model.Ticket, error) {
	ticket, err := uc.findTicket(ctx, parseID(ticketID))
	if err != nil {
		return model.Ticket{}, err
	}
	if !ticket.OwnedBy(strings.TrimSpace(wallet)) {
		return model.Ticket{}, fmt.Errorf("%w: ticket %d", marketplace.ErrNotOwner, ticket.TicketID)
	}
	return ticket, nil
}

func (uc *implUseCase) prepared(method, from string, data []byte, value *big.Int) marketplace.PreparedTx {
	return marketplace.PreparedTx{
		Method: method,
		From:   checksum(from),
		To:     uc.tx.ContractAddress(),
		Data:   data,
		Value:  value,
	}
}

func eventFields(in marketplace.EventFormInput) validation.Fields {
	return validation.Fields{
		validation.FieldWallet:           in.Wallet,
		validation.FieldEventName:        in.EventName,
		validation.FieldEventDate:        in.EventDate,
		validation.FieldEventLocation:    in.EventLocation,
		validation.FieldPriceEth:         in.PriceEth,
		validation.FieldAvailableTickets: in.AvailableTickets,
	}
}

func eventOptions(in marketplace.EventFormInput) repo.EventOptions {
	return repo.EventOptions{
		Name:             strings.TrimSpace(in.EventName),
		Date:             strings.TrimSpace(in.EventDate),
		Location:         strings.TrimSpace(in.EventLocation),
		Price:            parseEther(in.PriceEth),
		AvailableTickets: parseID(in.AvailableTickets),
	}
}
