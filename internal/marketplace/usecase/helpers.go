package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"ticket-marketplace/internal/marketplace"
	repo "ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/internal/model"
	"ticket-marketplace/internal/validation"
	"ticket-marketplace/pkg/ethunit"
)

// validate runs the rule table and tags failures with ErrInvalidInput.
func (uc *implUseCase) validate(fields validation.Fields) error {
	if err := uc.validator.Validate(fields); err != nil {
		return fmt.Errorf("%w: %w", marketplace.ErrInvalidInput, err)
	}
	return nil
}

// ledgerErr reports a failed ledger read as ErrLedgerUnavailable, keeping
// address errors as bad input.
func (uc *implUseCase) ledgerErr(err error) error {
	if errors.Is(err, repo.ErrInvalidAddress) {
		return fmt.Errorf("%w: %v", marketplace.ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %v", marketplace.ErrLedgerUnavailable, err)
}

// parseID reads an id that already passed validation.
func parseID(s string) uint64 {
	n, _ := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return n
}

// parseEther reads a price that already passed validation.
func parseEther(s string) *big.Int {
	wei, err := ethunit.ParseEther(strings.TrimSpace(s))
	if err != nil {
		return new(big.Int)
	}
	return wei
}

func checksum(wallet string) string {
	return common.HexToAddress(strings.TrimSpace(wallet)).Hex()
}

func cloneWei(n *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n)
}

// ended reports whether an event day is over in the configured timezone.
func (uc *implUseCase) ended(date string) bool {
	return uc.dates.HasEnded(date, uc.now())
}

// markExpired flags tickets whose event day is over even if the ledger has
// not caught up yet.
func (uc *implUseCase) markExpired(tickets []model.Ticket) []model.Ticket {
	for i := range tickets {
		if !tickets[i].IsExpired && uc.ended(tickets[i].EventDate) {
			tickets[i].IsExpired = true
		}
	}
	return tickets
}

func (uc *implUseCase) findEvent(ctx context.Context, eventID uint64) (model.Event, error) {
	events, err := uc.ledger.AllEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.findEvent AllEvents: %v", err)
		return model.Event{}, uc.ledgerErr(err)
	}
	for _, e := range events {
		if e.EventID == eventID {
			return e, nil
		}
	}
	return model.Event{}, marketplace.ErrEventNotFound
}

func (uc *implUseCase) findTicket(ctx context.Context, ticketID uint64) (model.Ticket, error) {
	t, err := uc.ledger.Ticket(ctx, ticketID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.findTicket Ticket: %v", err)
		return model.Ticket{}, uc.ledgerErr(err)
	}
	if t.TicketID == 0 {
		return model.Ticket{}, marketplace.ErrTicketNotFound
	}
	if !t.IsExpired && uc.ended(t.EventDate) {
		t.IsExpired = true
	}
	return t, nil
}
