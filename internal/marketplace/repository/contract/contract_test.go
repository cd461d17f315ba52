package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	repo "ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/pkg/log"
)

const (
	contractAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	aliceAddr    = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

// fakeChain answers eth_call by decoding the selector and packing the
// handler's return values with the real ABI.
type fakeChain struct {
	handlers map[string]func(args []any) ([]any, error)
	calls    []string
}

func (f *fakeChain) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeChain) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	method, err := parsedABI.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	f.calls = append(f.calls, method.Name)

	h, ok := f.handlers[method.Name]
	if !ok {
		return nil, fmt.Errorf("execution reverted: no handler for %s", method.Name)
	}
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}
	out, err := h(args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func newTestLedger(t *testing.T, chain *fakeChain) repo.Ledger {
	t.Helper()
	l, err := New(chain, contractAddr, log.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func sampleTicket(id, eventID int64, owner string, forResale bool) ticketTuple {
	return ticketTuple{
		TicketId:      big.NewInt(id),
		EventId:       big.NewInt(eventID),
		EventName:     "Concert",
		EventDate:     "2030-01-15",
		EventLocation: "Hanoi",
		CurrentOwner:  common.HexToAddress(owner),
		Price:         big.NewInt(1e18),
		IsForSale:     owner == "",
		IsForResale:   forResale,
	}
}

func TestNewRejectsBadAddress(t *testing.T) {
	_, err := New(&fakeChain{}, "0x1234", log.NewNop())
	if !errors.Is(err, repo.ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestAllEvents(t *testing.T) {
	chain := &fakeChain{handlers: map[string]func([]any) ([]any, error){
		methodAllEvents: func([]any) ([]any, error) {
			return []any{[]eventTuple{{
				EventId:          big.NewInt(1),
				EventName:        "Concert",
				EventDate:        "2030-01-15",
				EventLocation:    "Hanoi",
				Price:            big.NewInt(5e17),
				AvailableTickets: big.NewInt(3),
				TicketIds:        []*big.Int{big.NewInt(1), big.NewInt(2)},
			}}}, nil
		},
	}}

	events, err := newTestLedger(t, chain).AllEvents(context.Background())
	if err != nil {
		t.Fatalf("AllEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.EventID != 1 || e.EventName != "Concert" || e.AvailableTickets != 3 {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.Price.Cmp(big.NewInt(5e17)) != 0 {
		t.Errorf("unexpected price %s", e.Price)
	}
	if len(e.TicketIDs) != 2 || e.TicketIDs[1] != 2 {
		t.Errorf("unexpected ticket ids %v", e.TicketIDs)
	}
}

func TestTicketsForEvent(t *testing.T) {
	var gotEvent *big.Int
	chain := &fakeChain{handlers: map[string]func([]any) ([]any, error){
		methodTicketsForEvent: func(args []any) ([]any, error) {
			gotEvent = args[0].(*big.Int)
			return []any{[]ticketTuple{
				sampleTicket(1, 7, "", false),
				sampleTicket(2, 7, aliceAddr, true),
			}}, nil
		},
	}}

	tickets, err := newTestLedger(t, chain).TicketsForEvent(context.Background(), 7)
	if err != nil {
		t.Fatalf("TicketsForEvent: %v", err)
	}
	if gotEvent.Int64() != 7 {
		t.Errorf("expected event id 7 on the wire, got %s", gotEvent)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	if !tickets[0].Unowned() || !tickets[0].IsForSale {
		t.Errorf("ticket 1 should be unowned and for sale: %+v", tickets[0])
	}
	if !tickets[1].OwnedBy(aliceAddr) || !tickets[1].IsForResale {
		t.Errorf("ticket 2 should be alice's and for resale: %+v", tickets[1])
	}
}

func TestTicket(t *testing.T) {
	chain := &fakeChain{handlers: map[string]func([]any) ([]any, error){
		methodTicketCount: func([]any) ([]any, error) {
			return []any{big.NewInt(2)}, nil
		},
		methodTicket: func(args []any) ([]any, error) {
			id := args[0].(*big.Int).Int64()
			return []any{sampleTicket(id, 1, aliceAddr, false)}, nil
		},
	}}
	ledger := newTestLedger(t, chain)

	tk, err := ledger.Ticket(context.Background(), 2)
	if err != nil {
		t.Fatalf("Ticket: %v", err)
	}
	if tk.TicketID != 2 || !tk.OwnedBy(aliceAddr) {
		t.Errorf("unexpected ticket %+v", tk)
	}

	missing, err := ledger.Ticket(context.Background(), 9)
	if err != nil {
		t.Fatalf("Ticket(9): %v", err)
	}
	if missing.TicketID != 0 {
		t.Errorf("expected zero ticket for unknown id, got %+v", missing)
	}
}

func TestResaleHistory(t *testing.T) {
	chain := &fakeChain{handlers: map[string]func([]any) ([]any, error){
		methodResaleHistory: func([]any) ([]any, error) {
			return []any{[]common.Address{
				common.HexToAddress(aliceAddr),
				common.HexToAddress(contractAddr),
			}}, nil
		},
	}}

	owners, err := newTestLedger(t, chain).ResaleHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("ResaleHistory: %v", err)
	}
	if len(owners) != 2 || owners[0] != aliceAddr {
		t.Errorf("unexpected owners %v", owners)
	}
}

func TestHasRole(t *testing.T) {
	chain := &fakeChain{handlers: map[string]func([]any) ([]any, error){
		methodHasRole: func(args []any) ([]any, error) {
			role := common.Hash(args[0].([32]byte))
			return []any{role == repo.RoleOrganizer}, nil
		},
	}}
	ledger := newTestLedger(t, chain)

	ok, err := ledger.HasRole(context.Background(), repo.RoleOrganizer, aliceAddr)
	if err != nil || !ok {
		t.Errorf("expected organizer role, got %v %v", ok, err)
	}
	ok, err = ledger.HasRole(context.Background(), repo.RoleAdmin, aliceAddr)
	if err != nil || ok {
		t.Errorf("expected no admin role, got %v %v", ok, err)
	}
	if _, err := ledger.HasRole(context.Background(), repo.RoleAdmin, "bob"); !errors.Is(err, repo.ErrInvalidAddress) {
		t.Errorf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestCallFailure(t *testing.T) {
	_, err := newTestLedger(t, &fakeChain{}).ResaleTickets(context.Background())
	if !errors.Is(err, repo.ErrFailedToCall) {
		t.Fatalf("expected ErrFailedToCall, got %v", err)
	}
}

func TestTxBuilder(t *testing.T) {
	b, err := NewTxBuilder(contractAddr)
	if err != nil {
		t.Fatalf("NewTxBuilder: %v", err)
	}
	if b.ContractAddress() != contractAddr {
		t.Errorf("unexpected address %s", b.ContractAddress())
	}

	data, err := b.ResellTicket(repo.ResellTicketOptions{TicketID: 4, Price: big.NewInt(2e18)})
	if err != nil {
		t.Fatalf("ResellTicket: %v", err)
	}
	method, err := parsedABI.MethodById(data[:4])
	if err != nil || method.Name != methodResellTicket {
		t.Fatalf("unexpected selector: %v %v", method, err)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	if args[0].(*big.Int).Int64() != 4 || args[1].(*big.Int).Cmp(big.NewInt(2e18)) != 0 {
		t.Errorf("unexpected args %v", args)
	}

	data, err = b.CreateEvent(repo.EventOptions{
		Name: "Expo", Date: "2030-02-01", Location: "Da Nang", Price: big.NewInt(1), AvailableTickets: 50,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	method, _ = parsedABI.MethodById(data[:4])
	args, _ = method.Inputs.Unpack(data[4:])
	if method.Name != methodCreateEvent || args[0].(string) != "Expo" || args[4].(*big.Int).Int64() != 50 {
		t.Errorf("unexpected createEvent call %s %v", method.Name, args)
	}

	if _, err := b.CreateTicket(repo.CreateTicketOptions{EventID: 1}); !errors.Is(err, repo.ErrFailedToPack) {
		t.Errorf("expected ErrFailedToPack without price, got %v", err)
	}
}
