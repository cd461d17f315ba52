package contract

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"ticket-marketplace/internal/marketplace/repository"
)

type txBuilder struct {
	address common.Address
}

// NewTxBuilder creates a TxBuilder for the contract at address. It never
// touches the network.
func NewTxBuilder(address string) (repository.TxBuilder, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: contract %q", repository.ErrInvalidAddress, address)
	}
	return &txBuilder{address: common.HexToAddress(address)}, nil
}

func (b *txBuilder) ContractAddress() string {
	return b.address.Hex()
}

func (b *txBuilder) PurchaseTicket(opt repository.PurchaseTicketOptions) ([]byte, error) {
	return b.pack(methodPurchaseTicket, bigU64(opt.EventID))
}

func (b *txBuilder) PurchaseResaleTicket(opt repository.TicketOptions) ([]byte, error) {
	return b.pack(methodPurchaseResaleTicket, bigU64(opt.TicketID))
}

func (b *txBuilder) ResellTicket(opt repository.ResellTicketOptions) ([]byte, error) {
	if opt.Price == nil {
		return nil, fmt.Errorf("%w: %s: missing price", repository.ErrFailedToPack, methodResellTicket)
	}
	return b.pack(methodResellTicket, bigU64(opt.TicketID), opt.Price)
}

func (b *txBuilder) CancelResale(opt repository.TicketOptions) ([]byte, error) {
	return b.pack(methodCancelResale, bigU64(opt.TicketID))
}

func (b *txBuilder) CreateEvent(opt repository.EventOptions) ([]byte, error) {
	if opt.Price == nil {
		return nil, fmt.Errorf("%w: %s: missing price", repository.ErrFailedToPack, methodCreateEvent)
	}
	return b.pack(methodCreateEvent, opt.Name, opt.Date, opt.Location, opt.Price, bigU64(opt.AvailableTickets))
}

func (b *txBuilder) UpdateEvent(opt repository.UpdateEventOptions) ([]byte, error) {
	if opt.Price == nil {
		return nil, fmt.Errorf("%w: %s: missing price", repository.ErrFailedToPack, methodUpdateEvent)
	}
	return b.pack(methodUpdateEvent,
		bigU64(opt.EventID), opt.Name, opt.Date, opt.Location, opt.Price, bigU64(opt.AvailableTickets))
}

func (b *txBuilder) CreateTicket(opt repository.CreateTicketOptions) ([]byte, error) {
	if opt.Price == nil {
		return nil, fmt.Errorf("%w: %s: missing price", repository.ErrFailedToPack, methodCreateTicket)
	}
	return b.pack(methodCreateTicket, bigU64(opt.EventID), opt.Name, opt.Date, opt.Location, opt.Price)
}

func (b *txBuilder) pack(method string, args ...any) ([]byte, error) {
	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrFailedToPack, method, err)
	}
	return data, nil
}
