package contract

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/pkg/log"
)

type implLedger struct {
	contract *bind.BoundContract
	address  common.Address
	l        log.Logger
}

// New creates a Ledger that reads state straight from the deployed contract.
func New(caller bind.ContractCaller, address string, l log.Logger) (repository.Ledger, error) {
	if caller == nil {
		panic("marketplace/repository/contract: caller is required")
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: contract %q", repository.ErrInvalidAddress, address)
	}
	addr := common.HexToAddress(address)
	return &implLedger{
		contract: bind.NewBoundContract(addr, parsedABI, caller, nil, nil),
		address:  addr,
		l:        l,
	}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implLedger) dsn(method string) string {
	return fmt.Sprintf("marketplace/repository/contract.%s", method)
}
