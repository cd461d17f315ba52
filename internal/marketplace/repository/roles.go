package repository

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Role identifiers as used by the contract's AccessControl.
var (
	RoleDefaultAdmin = common.Hash{}
	RoleAdmin        = crypto.Keccak256Hash([]byte("ADMIN_ROLE"))
	RoleOrganizer    = crypto.Keccak256Hash([]byte("ORGANIZER_ROLE"))
)
