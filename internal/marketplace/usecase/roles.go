package usecase

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"ticket-marketplace/internal/marketplace"
	repo "ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/internal/validation"
)

// Roles resolves the managing roles of a wallet. The configured admin
// address is an admin without asking the ledger.
func (uc *implUseCase) Roles(ctx context.Context, wallet string) (marketplace.Roles, error) {
	if err := uc.validate(validation.Fields{validation.FieldWallet: wallet}); err != nil {
		return marketplace.Roles{}, err
	}
	wallet = strings.TrimSpace(wallet)

	var roles marketplace.Roles
	if uc.opts.AdminAddress != "" && strings.EqualFold(wallet, uc.opts.AdminAddress) {
		roles.Admin = true
	}

	checks := []struct {
		role common.Hash
		set  *bool
	}{
		{repo.RoleDefaultAdmin, &roles.Admin},
		{repo.RoleAdmin, &roles.Admin},
		{repo.RoleOrganizer, &roles.Organizer},
	}
	for _, c := range checks {
		if *c.set {
			continue
		}
		ok, err := uc.ledger.HasRole(ctx, c.role, wallet)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Roles HasRole %s: %v", c.role.Hex(), err)
			return marketplace.Roles{}, uc.ledgerErr(err)
		}
		*c.set = ok
	}
	return roles, nil
}

// IsStaff reports whether the wallet may manage events and tickets.
func (uc *implUseCase) IsStaff(ctx context.Context, wallet string) (bool, error) {
	roles, err := uc.Roles(ctx, wallet)
	if err != nil {
		return false, err
	}
	return roles.Staff(), nil
}

func (uc *implUseCase) requireStaff(ctx context.Context, wallet string) error {
	staff, err := uc.IsStaff(ctx, wallet)
	if err != nil {
		return err
	}
	if !staff {
		return marketplace.ErrNotStaff
	}
	return nil
}
