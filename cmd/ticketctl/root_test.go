package main

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace/internal/listing"
	"ticket-marketplace/internal/marketplace"
)

type fakeUseCase struct {
	marketplace.UseCase

	search marketplace.SearchInput
	gotos  []marketplace.GotoInput
	closed bool
}

func (f *fakeUseCase) page(kind marketplace.ListingKind, index int) marketplace.ListingOutput {
	return marketplace.ListingOutput{
		SessionID: "sess",
		Kind:      kind,
		Page: listing.Page{
			Items: []listing.Item{{
				ID: 7, Kind: kind.ItemKind(), Name: "Monaco GP", Date: "2030-05-25",
				Location: "Monaco", Price: big.NewInt(2e18), Available: 3,
			}},
			PageIndex: index, TotalPages: 3, TotalItems: 21, AllItems: 21,
			State: listing.StateReady,
		},
	}
}

func (f *fakeUseCase) Search(ctx context.Context, input marketplace.SearchInput) (marketplace.ListingOutput, error) {
	f.search = input
	return f.page(input.Scope.Kind, 1), nil
}

func (f *fakeUseCase) Goto(ctx context.Context, input marketplace.GotoInput) (marketplace.ListingOutput, error) {
	f.gotos = append(f.gotos, input)
	return f.page(input.Scope.Kind, input.Page), nil
}

func (f *fakeUseCase) OwnershipHistory(ctx context.Context, ticketID uint64) (marketplace.OwnershipHistoryOutput, error) {
	return marketplace.OwnershipHistoryOutput{
		Ticket:  listing.Item{ID: ticketID},
		Records: []marketplace.OwnershipRecord{},
	}, nil
}

func run(t *testing.T, uc *fakeUseCase, args ...string) (string, error) {
	t.Helper()
	open := func(context.Context) (marketplace.UseCase, func(), error) {
		return uc, func() { uc.closed = true }, nil
	}
	cmd := newRootCmd(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEventsCommand(t *testing.T) {
	uc := &fakeUseCase{}
	out, err := run(t, uc, "events", "--query", "monaco", "--page", "2")
	require.NoError(t, err)

	assert.Equal(t, "monaco", uc.search.Query)
	assert.Equal(t, marketplace.ListingEvents, uc.search.Scope.Kind)
	require.Len(t, uc.gotos, 1)
	assert.Equal(t, "sess", uc.gotos[0].Scope.SessionID)
	assert.Contains(t, out, "Monaco GP")
	assert.Contains(t, out, "Page 2 of 3")
	assert.True(t, uc.closed)
}

func TestTicketsFirstPageSkipsGoto(t *testing.T) {
	uc := &fakeUseCase{}
	_, err := run(t, uc, "tickets")
	require.NoError(t, err)
	assert.Empty(t, uc.gotos)
}

func TestMineRequiresWallet(t *testing.T) {
	_, err := run(t, &fakeUseCase{}, "mine")
	assert.Error(t, err)

	uc := &fakeUseCase{}
	_, err = run(t, uc, "mine", "--wallet", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	require.NoError(t, err)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", uc.search.Scope.Wallet)
}

func TestHistoryCommand(t *testing.T) {
	out, err := run(t, &fakeUseCase{}, "history", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "No ownership history for ticket 4")

	_, err = run(t, &fakeUseCase{}, "history", "abc")
	assert.Error(t, err)
}

func TestOpenFailure(t *testing.T) {
	cmd := newRootCmd(func(context.Context) (marketplace.UseCase, func(), error) {
		return nil, nil, errors.New("no config")
	})
	cmd.SetArgs([]string{"events"})
	cmd.SetOut(&bytes.Buffer{})
	assert.EqualError(t, cmd.ExecuteContext(context.Background()), "no config")
}
