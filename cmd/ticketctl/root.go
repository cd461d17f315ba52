package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"ticket-marketplace/internal/listing/render"
	"ticket-marketplace/internal/marketplace"
)

// opener creates the use case the commands run against.
type opener func(ctx context.Context) (marketplace.UseCase, func(), error)

type listingOptions struct {
	page   int
	query  string
	wallet string
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "ticketctl",
		Short:         "Browse the ticket marketplace from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListingCmd(open, marketplace.ListingTickets, "List every ticket of every event"),
		newListingCmd(open, marketplace.ListingMarketplace, "List tickets offered for resale"),
		newListingCmd(open, marketplace.ListingMine, "List tickets owned by a wallet"),
		newListingCmd(open, marketplace.ListingEvents, "List events and their availability"),
		newHistoryCmd(open),
	)
	return root
}

func newListingCmd(open opener, kind marketplace.ListingKind, short string) *cobra.Command {
	opts := listingOptions{}
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListing(cmd, open, kind, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "page to show, clamped into range")
	cmd.Flags().StringVar(&opts.query, "query", "", "case-insensitive search over every column")
	if kind == marketplace.ListingMine {
		cmd.Flags().StringVar(&opts.wallet, "wallet", "", "wallet address whose tickets to list")
		_ = cmd.MarkFlagRequired("wallet")
	}
	return cmd
}

func runListing(cmd *cobra.Command, open opener, kind marketplace.ListingKind, opts listingOptions) error {
	ctx := cmd.Context()
	uc, closeFn, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	scope := marketplace.ListingScope{Kind: kind, Wallet: opts.wallet}
	out, err := uc.Search(ctx, marketplace.SearchInput{Scope: scope, Query: opts.query})
	if err != nil {
		return err
	}
	if opts.page != out.Page.PageIndex {
		scope.SessionID = out.SessionID
		out, err = uc.Goto(ctx, marketplace.GotoInput{Scope: scope, Page: opts.page})
		if err != nil {
			return err
		}
	}

	if err := render.NewTable(cmd.OutOrStdout(), kind.ItemKind()).Render(out.Page); err != nil {
		return err
	}
	if out.Page.Failed {
		return errors.New("ledger unavailable")
	}
	return nil
}

func newHistoryCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "history <ticket-id>",
		Short: "Show the ownership records of a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid ticket id %q", args[0])
			}

			ctx := cmd.Context()
			uc, closeFn, err := open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			out, err := uc.OwnershipHistory(ctx, id)
			if err != nil {
				return err
			}
			renderHistory(cmd, out)
			return nil
		},
	}
}

func renderHistory(cmd *cobra.Command, out marketplace.OwnershipHistoryOutput) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Ticket ID", "Event", "Date", "Location", "Previous Owner", "New Owner"})

	if len(out.Records) == 0 {
		msg := fmt.Sprintf("No ownership history for ticket %d", out.Ticket.ID)
		tw.AppendRow(table.Row{msg, msg, msg, msg, msg, msg}, table.RowConfig{AutoMerge: true})
	}
	for _, r := range out.Records {
		tw.AppendRow(table.Row{r.TicketID, r.EventName, r.EventDate, r.EventLocation, r.PreviousOwner, r.NewOwner})
	}
	tw.Render()
}
