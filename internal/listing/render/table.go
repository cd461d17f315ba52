package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"ticket-marketplace/internal/listing"
)

// Table renders listing pages as a terminal table.
type Table struct {
	w    io.Writer
	kind listing.Kind
}

// NewTable creates a table sink for ticket or event listings.
func NewTable(w io.Writer, kind listing.Kind) *Table {
	return &Table{w: w, kind: kind}
}

var _ Sink = (*Table)(nil)

func (t *Table) Render(page listing.Page) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(t.w)
	style := table.StyleLight
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)

	header := t.header()
	tw.AppendHeader(header)

	if msg := Placeholder(page, t.noun()); msg != "" {
		row := make(table.Row, len(header))
		for i := range row {
			row[i] = msg
		}
		tw.AppendRow(row, table.RowConfig{AutoMerge: true})
	} else {
		for _, it := range page.Items {
			tw.AppendRow(t.row(it))
		}
	}

	footer := fmt.Sprintf("Page %d of %d", page.PageIndex, page.TotalPages)
	if page.Query != "" {
		footer += fmt.Sprintf(" (%d of %d match %q)", page.TotalItems, page.AllItems, page.Query)
	}
	tw.AppendFooter(table.Row{footer})

	tw.Render()
	return nil
}

func (t *Table) noun() string {
	if t.kind == listing.KindEvent {
		return "events"
	}
	return "tickets"
}

func (t *Table) header() table.Row {
	if t.kind == listing.KindEvent {
		return table.Row{"ID", "Event", "Date", "Location", "Price", "Availability", "Tickets Left"}
	}
	return table.Row{"Ticket ID", "Event", "Date", "Location", "Owner", "Price", "Status"}
}

func (t *Table) row(it listing.Item) table.Row {
	price := it.PriceEther() + " ETH"
	if t.kind == listing.KindEvent {
		return table.Row{it.ID, it.Name, it.Date, it.Location, price, string(it.Status()), strconv.FormatUint(it.Available, 10)}
	}
	return table.Row{it.ID, it.Name, it.Date, it.Location, it.OwnerLabel(), price, string(it.Status())}
}
