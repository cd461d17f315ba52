package listing_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace/internal/listing"
	"ticket-marketplace/internal/model"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func sampleTickets() []listing.Item {
	return listing.TicketItems([]model.Ticket{
		{TicketID: 1, EventID: 1, EventName: "Monaco Grand Prix", EventDate: "2025-05-25", EventLocation: "Monte Carlo",
			CurrentOwner: model.ZeroAddress, Price: ether(2), IsForSale: true},
		{TicketID: 2, EventID: 2, EventName: "British Grand Prix", EventDate: "2025-07-06", EventLocation: "Silverstone",
			CurrentOwner: "0xAbC0000000000000000000000000000000000001", Price: ether(3), IsForResale: true},
		{TicketID: 3, EventID: 3, EventName: "Italian Grand Prix", EventDate: "2024-09-01", EventLocation: "Monza",
			CurrentOwner: "0x00000000000000000000000000000000000000bb", Price: big.NewInt(1500000000000000000), IsExpired: true},
	})
}

func TestFilter(t *testing.T) {
	items := sampleTickets()

	tests := []struct {
		name  string
		query string
		want  []uint64
	}{
		{"empty query keeps everything in order", "", []uint64{1, 2, 3}},
		{"blank query", "   ", []uint64{1, 2, 3}},
		{"name case-insensitive", "monaco", []uint64{1}},
		{"location", "SILVER", []uint64{2}},
		{"date", "2024-09", []uint64{3}},
		{"owner address", "abc000", []uint64{2}},
		{"ether price", "1.5", []uint64{3}},
		{"status for sale", "for sale", []uint64{1}},
		{"status resale", "resale", []uint64{2}},
		{"status expired", "expired", []uint64{3}},
		{"id", "3", []uint64{2, 3}}, // "3" is also ticket 2's price
		{"shared substring", "grand prix", []uint64{1, 2, 3}},
		{"no match", "spa", []uint64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(listing.Filter(items, tt.query)))
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	items := sampleTickets()
	for _, q := range []string{"", "grand", "monza", "0x", "zzz"} {
		once := listing.Filter(items, q)
		assert.Equal(t, once, listing.Filter(once, q), "query %q", q)
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	items := sampleTickets()
	out := listing.Filter(items, "")
	out[0].Name = "changed"
	out[0].Price.SetInt64(999)
	assert.Equal(t, "Monaco Grand Prix", items[0].Name)
	assert.Equal(t, ether(2), items[0].Price)
}

func TestSnapshotPricesAreCopies(t *testing.T) {
	v, _ := listing.NewView(10)
	_, err := v.Reload(context.Background(), fetchOf(sampleTickets(), nil))
	require.NoError(t, err)

	p := v.Snapshot()
	p.Items[0].Price.SetInt64(999)
	assert.Equal(t, ether(2), v.Snapshot().Items[0].Price)

	p = v.Search("monaco")
	p.Items[0].Price.SetInt64(999)
	assert.Equal(t, ether(2), v.Search("monaco").Items[0].Price)
	assert.Equal(t, ether(2), v.Search("").Items[0].Price)
}

func TestStoreAccessorsCopyPrices(t *testing.T) {
	var s listing.Store
	s.Load(context.Background(), fetchOf(sampleTickets(), nil))

	s.Canonical()[0].Price.SetInt64(999)
	s.Filtered()[0].Price.SetInt64(999)
	s.Search("")[0].Price.SetInt64(999)
	s.Filter("")[0].Price.SetInt64(999)

	assert.Equal(t, ether(2), s.Canonical()[0].Price)
	assert.Equal(t, ether(2), s.Filtered()[0].Price)
}

func TestStatus(t *testing.T) {
	items := sampleTickets()
	assert.Equal(t, listing.StatusForSale, items[0].Status())
	assert.Equal(t, listing.StatusResale, items[1].Status())
	assert.Equal(t, listing.StatusExpired, items[2].Status())
	assert.Equal(t, listing.StatusOwned, listing.TicketItem(model.Ticket{TicketID: 4, CurrentOwner: "0x1"}).Status())

	assert.Equal(t, "Available", items[0].OwnerLabel())
	assert.Equal(t, items[1].Owner, items[1].OwnerLabel())
	assert.Equal(t, "2", items[0].PriceEther())

	ev := model.Event{EventID: 7, EventName: "Spa", AvailableTickets: 3, Price: ether(1)}
	assert.Equal(t, listing.StatusAvailable, listing.EventItem(ev, false).Status())
	assert.Equal(t, listing.StatusExpired, listing.EventItem(ev, true).Status())
	ev.AvailableTickets = 0
	assert.Equal(t, listing.StatusSoldOut, listing.EventItem(ev, false).Status())
	assert.Equal(t, listing.StatusExpired, listing.EventItem(ev, true).Status())
}
