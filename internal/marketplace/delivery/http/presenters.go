package http

import (
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"ticket-marketplace/internal/listing"
	"ticket-marketplace/internal/marketplace"
)

// --- Request DTOs ---

// Form values stay strings; the use case checks them against the
// validation table and reports per-field messages.

type searchReq struct {
	Query string `json:"query"`
}

type gotoReq struct {
	Page int `json:"page" binding:"required"`
}

type eventTicketsReq struct {
	Query string `form:"q"`
	Page  int    `form:"page"`
}

type eventReq struct {
	EventID string `json:"eventId"`
}

type ticketReq struct {
	TicketID string `json:"ticketId"`
}

type resellReq struct {
	TicketID string `json:"ticketId"`
	PriceEth string `json:"priceEth"`
}

type eventFormReq struct {
	EventName        string `json:"eventName"`
	EventDate        string `json:"eventDate"`
	EventLocation    string `json:"eventLocation"`
	PriceEth         string `json:"priceEth"`
	AvailableTickets string `json:"availableTickets"`
}

func (r eventFormReq) toInput(wallet string) marketplace.EventFormInput {
	return marketplace.EventFormInput{
		Wallet:           wallet,
		EventName:        r.EventName,
		EventDate:        r.EventDate,
		EventLocation:    r.EventLocation,
		PriceEth:         r.PriceEth,
		AvailableTickets: r.AvailableTickets,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID        uint64 `json:"id"`
	Kind      string `json:"kind"`
	EventID   uint64 `json:"event_id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Owner     string `json:"owner,omitempty"`
	PriceWei  string `json:"price_wei"`
	PriceEth  string `json:"price_eth"`
	Available uint64 `json:"available,omitempty"`
	Status    string `json:"status"`
}

func newItemResp(it listing.Item) itemResp {
	resp := itemResp{
		ID:        it.ID,
		Kind:      string(it.Kind),
		EventID:   it.EventID,
		Name:      it.Name,
		Date:      it.Date,
		Location:  it.Location,
		PriceWei:  "0",
		PriceEth:  it.PriceEther(),
		Available: it.Available,
		Status:    string(it.Status()),
	}
	if it.Price != nil {
		resp.PriceWei = it.Price.String()
	}
	if it.Kind == listing.KindTicket {
		resp.Owner = it.OwnerLabel()
	}
	return resp
}

type pageResp struct {
	Items      []itemResp `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	TotalItems int        `json:"total_items"`
	PageSize   int        `json:"page_size"`
	Query      string     `json:"query"`
	State      string     `json:"state"`
	Failed     bool       `json:"failed"`
	Error      string     `json:"error,omitempty"`
	HasPrev    bool       `json:"has_prev"`
	HasNext    bool       `json:"has_next"`
	LoadedAt   string     `json:"loaded_at,omitempty"`
}

func newPageResp(p listing.Page) pageResp {
	items := make([]itemResp, len(p.Items))
	for i, it := range p.Items {
		items[i] = newItemResp(it)
	}
	resp := pageResp{
		Items:      items,
		Page:       p.PageIndex,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
		PageSize:   p.PageSize,
		Query:      p.Query,
		State:      string(p.State),
		Failed:     p.Failed,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
	}
	if p.Failed {
		resp.Error = "failed to load listing"
	}
	if !p.LoadedAt.IsZero() {
		resp.LoadedAt = p.LoadedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

type listingResp struct {
	SessionID string   `json:"session_id"`
	Listing   string   `json:"listing"`
	Page      pageResp `json:"page"`
}

func (h *handler) newListingResp(out marketplace.ListingOutput) listingResp {
	return listingResp{
		SessionID: out.SessionID,
		Listing:   string(out.Kind),
		Page:      newPageResp(out.Page),
	}
}

type eventTicketsResp struct {
	Event itemResp `json:"event"`
	Page  pageResp `json:"page"`
}

func (h *handler) newEventTicketsResp(out marketplace.EventTicketsOutput) eventTicketsResp {
	return eventTicketsResp{
		Event: newItemResp(out.Event),
		Page:  newPageResp(out.Page),
	}
}

type eventDetailResp struct {
	Event       itemResp `json:"event"`
	Purchasable bool     `json:"purchasable"`
	Reason      string   `json:"reason,omitempty"`
}

func (h *handler) newEventDetailResp(out marketplace.EventDetailOutput) eventDetailResp {
	return eventDetailResp{
		Event:       newItemResp(out.Event),
		Purchasable: out.Purchasable,
		Reason:      out.Reason,
	}
}

type recordResp struct {
	TicketID      uint64 `json:"ticket_id"`
	EventName     string `json:"event_name"`
	EventDate     string `json:"event_date"`
	EventLocation string `json:"event_location"`
	PreviousOwner string `json:"previous_owner"`
	NewOwner      string `json:"new_owner"`
}

type historyResp struct {
	Ticket  itemResp     `json:"ticket"`
	Records []recordResp `json:"records"`
}

func (h *handler) newHistoryResp(out marketplace.OwnershipHistoryOutput) historyResp {
	records := make([]recordResp, len(out.Records))
	for i, r := range out.Records {
		records[i] = recordResp{
			TicketID:      r.TicketID,
			EventName:     r.EventName,
			EventDate:     r.EventDate,
			EventLocation: r.EventLocation,
			PreviousOwner: r.PreviousOwner,
			NewOwner:      r.NewOwner,
		}
	}
	return historyResp{
		Ticket:  newItemResp(out.Ticket),
		Records: records,
	}
}

type rolesResp struct {
	Wallet    string `json:"wallet"`
	Admin     bool   `json:"admin"`
	Organizer bool   `json:"organizer"`
	Staff     bool   `json:"staff"`
}

func (h *handler) newRolesResp(wallet string, r marketplace.Roles) rolesResp {
	return rolesResp{
		Wallet:    wallet,
		Admin:     r.Admin,
		Organizer: r.Organizer,
		Staff:     r.Staff(),
	}
}

// txResp uses the hex encodings wallets expect for eth_sendTransaction.
type txResp struct {
	Method string `json:"method"`
	From   string `json:"from"`
	To     string `json:"to"`
	Data   string `json:"data"`
	Value  string `json:"value"`
}

func (h *handler) newTxResp(tx marketplace.PreparedTx) txResp {
	resp := txResp{
		Method: tx.Method,
		From:   tx.From,
		To:     tx.To,
		Data:   hexutil.Encode(tx.Data),
		Value:  "0x0",
	}
	if tx.Value != nil {
		resp.Value = hexutil.EncodeBig(tx.Value)
	}
	return resp
}

type calendarResp struct {
	EventID         uint64 `json:"event_id"`
	CalendarEventID string `json:"calendar_event_id"`
	HTMLLink        string `json:"html_link"`
	Date            string `json:"date"`
}

func (h *handler) newCalendarResp(out marketplace.CalendarExportOutput) calendarResp {
	return calendarResp{
		EventID:         out.EventID,
		CalendarEventID: out.CalendarEventID,
		HTMLLink:        out.HTMLLink,
		Date:            out.Start.Format("2006-01-02"),
	}
}

