package http

import (
	"github.com/gin-gonic/gin"

	"ticket-marketplace/internal/marketplace"
	"ticket-marketplace/internal/middleware"
	"ticket-marketplace/internal/validation"
	"ticket-marketplace/pkg/response"
)

// Listing godoc
// @Summary     Get a listing page
// @Description Returns the current page of a listing for the session. The first request of a session loads the listing.
// @Tags        Listings
// @Produce     json
// @Param       kind             path   string true  "Listing (tickets, marketplace, mine, events)"
// @Param       X-Session-ID     header string false "Session id returned by a previous call"
// @Param       X-Wallet-Address header string false "Connected wallet, required for mine"
// @Success     200 {object} listingResp
// @Failure     401 {object} response.Resp "Wallet required"
// @Failure     404 {object} response.Resp "Unknown listing"
// @Router      /api/v1/listings/{kind} [GET]
func (h *handler) Listing(c *gin.Context) {
	out, err := h.uc.Listing(c.Request.Context(), h.processScope(c))
	h.respondListing(c, "uc.Listing", out, err)
}

// Reload godoc
// @Summary     Reload a listing
// @Description Fetches the listing again, clears the search and goes back to page 1.
// @Tags        Listings
// @Produce     json
// @Param       kind             path   string true  "Listing (tickets, marketplace, mine, events)"
// @Param       X-Session-ID     header string false "Session id"
// @Param       X-Wallet-Address header string false "Connected wallet"
// @Success     200 {object} listingResp
// @Failure     404 {object} response.Resp "Unknown listing"
// @Router      /api/v1/listings/{kind}/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	out, err := h.uc.Reload(c.Request.Context(), h.processScope(c))
	h.respondListing(c, "uc.Reload", out, err)
}

// Search godoc
// @Summary     Search a listing
// @Description Filters the loaded listing without fetching. An empty query restores the full listing.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       kind         path   string    true  "Listing"
// @Param       X-Session-ID header string    false "Session id"
// @Param       body         body   searchReq true  "Search query"
// @Success     200 {object} listingResp
// @Failure     422 {object} response.Resp "Invalid body"
// @Router      /api/v1/listings/{kind}/search [POST]
func (h *handler) Search(c *gin.Context) {
	req, err := processJSON[searchReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	out, err := h.uc.Search(c.Request.Context(), marketplace.SearchInput{
		Scope: h.processScope(c),
		Query: req.Query,
	})
	h.respondListing(c, "uc.Search", out, err)
}

// Next godoc
// @Summary     Next page
// @Tags        Listings
// @Produce     json
// @Param       kind         path   string true  "Listing"
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} listingResp
// @Router      /api/v1/listings/{kind}/next [POST]
func (h *handler) Next(c *gin.Context) {
	h.paginate(c, 1)
}

// Prev godoc
// @Summary     Previous page
// @Tags        Listings
// @Produce     json
// @Param       kind         path   string true  "Listing"
// @Param       X-Session-ID header string false "Session id"
// @Success     200 {object} listingResp
// @Router      /api/v1/listings/{kind}/prev [POST]
func (h *handler) Prev(c *gin.Context) {
	h.paginate(c, -1)
}

func (h *handler) paginate(c *gin.Context, direction int) {
	out, err := h.uc.Paginate(c.Request.Context(), marketplace.PaginateInput{
		Scope:     h.processScope(c),
		Direction: direction,
	})
	h.respondListing(c, "uc.Paginate", out, err)
}

// Goto godoc
// @Summary     Jump to a page
// @Description Out-of-range pages are clamped.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       kind         path   string  true  "Listing"
// @Param       X-Session-ID header string  false "Session id"
// @Param       body         body   gotoReq true  "Page"
// @Success     200 {object} listingResp
// @Failure     422 {object} response.Resp "Invalid body"
// @Router      /api/v1/listings/{kind}/goto [POST]
func (h *handler) Goto(c *gin.Context) {
	req, err := processJSON[gotoReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	out, err := h.uc.Goto(c.Request.Context(), marketplace.GotoInput{
		Scope: h.processScope(c),
		Page:  req.Page,
	})
	h.respondListing(c, "uc.Goto", out, err)
}

func (h *handler) respondListing(c *gin.Context, scope string, out marketplace.ListingOutput, err error) {
	if err != nil {
		h.respondError(c, scope, err)
		return
	}
	setSession(c, out)
	response.OK(c, h.newListingResp(out))
}

// EventTickets godoc
// @Summary     Tickets of an event
// @Description Loads, sorts and pages the tickets of one event.
// @Tags        Events
// @Produce     json
// @Param       id   path  int    true  "Event ID"
// @Param       q    query string false "Search query"
// @Param       page query int    false "Page (default 1)"
// @Success     200 {object} eventTicketsResp
// @Failure     404 {object} response.Resp "Event not found"
// @Failure     422 {object} response.Resp "Invalid event id"
// @Router      /api/v1/events/{id}/tickets [GET]
func (h *handler) EventTickets(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processEventTicketsReq(c)
	if err != nil {
		h.respondError(c, "processEventTicketsReq", err)
		return
	}

	out, err := h.uc.EventTickets(ctx, input)
	if err != nil {
		h.respondError(c, "uc.EventTickets", err)
		return
	}

	response.OK(c, h.newEventTicketsResp(out))
}

// EventDetail godoc
// @Summary     Event detail
// @Description Returns an event and whether its tickets can still be bought.
// @Tags        Events
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} eventDetailResp
// @Failure     404 {object} response.Resp "Event not found"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) EventDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processPathID(c, validation.FieldEventID)
	if err != nil {
		h.respondError(c, "processPathID", err)
		return
	}

	out, err := h.uc.EventDetail(ctx, id)
	if err != nil {
		h.respondError(c, "uc.EventDetail", err)
		return
	}

	response.OK(c, h.newEventDetailResp(out))
}

// OwnershipHistory godoc
// @Summary     Ticket ownership history
// @Description Lists every transfer of a ticket as previous and new owner pairs.
// @Tags        Tickets
// @Produce     json
// @Param       id path int true "Ticket ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Ticket not found"
// @Router      /api/v1/tickets/{id}/history [GET]
func (h *handler) OwnershipHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processPathID(c, validation.FieldTicketID)
	if err != nil {
		h.respondError(c, "processPathID", err)
		return
	}

	out, err := h.uc.OwnershipHistory(ctx, id)
	if err != nil {
		h.respondError(c, "uc.OwnershipHistory", err)
		return
	}

	response.OK(c, h.newHistoryResp(out))
}

// Roles godoc
// @Summary     Wallet roles
// @Tags        Roles
// @Produce     json
// @Param       X-Wallet-Address header string true "Connected wallet"
// @Success     200 {object} rolesResp
// @Failure     401 {object} response.Resp "Wallet required"
// @Router      /api/v1/roles [GET]
func (h *handler) Roles(c *gin.Context) {
	ctx := c.Request.Context()
	wallet := middleware.GetWallet(c)

	roles, err := h.uc.Roles(ctx, wallet)
	if err != nil {
		h.respondError(c, "uc.Roles", err)
		return
	}

	response.OK(c, h.newRolesResp(wallet, roles))
}

// PreparePurchase godoc
// @Summary     Prepare a ticket purchase
// @Description Returns the unsigned purchaseTicket call with the event price as value.
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       X-Wallet-Address header string   true "Connected wallet"
// @Param       body             body   eventReq true "Event"
// @Success     200 {object} txResp
// @Failure     409 {object} response.Resp "Event ended or fully bought"
// @Failure     422 {object} response.Resp "Invalid input"
// @Router      /api/v1/tx/purchase [POST]
func (h *handler) PreparePurchase(c *gin.Context) {
	req, err := processJSON[eventReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	tx, err := h.uc.PreparePurchase(c.Request.Context(), marketplace.PurchaseInput{
		Wallet:  middleware.GetWallet(c),
		EventID: req.EventID,
	})
	h.respondTx(c, "uc.PreparePurchase", tx, err)
}

// PrepareResaleBuy godoc
// @Summary     Prepare a resale purchase
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       X-Wallet-Address header string    true "Connected wallet"
// @Param       body             body   ticketReq true "Ticket"
// @Success     200 {object} txResp
// @Failure     409 {object} response.Resp "Ticket not listed for resale"
// @Failure     422 {object} response.Resp "Invalid input"
// @Router      /api/v1/tx/resale-buy [POST]
func (h *handler) PrepareResaleBuy(c *gin.Context) {
	req, err := processJSON[ticketReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	tx, err := h.uc.PrepareResaleBuy(c.Request.Context(), marketplace.ResaleBuyInput{
		Wallet:   middleware.GetWallet(c),
		TicketID: req.TicketID,
	})
	h.respondTx(c, "uc.PrepareResaleBuy", tx, err)
}

// PrepareResell godoc
// @Summary     Prepare listing a ticket for resale
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       X-Wallet-Address header string    true "Connected wallet"
// @Param       body             body   resellReq true "Ticket and price in ETH"
// @Success     200 {object} txResp
// @Failure     403 {object} response.Resp "Not the owner"
// @Failure     422 {object} response.Resp "Invalid input"
// @Router      /api/v1/tx/resell [POST]
func (h *handler) PrepareResell(c *gin.Context) {
	req, err := processJSON[resellReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	tx, err := h.uc.PrepareResell(c.Request.Context(), marketplace.ResellInput{
		Wallet:   middleware.GetWallet(c),
		TicketID: req.TicketID,
		PriceEth: req.PriceEth,
	})
	h.respondTx(c, "uc.PrepareResell", tx, err)
}

// PrepareCancelResale godoc
// @Summary     Prepare withdrawing a ticket from resale
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       X-Wallet-Address header string    true "Connected wallet"
// @Param       body             body   ticketReq true "Ticket"
// @Success     200 {object} txResp
// @Failure     403 {object} response.Resp "Not the owner"
// @Failure     409 {object} response.Resp "Ticket not listed for resale"
// @Router      /api/v1/tx/cancel-resale [POST]
func (h *handler) PrepareCancelResale(c *gin.Context) {
	req, err := processJSON[ticketReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	tx, err := h.uc.PrepareCancelResale(c.Request.Context(), marketplace.CancelResaleInput{
		Wallet:   middleware.GetWallet(c),
		TicketID: req.TicketID,
	})
	h.respondTx(c, "uc.PrepareCancelResale", tx, err)
}

// PrepareCreateEvent godoc
// @Summary     Prepare creating an event
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       X-Wallet-Address header string       true "Admin or organizer wallet"
// @Param       body             body   eventFormReq true "Event"
// @Success     200 {object} txResp
// @Failure     403 {object} response.Resp "Not staff"
// @Failure     422 {object} response.Resp "Invalid input"
// @Router      /api/v1/tx/events [POST]
func (h *handler) PrepareCreateEvent(c *gin.Context) {
	req, err := processJSON[eventFormReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	tx, err := h.uc.PrepareCreateEvent(c.Request.Context(), req.toInput(middleware.GetWallet(c)))
	h.respondTx(c, "uc.PrepareCreateEvent", tx, err)
}

// PrepareUpdateEvent godoc
// @Summary     Prepare updating an event
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       id               path   int          true "Event ID"
// @Param       X-Wallet-Address header string       true "Admin or organizer wallet"
// @Param       body             body   eventFormReq true "Event"
// @Success     200 {object} txResp
// @Failure     403 {object} response.Resp "Not staff"
// @Failure     404 {object} response.Resp "Event not found"
// @Failure     422 {object} response.Resp "Invalid input"
// @Router      /api/v1/tx/events/{id} [PUT]
func (h *handler) PrepareUpdateEvent(c *gin.Context) {
	req, err := processJSON[eventFormReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	tx, err := h.uc.PrepareUpdateEvent(c.Request.Context(), marketplace.UpdateEventInput{
		EventID:        c.Param("id"),
		EventFormInput: req.toInput(middleware.GetWallet(c)),
	})
	h.respondTx(c, "uc.PrepareUpdateEvent", tx, err)
}

// PrepareCreateTicket godoc
// @Summary     Prepare creating a ticket for an event
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       X-Wallet-Address header string   true "Admin or organizer wallet"
// @Param       body             body   eventReq true "Event"
// @Success     200 {object} txResp
// @Failure     403 {object} response.Resp "Not staff"
// @Failure     404 {object} response.Resp "Event not found"
// @Router      /api/v1/tx/tickets [POST]
func (h *handler) PrepareCreateTicket(c *gin.Context) {
	req, err := processJSON[eventReq](c)
	if err != nil {
		h.respondError(c, "processJSON", err)
		return
	}

	tx, err := h.uc.PrepareCreateTicket(c.Request.Context(), marketplace.CreateTicketInput{
		Wallet:  middleware.GetWallet(c),
		EventID: req.EventID,
	})
	h.respondTx(c, "uc.PrepareCreateTicket", tx, err)
}

func (h *handler) respondTx(c *gin.Context, scope string, tx marketplace.PreparedTx, err error) {
	if err != nil {
		h.respondError(c, scope, err)
		return
	}
	response.OK(c, h.newTxResp(tx))
}

// ExportEventToCalendar godoc
// @Summary     Add an event to the shared calendar
// @Description Creates an all-day calendar entry once per event; later calls return the existing entry.
// @Tags        Events
// @Produce     json
// @Param       id               path   int    true "Event ID"
// @Param       X-Wallet-Address header string true "Admin or organizer wallet"
// @Success     200 {object} calendarResp
// @Failure     404 {object} response.Resp "Event not found"
// @Failure     501 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/events/{id}/calendar [POST]
func (h *handler) ExportEventToCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processPathID(c, validation.FieldEventID)
	if err != nil {
		h.respondError(c, "processPathID", err)
		return
	}

	out, err := h.uc.ExportEventToCalendar(ctx, id)
	if err != nil {
		h.respondError(c, "uc.ExportEventToCalendar", err)
		return
	}

	response.OK(c, h.newCalendarResp(out))
}
