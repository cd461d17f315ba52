package http

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ticket-marketplace/internal/listing"
	"ticket-marketplace/internal/marketplace"
	"ticket-marketplace/internal/middleware"
	"ticket-marketplace/internal/validation"
	"ticket-marketplace/pkg/log"
	"ticket-marketplace/pkg/response"
)

const (
	staffWallet = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	userWallet  = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

// mockUseCase records the last inputs and returns canned results.
type mockUseCase struct {
	marketplace.UseCase

	scope    marketplace.ListingScope
	search   marketplace.SearchInput
	paginate marketplace.PaginateInput
	purchase marketplace.PurchaseInput
	update   marketplace.UpdateEventInput

	listingErr error
	txErr      error
	detailErr  error
}

func (m *mockUseCase) listingOut(scope marketplace.ListingScope) marketplace.ListingOutput {
	return marketplace.ListingOutput{
		SessionID: "11111111-1111-4111-8111-111111111111",
		Kind:      scope.Kind,
		Page: listing.Page{
			Items: []listing.Item{{
				ID: 1, Kind: listing.KindTicket, EventID: 1, Name: "Concert",
				Date: "2030-01-01", Location: "Hall", Price: big.NewInt(1e17),
				Flags: listing.FlagForSale | listing.FlagUnowned,
			}},
			PageIndex: 1, TotalPages: 1, TotalItems: 1, PageSize: 10,
			State:    listing.StateReady,
			LoadedAt: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func (m *mockUseCase) Listing(ctx context.Context, scope marketplace.ListingScope) (marketplace.ListingOutput, error) {
	m.scope = scope
	if m.listingErr != nil {
		return marketplace.ListingOutput{}, m.listingErr
	}
	return m.listingOut(scope), nil
}

func (m *mockUseCase) Search(ctx context.Context, input marketplace.SearchInput) (marketplace.ListingOutput, error) {
	m.search = input
	return m.listingOut(input.Scope), nil
}

func (m *mockUseCase) Paginate(ctx context.Context, input marketplace.PaginateInput) (marketplace.ListingOutput, error) {
	m.paginate = input
	return m.listingOut(input.Scope), nil
}

func (m *mockUseCase) EventDetail(ctx context.Context, eventID uint64) (marketplace.EventDetailOutput, error) {
	if m.detailErr != nil {
		return marketplace.EventDetailOutput{}, m.detailErr
	}
	return marketplace.EventDetailOutput{
		Event:  listing.Item{ID: eventID, Kind: listing.KindEvent, Name: "Gala", Flags: listing.FlagSoldOut},
		Reason: marketplace.ReasonFullyBought,
	}, nil
}

func (m *mockUseCase) OwnershipHistory(ctx context.Context, ticketID uint64) (marketplace.OwnershipHistoryOutput, error) {
	return marketplace.OwnershipHistoryOutput{
		Ticket:  listing.Item{ID: ticketID, Kind: listing.KindTicket},
		Records: []marketplace.OwnershipRecord{},
	}, nil
}

func (m *mockUseCase) IsStaff(ctx context.Context, wallet string) (bool, error) {
	return strings.EqualFold(wallet, staffWallet), nil
}

func (m *mockUseCase) Roles(ctx context.Context, wallet string) (marketplace.Roles, error) {
	return marketplace.Roles{Admin: strings.EqualFold(wallet, staffWallet)}, nil
}

func (m *mockUseCase) PreparePurchase(ctx context.Context, input marketplace.PurchaseInput) (marketplace.PreparedTx, error) {
	m.purchase = input
	if m.txErr != nil {
		return marketplace.PreparedTx{}, m.txErr
	}
	return marketplace.PreparedTx{
		Method: "purchaseTicket",
		From:   input.Wallet,
		To:     "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Data:   []byte{0xde, 0xad},
		Value:  big.NewInt(255),
	}, nil
}

func (m *mockUseCase) PrepareUpdateEvent(ctx context.Context, input marketplace.UpdateEventInput) (marketplace.PreparedTx, error) {
	m.update = input
	return marketplace.PreparedTx{Method: "updateEvent", From: input.Wallet}, nil
}

func newTestRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), uc, middleware.Config{RateLimitPerMin: 600})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func doReq(r *gin.Engine, method, path, wallet, body string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if wallet != "" {
		req.Header.Set(middleware.HeaderWallet, wallet)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestListing(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w, resp := doReq(r, http.MethodGet, "/api/v1/listings/mine", strings.ToLower(userWallet), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.scope.Kind != marketplace.ListingMine || uc.scope.Wallet != userWallet {
		t.Errorf("unexpected scope %+v", uc.scope)
	}
	if got := w.Header().Get(middleware.HeaderSessionID); got == "" {
		t.Error("expected session header to be set")
	}

	data := resp.Data.(map[string]interface{})
	page := data["page"].(map[string]interface{})
	items := page["items"].([]interface{})
	item := items[0].(map[string]interface{})
	if item["price_eth"] != "0.1" || item["status"] != "For Sale" || item["owner"] != "Available" {
		t.Errorf("unexpected item %v", item)
	}
	if page["loaded_at"] != "2030-01-02T03:04:05Z" {
		t.Errorf("unexpected loaded_at %v", page["loaded_at"])
	}
}

func TestPageRespLoadedAt(t *testing.T) {
	loaded := time.Date(2030, 1, 2, 4, 4, 5, 0, time.FixedZone("CET", 3600))
	if got := newPageResp(listing.Page{LoadedAt: loaded}).LoadedAt; got != "2030-01-02T03:04:05Z" {
		t.Errorf("expected UTC timestamp, got %q", got)
	}

	b, _ := json.Marshal(newPageResp(listing.Page{State: listing.StateLoading}))
	if strings.Contains(string(b), "loaded_at") {
		t.Errorf("expected loaded_at to be omitted before the first load: %s", b)
	}
}

func TestListingErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown listing", marketplace.ErrInvalidListing, http.StatusNotFound},
		{"wallet required", marketplace.ErrWalletRequired, http.StatusUnauthorized},
		{"bad session", marketplace.ErrInvalidSession, http.StatusBadRequest},
		{"ledger down", fmt.Errorf("%w: timeout", marketplace.ErrLedgerUnavailable), http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{listingErr: tt.err})
			if w, _ := doReq(r, http.MethodGet, "/api/v1/listings/tickets", "", ""); w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestSearchAndPaginate(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	if w, _ := doReq(r, http.MethodPost, "/api/v1/listings/events/search", "", `{"query":"expo"}`); w.Code != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", w.Code)
	}
	if uc.search.Query != "expo" || uc.search.Scope.Kind != marketplace.ListingEvents {
		t.Errorf("unexpected search input %+v", uc.search)
	}

	if w, _ := doReq(r, http.MethodPost, "/api/v1/listings/events/prev", "", ""); w.Code != http.StatusOK {
		t.Fatalf("prev: expected 200, got %d", w.Code)
	}
	if uc.paginate.Direction != -1 {
		t.Errorf("expected direction -1, got %d", uc.paginate.Direction)
	}

	if w, _ := doReq(r, http.MethodPost, "/api/v1/listings/events/search", "", `{`); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("malformed body: expected 422, got %d", w.Code)
	}
}

func TestEventDetail(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, resp := doReq(r, http.MethodGet, "/api/v1/events/3", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["purchasable"] != false || data["reason"] != "Fully Bought" {
		t.Errorf("unexpected detail %v", data)
	}

	w, resp = doReq(r, http.MethodGet, "/api/v1/events/abc", "", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	fields := resp.Errors.(map[string]interface{})
	if fields[validation.FieldEventID] != validation.Rules[validation.FieldEventID].Message {
		t.Errorf("unexpected field errors %v", fields)
	}

	r = newTestRouter(&mockUseCase{detailErr: marketplace.ErrEventNotFound})
	if w, _ := doReq(r, http.MethodGet, "/api/v1/events/9", "", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestOwnershipHistoryEmpty(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, resp := doReq(r, http.MethodGet, "/api/v1/tickets/4/history", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	records := resp.Data.(map[string]interface{})["records"].([]interface{})
	if len(records) != 0 {
		t.Errorf("expected empty records, got %v", records)
	}
}

func TestRoles(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	if w, _ := doReq(r, http.MethodGet, "/api/v1/roles", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without wallet, got %d", w.Code)
	}
	w, resp := doReq(r, http.MethodGet, "/api/v1/roles", staffWallet, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Data.(map[string]interface{})["staff"] != true {
		t.Errorf("expected staff, got %v", resp.Data)
	}
}

func TestPreparePurchase(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	if w, _ := doReq(r, http.MethodPost, "/api/v1/tx/purchase", "", `{"eventId":"1"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without wallet, got %d", w.Code)
	}

	w, resp := doReq(r, http.MethodPost, "/api/v1/tx/purchase", userWallet, `{"eventId":"1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.purchase.Wallet != userWallet || uc.purchase.EventID != "1" {
		t.Errorf("unexpected input %+v", uc.purchase)
	}
	data := resp.Data.(map[string]interface{})
	if data["data"] != "0xdead" || data["value"] != "0xff" {
		t.Errorf("unexpected tx %v", data)
	}
}

func TestPreparePurchaseErrors(t *testing.T) {
	invalid := fmt.Errorf("%w: %w", marketplace.ErrInvalidInput, &validation.FieldError{
		Field:   validation.FieldEventID,
		Message: "Please provide a valid event ID.",
	})
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", invalid, http.StatusUnprocessableEntity},
		{"sold out", marketplace.ErrSoldOut, http.StatusConflict},
		{"ended", marketplace.ErrEventEnded, http.StatusConflict},
		{"not found", marketplace.ErrEventNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{txErr: tt.err})
			if w, _ := doReq(r, http.MethodPost, "/api/v1/tx/purchase", userWallet, `{"eventId":"x"}`); w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestStaffRoutes(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)
	body := `{"eventName":"Expo","eventDate":"2031-05-01","eventLocation":"Hall","priceEth":"0.5","availableTickets":"10"}`

	if w, _ := doReq(r, http.MethodPut, "/api/v1/tx/events/2", userWallet, body); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-staff, got %d", w.Code)
	}

	w, _ := doReq(r, http.MethodPut, "/api/v1/tx/events/2", staffWallet, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.update.EventID != "2" || uc.update.EventName != "Expo" || uc.update.Wallet != staffWallet {
		t.Errorf("unexpected update input %+v", uc.update)
	}
}
