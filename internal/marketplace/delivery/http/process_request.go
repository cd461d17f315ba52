package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticket-marketplace/internal/marketplace"
	"ticket-marketplace/internal/middleware"
	"ticket-marketplace/internal/validation"
)

// processScope reads the listing scope from the path and headers.
func (h *handler) processScope(c *gin.Context) marketplace.ListingScope {
	return marketplace.ListingScope{
		SessionID: middleware.GetSessionID(c),
		Kind:      marketplace.ListingKind(c.Param("kind")),
		Wallet:    middleware.GetWallet(c),
	}
}

// processPathID parses the :id path parameter as the given field.
func (h *handler) processPathID(c *gin.Context, field string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, invalidField(field)
	}
	return id, nil
}

// processJSON binds a request body; malformed JSON becomes invalid input.
func processJSON[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %w", marketplace.ErrInvalidInput, err)
	}
	return req, nil
}

func (h *handler) processEventTicketsReq(c *gin.Context) (marketplace.EventTicketsInput, error) {
	id, err := h.processPathID(c, validation.FieldEventID)
	if err != nil {
		return marketplace.EventTicketsInput{}, err
	}

	var req eventTicketsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return marketplace.EventTicketsInput{}, fmt.Errorf("%w: %w", marketplace.ErrInvalidInput, err)
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	return marketplace.EventTicketsInput{EventID: id, Query: req.Query, Page: req.Page}, nil
}

func invalidField(field string) error {
	return fmt.Errorf("%w: %w", marketplace.ErrInvalidInput, &validation.FieldError{
		Field:   field,
		Message: validation.Rules[field].Message,
	})
}

// setSession echoes the session id so clients can keep their view.
func setSession(c *gin.Context, out marketplace.ListingOutput) {
	c.Header(middleware.HeaderSessionID, out.SessionID)
}
