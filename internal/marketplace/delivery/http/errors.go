package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-marketplace/internal/marketplace"
	"ticket-marketplace/internal/validation"
	pkgErrors "ticket-marketplace/pkg/errors"
	"ticket-marketplace/pkg/response"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{marketplace.ErrInvalidListing, http.StatusNotFound},
	{marketplace.ErrEventNotFound, http.StatusNotFound},
	{marketplace.ErrTicketNotFound, http.StatusNotFound},
	{marketplace.ErrInvalidSession, http.StatusBadRequest},
	{marketplace.ErrWalletRequired, http.StatusUnauthorized},
	{marketplace.ErrNotStaff, http.StatusForbidden},
	{marketplace.ErrNotOwner, http.StatusForbidden},
	{marketplace.ErrEventEnded, http.StatusConflict},
	{marketplace.ErrSoldOut, http.StatusConflict},
	{marketplace.ErrNotForResale, http.StatusConflict},
	{marketplace.ErrAlreadyListed, http.StatusConflict},
	{marketplace.ErrAlreadyOwner, http.StatusConflict},
	{marketplace.ErrTicketExpired, http.StatusConflict},
	{marketplace.ErrCalendarDisabled, http.StatusNotImplemented},
	{marketplace.ErrCalendarFailed, http.StatusBadGateway},
	{marketplace.ErrLedgerUnavailable, http.StatusBadGateway},
}

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return pkgErrors.NewHTTPError(m.status, m.err.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}

// respondError renders err; invalid input gets per-field messages.
func (h *handler) respondError(c *gin.Context, scope string, err error) {
	if errors.Is(err, marketplace.ErrInvalidInput) {
		response.ValidationError(c, marketplace.ErrInvalidInput.Error(), validation.Messages(err))
		return
	}

	mapped := h.mapError(err)
	if pkgErrors.StatusCode(mapped) >= http.StatusInternalServerError {
		h.l.Errorf(c.Request.Context(), "%s: %v", scope, err)
	} else {
		h.l.Warnf(c.Request.Context(), "%s: %v", scope, err)
	}
	response.Error(c, mapped)
}
