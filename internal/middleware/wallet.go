package middleware

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticket-marketplace/internal/validation"
	pkgErrors "ticket-marketplace/pkg/errors"
	"ticket-marketplace/pkg/log"
	"ticket-marketplace/pkg/response"
)

const (
	HeaderWallet    = "X-Wallet-Address"
	HeaderSessionID = "X-Session-ID"
	HeaderRequestID = "X-Request-ID"

	walletKey = "wallet"
)

// Trace tags the request context with a trace id for log correlation.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}

// Wallet reads the caller's wallet address from HeaderWallet. A malformed
// address is rejected; a missing one is allowed through.
func (m Middleware) Wallet() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderWallet))
		if raw == "" {
			c.Next()
			return
		}
		if err := m.validator.Field(validation.FieldWallet, raw); err != nil {
			response.ValidationError(c, "invalid wallet header", validation.Messages(err))
			c.Abort()
			return
		}
		c.Set(walletKey, common.HexToAddress(raw).Hex())
		c.Next()
	}
}

// RequireWallet rejects requests without a connected wallet.
func (m Middleware) RequireWallet() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetWallet(c) == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffOnly lets through admins and organizers.
func (m Middleware) StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		wallet := GetWallet(c)
		if wallet == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ok, err := m.staff.IsStaff(ctx, wallet)
		if err != nil {
			m.l.Errorf(ctx, "middleware.StaffOnly IsStaff: %v", err)
			response.Error(c, pkgErrors.ErrBadGateway)
			c.Abort()
			return
		}
		if !ok {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetWallet returns the checksummed wallet set by Wallet, or "".
func GetWallet(c *gin.Context) string {
	return c.GetString(walletKey)
}

// GetSessionID returns the raw session header.
func GetSessionID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderSessionID))
}
