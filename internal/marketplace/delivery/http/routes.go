package http

import (
	"github.com/gin-gonic/gin"

	"ticket-marketplace/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Listings and read pages are public; transaction preparation needs a wallet
// and is rate limited; event management is staff only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Wallet())

	listings := rg.Group("/listings/:kind")
	{
		listings.GET("", h.Listing)
		listings.POST("/reload", h.Reload)
		listings.POST("/search", h.Search)
		listings.POST("/next", h.Next)
		listings.POST("/prev", h.Prev)
		listings.POST("/goto", h.Goto)
	}

	events := rg.Group("/events")
	{
		events.GET("/:id", h.EventDetail)
		events.GET("/:id/tickets", h.EventTickets)
		events.POST("/:id/calendar", mw.StaffOnly(), h.ExportEventToCalendar)
	}

	rg.GET("/tickets/:id/history", h.OwnershipHistory)
	rg.GET("/roles", mw.RequireWallet(), h.Roles)

	tx := rg.Group("/tx", mw.RequireWallet(), mw.RateLimit())
	{
		tx.POST("/purchase", h.PreparePurchase)
		tx.POST("/resale-buy", h.PrepareResaleBuy)
		tx.POST("/resell", h.PrepareResell)
		tx.POST("/cancel-resale", h.PrepareCancelResale)
		tx.POST("/events", mw.StaffOnly(), h.PrepareCreateEvent)
		tx.PUT("/events/:id", mw.StaffOnly(), h.PrepareUpdateEvent)
		tx.POST("/tickets", mw.StaffOnly(), h.PrepareCreateTicket)
	}
}
