package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	marketplaceHTTP "ticket-marketplace/internal/marketplace/delivery/http"
	"ticket-marketplace/internal/middleware"
)

// setupMarketplaceDomain registers the listing, event, ticket and
// transaction routes. The use case is built in main because its ledger
// source depends on configuration.
func (srv HTTPServer) setupMarketplaceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := marketplaceHTTP.New(srv.l, srv.marketplaceUC)
	marketplaceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Marketplace domain registered")
	return nil
}
