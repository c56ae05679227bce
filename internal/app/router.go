package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendio/vendio/internal/catalog/products"
	"github.com/vendio/vendio/internal/sales/clients"
	"github.com/vendio/vendio/internal/sales/orders"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	ProductsHandler *products.Handler
	ClientsHandler  *clients.Handler
	OrdersHandler   *orders.Handler
}

// NewRouter constructs the chi.Router with Vendio defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.ProductsHandler.MountRoutes(r)
	params.ClientsHandler.MountRoutes(r)
	params.OrdersHandler.MountRoutes(r)

	return r
}
