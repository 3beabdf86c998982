package handlers

import (
	"context"
	"net/http"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/metrics"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Catalog     *service.Catalog
	Orders      *service.Orders
	Auth        *service.Auth
	Sessions    *SessionManager
	Templates   *TemplateCache
	Health      Pinger
	AuthLimiter *RateLimiter // applied to login and registration submits
}

// NewRouter wires every endpoint. Guards run before any business logic.
func NewRouter(d Dependencies) http.Handler {
	authHandler := &AuthHandler{Auth: d.Auth, Sessions: d.Sessions, Templates: d.Templates}
	catalogHandler := &CatalogHandler{Catalog: d.Catalog, Sessions: d.Sessions, Templates: d.Templates}
	orderHandler := &OrderHandler{Orders: d.Orders, Catalog: d.Catalog, Sessions: d.Sessions, Templates: d.Templates}
	adminHandler := &AdminHandler{Orders: d.Orders, Sessions: d.Sessions, Templates: d.Templates}

	limit := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if d.AuthLimiter != nil {
		limit = d.AuthLimiter.Middleware
	}
	s := d.Sessions
	admin := func(next IdentityHandler) http.HandlerFunc { return s.RequireRole(models.RoleAdmin, next) }
	customer := func(next IdentityHandler) http.HandlerFunc { return s.RequireRole(models.RoleCustomer, next) }

	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /login", authHandler.LoginGet)
	mux.HandleFunc("POST /login", limit(authHandler.LoginPost))
	mux.HandleFunc("GET /register", authHandler.RegisterGet)
	mux.HandleFunc("POST /register", limit(authHandler.RegisterPost))
	mux.HandleFunc("GET /logout", authHandler.Logout)
	mux.HandleFunc("GET /healthz", healthHandler(d.Health))
	mux.Handle("GET /metrics", metrics.Handler())

	// Any signed-in user
	mux.HandleFunc("GET /{$}", s.RequireSession(catalogHandler.Index))
	mux.HandleFunc("GET /home", s.RequireSession(catalogHandler.Home))

	// Admin only
	mux.HandleFunc("GET /add", admin(catalogHandler.AddForm))
	mux.HandleFunc("POST /add", admin(catalogHandler.Add))
	mux.HandleFunc("GET /edit/{id}", admin(catalogHandler.EditForm))
	mux.HandleFunc("POST /edit/{id}", admin(catalogHandler.Edit))
	mux.HandleFunc("GET /delete/{id}", admin(catalogHandler.Delete))
	mux.HandleFunc("POST /delete/{id}", admin(catalogHandler.Delete))
	mux.HandleFunc("GET /admin/orders", admin(adminHandler.ListOrders))
	mux.HandleFunc("GET /admin/orders/approve/{id}", admin(adminHandler.Approve))
	mux.HandleFunc("POST /admin/orders/approve/{id}", admin(adminHandler.Approve))
	mux.HandleFunc("GET /admin/orders/reject/{id}", admin(adminHandler.Reject))
	mux.HandleFunc("POST /admin/orders/reject/{id}", admin(adminHandler.Reject))

	// Customer only
	mux.HandleFunc("GET /orders", customer(orderHandler.MyOrders))
	mux.HandleFunc("GET /add_order", customer(orderHandler.OrderForm))
	mux.HandleFunc("POST /add_order", customer(orderHandler.SubmitOrder))

	return MetricsMiddleware(mux)
}

func healthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			if err := p.Ping(r.Context()); err != nil {
				serverError(w, "health check", err)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	}
}
