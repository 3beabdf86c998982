package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/config"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/handlers"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/store"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Using TextHandler for console readability
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Init DB, schema and seed catalog
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Initialize(ctx); err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	if n, err := db.CountUsers(ctx); err != nil {
		slog.Warn("Could not count accounts", "error", err)
	} else if n == 0 {
		slog.Warn("No accounts yet; create an admin with: cli add-user -username <name> -password <pw>")
	}

	// 3. Sessions and templates
	sessionManager := handlers.NewSessionManager(
		handlers.NewCookieStore(cfg.SessionKey, cfg.CookieSecure, cfg.CookieDomain),
	)

	templates := handlers.NewTemplateCache()
	if err := templates.Load(handlers.TemplateFS, "templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 4. Services and routes
	authLimiter := handlers.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst)
	go authLimiter.Run(ctx, 10*time.Minute)

	router := handlers.NewRouter(handlers.Dependencies{
		Catalog:     service.NewCatalog(db),
		Orders:      service.NewOrders(db),
		Auth:        service.NewAuth(db, cfg.BcryptCost),
		Sessions:    sessionManager,
		Templates:   templates,
		Health:      db,
		AuthLimiter: authLimiter,
	})

	// 5. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.Path("/"),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port}),
	)
	protected := CSRF(router)
	if !cfg.CookieSecure {
		// Served over plain HTTP in development; tell csrf not to expect TLS.
		inner := protected
		protected = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inner.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}

	// Chain: Logger -> Security Headers -> CSRF -> Metrics -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(protected),
	)

	// 6. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "db", cfg.DBPath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-ctx.Done()

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
