package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/ycwang-tw/etf-dashboard-backend/internal/api/middleware"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/config"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/service"
)

// Services bundles the service dependencies the router hands to handlers.
type Services struct {
	System    *service.SystemService
	Dashboard *service.DashboardService
	Holding   *service.HoldingService
	Ledger    *service.LedgerService
	Dividend  *service.DividendService
	DCA       *service.DCAService
	Price     *service.PriceService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
			r.Get("/", dashboardHandler.Dashboard)
			r.Get("/fill", dashboardHandler.FillProgress)
		})

		r.Route("/holding", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(svc.Holding)
			r.Get("/", holdingHandler.Holdings)
			r.Get("/{symbol}", holdingHandler.Holding)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.APIKeyMiddleware)
				r.Post("/", holdingHandler.CreateHolding)
				r.Put("/{symbol}", holdingHandler.UpdateHolding)
				r.Delete("/{symbol}", holdingHandler.DeleteHolding)
			})
		})

		r.Route("/ledger", func(r chi.Router) {
			ledgerHandler := handlers.NewLedgerHandler(svc.Ledger)
			r.Get("/", ledgerHandler.Entries)
			r.Get("/aggregate", ledgerHandler.Aggregate)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.APIKeyMiddleware)
				r.Post("/", ledgerHandler.CreateEntry)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", ledgerHandler.UpdateEntry)
					r.Delete("/", ledgerHandler.DeleteEntry)
				})
			})
		})

		r.Route("/dividend", func(r chi.Router) {
			dividendHandler := handlers.NewDividendHandler(svc.Dividend)
			r.Get("/", dividendHandler.Dividends)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.APIKeyMiddleware)
				r.Post("/", dividendHandler.CreateDividend)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", dividendHandler.UpdateDividend)
					r.Delete("/", dividendHandler.DeleteDividend)
				})
			})
		})

		r.Route("/dca", func(r chi.Router) {
			dcaHandler := handlers.NewDCAHandler(svc.DCA)
			r.Get("/", dcaHandler.Records)
			r.Get("/total", dcaHandler.Total)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.APIKeyMiddleware)
				r.Post("/", dcaHandler.CreateRecord)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Delete("/", dcaHandler.DeleteRecord)
				})
			})
		})

		r.Route("/price", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(svc.Price, svc.Holding)
			r.Get("/{symbol}", priceHandler.Price)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.APIKeyMiddleware)
				r.Post("/refresh", priceHandler.Refresh)
			})
		})
	})

	return r
}
