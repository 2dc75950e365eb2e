package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/api"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/config"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/database"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/engine"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/pricefeed"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/repository"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/scheduler"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply embedded migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	dcaRepo := repository.NewDCARepository(db)
	priceRepo := repository.NewPriceRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	holdingService := service.NewHoldingService(holdingRepo)
	ledgerService := service.NewLedgerService(ledgerRepo, holdingRepo)
	dividendService := service.NewDividendService(dividendRepo, holdingRepo)
	dcaService := service.NewDCAService(dcaRepo, holdingRepo)
	priceService := service.NewPriceService(priceRepo, pricefeed.NewClient(), cfg.PriceFeed.DefaultPrices)

	goal := engine.GoalConfig{
		TargetLow:           cfg.Goal.TargetLow,
		TargetHigh:          cfg.Goal.TargetHigh,
		AnnualReturn:        cfg.Goal.AnnualReturn,
		MonthlyContribution: cfg.Goal.MonthlyContribution,
	}
	dashboardService := service.NewDashboardService(
		holdingRepo,
		ledgerRepo,
		dividendRepo,
		dcaRepo,
		priceService,
		goal,
	)

	// Background price refresh
	priceScheduler, err := scheduler.New(cfg.PriceFeed.RefreshSpec, holdingRepo, priceService)
	if err != nil {
		log.Fatalf("Failed to create price scheduler: %v", err)
	}
	priceScheduler.Start()
	defer priceScheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Dashboard: dashboardService,
		Holding:   holdingService,
		Ledger:    ledgerService,
		Dividend:  dividendService,
		DCA:       dcaService,
		Price:     priceService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
