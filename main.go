package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"afford-agent/config"
	httpLayer "afford-agent/http"
	"afford-agent/repository"
	"afford-agent/service"
)

func main() {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Loaded tax schedules for %s", cfg.TaxYear)

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
	} else {
		cache = repository.NewMockCache()
	}

	scenarioRepo := repository.NewScenarioRepositoryMemory()

	taxService := service.NewTaxService(cfg.IncomeTax, cfg.NationalInsurance, cfg.TransferTax)
	loanService := service.NewLoanService()
	salaryService := service.NewSalaryService(
		taxService,
		cache,
		cfg.SalaryConversion.Strategy,
		cfg.SalaryConversion.FlatEffectiveTaxRate,
		cfg.SalaryConversion.GrossSearchBound,
	)
	affordabilityService := service.NewAffordabilityService(salaryService, loanService, taxService)
	sensitivityService := service.NewSensitivityService(affordabilityService)
	summaryService := service.NewSummaryService()

	projectionHandler := httpLayer.NewProjectionHandler(affordabilityService, summaryService, scenarioRepo)
	sensitivityHandler := httpLayer.NewSensitivityHandler(sensitivityService)
	loanHandler := httpLayer.NewLoanHandler(loanService)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioRepo)

	rateLimiter := httpLayer.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/projection/salary",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(projectionHandler.SalaryProjection),
		),
	)
	mux.Handle(
		"/projection/affordability",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(projectionHandler.Affordability),
		),
	)
	mux.Handle(
		"/projection/rate-sensitivity",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(sensitivityHandler.RateSweep),
		),
	)
	mux.Handle(
		"/loan/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(loanHandler.AmortizationSchedule),
		),
	)
	mux.Handle(
		"/scenarios",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scenarioHandler.ListScenarios),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
