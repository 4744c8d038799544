package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/api"
	"github.com/mdekker/Goal-Planner-Backend/internal/config"
	"github.com/mdekker/Goal-Planner-Backend/internal/database"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
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

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	goalRepo := repository.NewGoalRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	ackRepo := repository.NewAcknowledgementRepository(db)
	flexEventRepo := repository.NewFlexEventRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	goalService := service.NewGoalService(goalRepo)
	scenarioService := service.NewScenarioService(scenarioRepo)
	transactionService := service.NewTransactionService(transactionRepo, goalRepo)
	flexEventService := service.NewFlexEventService(flexEventRepo, goalRepo)
	plannerService := service.NewPlannerService(
		goalRepo,
		scenarioRepo,
		transactionRepo,
		ackRepo,
		flexEventRepo,
		settingsRepo,
	)
	snapshotService := service.NewSnapshotService(plannerService, snapshotRepo)
	assistantService := service.NewAssistantService(goalService, transactionService, plannerService)
	settingsService, err := service.NewSettingsService(settingsRepo, cfg.Security.SettingsKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}

	// Repair any drift between goal balances and the transaction log
	if err := goalService.ReconcileCurrentAmounts(); err != nil {
		log.Fatalf("Failed to reconcile goal balances: %v", err)
	}

	// Start the plan-health snapshot schedule
	if err := snapshotService.Start(cfg.Scheduler.SnapshotCron); err != nil {
		log.Fatalf("Failed to start snapshot scheduler: %v", err)
	}
	defer snapshotService.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Goal:        goalService,
		Scenario:    scenarioService,
		Transaction: transactionService,
		FlexEvent:   flexEventService,
		Planner:     plannerService,
		Snapshot:    snapshotService,
		Assistant:   assistantService,
		Settings:    settingsService,
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
