package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mdekker/Goal-Planner-Backend/internal/api/handlers"
	custommiddleware "github.com/mdekker/Goal-Planner-Backend/internal/api/middleware"
	"github.com/mdekker/Goal-Planner-Backend/internal/config"
	"github.com/mdekker/Goal-Planner-Backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Goal        *service.GoalService
	Scenario    *service.ScenarioService
	Transaction *service.TransactionService
	FlexEvent   *service.FlexEventService
	Planner     *service.PlannerService
	Snapshot    *service.SnapshotService
	Assistant   *service.AssistantService
	Settings    *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
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
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/goals", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(svcs.Goal)
			r.Get("/", goalHandler.Goals)
			r.Post("/", goalHandler.CreateGoal)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", goalHandler.GetGoal)
				r.Put("/", goalHandler.UpdateGoal)
				r.Delete("/", goalHandler.DeleteGoal)
				r.Get("/progress", goalHandler.GoalProgress)
			})
		})

		r.Route("/scenarios", func(r chi.Router) {
			scenarioHandler := handlers.NewScenarioHandler(svcs.Scenario)
			r.Get("/", scenarioHandler.Scenarios)
			r.Post("/", scenarioHandler.CreateScenario)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", scenarioHandler.GetScenario)
				r.Put("/", scenarioHandler.UpdateScenario)
				r.Delete("/", scenarioHandler.DeleteScenario)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svcs.Transaction)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
			})
		})

		r.Route("/flex-events", func(r chi.Router) {
			flexEventHandler := handlers.NewFlexEventHandler(svcs.FlexEvent)
			r.Get("/", flexEventHandler.FlexEvents)
			r.Post("/", flexEventHandler.CreateFlexEvent)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", flexEventHandler.GetFlexEvent)
				r.Post("/rebalance", flexEventHandler.Rebalance)
				r.Post("/acknowledge", flexEventHandler.AcknowledgeFlexEvent)
			})
		})

		r.Route("/planner", func(r chi.Router) {
			plannerHandler := handlers.NewPlannerHandler(svcs.Planner, svcs.Goal, svcs.Snapshot)
			r.Post("/autosplit", plannerHandler.AutoSplit)
			r.Get("/deviations", plannerHandler.Deviations)
			r.Post("/deviations/acknowledge", plannerHandler.AcknowledgeDeviation)
			r.Post("/consequence", plannerHandler.Consequence)
			r.Get("/health", plannerHandler.Health)
			r.Get("/health/snapshot", plannerHandler.HealthSnapshot)
			r.With(custommiddleware.ValidateUUIDMiddleware).Get("/required/{uuid}", plannerHandler.RequiredMonthly)
		})

		r.Route("/assistant", func(r chi.Router) {
			assistantHandler := handlers.NewAssistantHandler(svcs.Assistant)
			r.Post("/action", assistantHandler.ExecuteAction)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svcs.Settings)
			r.Get("/assistant-token", settingsHandler.GetAssistantToken)
			r.Put("/assistant-token", settingsHandler.UpdateAssistantToken)
		})
	})

	return r
}
