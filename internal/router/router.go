package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/AdeenMir/SpendingTracker/internal/handlers"
	"github.com/AdeenMir/SpendingTracker/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	am := middleware.NewMiddleware(deps.Firebase)

	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(am.FirebaseAuth)

	ah := handlers.NewAccountHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	bh := handlers.NewBudgetHandlers(deps)
	anh := handlers.NewAnalyticsHandlers(deps)

	r.Mount("/accounts", ah.AccountRoutes())
	r.Mount("/transactions", th.TransactionRoutes())
	r.Mount("/budgets", bh.BudgetRoutes())
	r.Mount("/analytics", anh.AnalyticsRoutes())
	return r
}
