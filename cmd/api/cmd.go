package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/AdeenMir/SpendingTracker/internal/bootstrap"
	"github.com/AdeenMir/SpendingTracker/internal/config"
	"github.com/AdeenMir/SpendingTracker/internal/handlers"
	"github.com/AdeenMir/SpendingTracker/internal/response"
	"github.com/AdeenMir/SpendingTracker/internal/router"
	"github.com/AdeenMir/SpendingTracker/internal/services"
	"github.com/AdeenMir/SpendingTracker/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()
	exitOnError("invalid configuration", cfg.Validate(), bs.Log)

	// stores
	astore := store.NewAccountStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)

	// services
	lserv := services.NewLedgerService(astore, tstore)
	aserv := services.NewAccountService(astore, tstore, cfg.DefaultAccountName)
	bserv := services.NewBudgetService(bstore, tstore)
	anserv := services.NewAnalyticsService(tstore, astore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.LedgerSvc = lserv
	deps.AccountSvc = aserv
	deps.BudgetSvc = bserv
	deps.AnalyticsSvc = anserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
