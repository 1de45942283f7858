package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/AdeenMir/SpendingTracker/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	LedgerSvc       LedgerService
	AccountSvc      AccountService
	BudgetSvc       BudgetService
	AnalyticsSvc    AnalyticsService
}
