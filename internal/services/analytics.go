package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/models"
)

type analyticsTransactionStore interface {
	Query(ctx context.Context, uid string, q dto.TransactionQuery, handle func(*models.Transaction) error) error
}

type analyticsAccountStore interface {
	List(ctx context.Context, uid string) ([]*models.Account, error)
}

type analyticsService struct {
	txs      analyticsTransactionStore
	accounts analyticsAccountStore
	now      func() time.Time
}

func NewAnalyticsService(txs analyticsTransactionStore, accounts analyticsAccountStore) *analyticsService {
	return &analyticsService{txs: txs, accounts: accounts, now: time.Now}
}

// Summarize rolls up income and expense totals over an already-fetched
// transaction set. Loans are excluded whatever their status; the category
// breakdown covers expenses only, with uncategorized amounts under
// "Other". Pure function, no store access.
func Summarize(transactions []models.Transaction) dto.SummaryResult {
	income := decimal.Zero
	expense := decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for _, t := range transactions {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Kind {
		case models.KindIncome:
			income = income.Add(amount)
		case models.KindExpense:
			expense = expense.Add(amount)
			category := t.Category
			if category == "" {
				category = "Other"
			}
			byCategory[category] = byCategory[category].Add(amount)
		}
	}

	result := dto.SummaryResult{
		TotalIncome:  income.InexactFloat64(),
		TotalExpense: expense.InexactFloat64(),
		NetBalance:   income.Sub(expense).InexactFloat64(),
		ByCategory:   make(map[string]float64, len(byCategory)),
	}
	for category, total := range byCategory {
		result.ByCategory[category] = total.InexactFloat64()
	}
	return result
}

// GetSummary fetches the owner's transactions for the given window and
// summarizes them.
func (s *analyticsService) GetSummary(ctx context.Context, uid string, args dto.SummaryArgs) (dto.SummaryResult, error) {
	var txs []models.Transaction
	err := s.txs.Query(ctx, uid, dto.TransactionQuery{
		AccountID:  args.AccountID,
		PostedFrom: args.DateFrom,
		PostedTo:   args.DateTo,
	}, func(t *models.Transaction) error {
		txs = append(txs, *t)
		return nil
	})
	if err != nil {
		return dto.SummaryResult{}, err
	}
	return Summarize(txs), nil
}

// GetOverview fans out the account list and the current-month summary
// concurrently; both hit independent collections.
func (s *analyticsService) GetOverview(ctx context.Context, uid string) (dto.OverviewResult, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		accounts []*models.Account
		summary  dto.SummaryResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.accounts.List(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.GetSummary(gctx, uid, dto.SummaryArgs{DateFrom: &monthStart})
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.OverviewResult{}, err
	}

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(decimal.NewFromFloat(a.Balance))
	}
	return dto.OverviewResult{
		TotalBalance: total.InexactFloat64(),
		Accounts:     accounts,
		ThisMonth:    summary,
	}, nil
}
