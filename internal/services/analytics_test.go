package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/models"
	"github.com/AdeenMir/SpendingTracker/pkg/helpers"
)

type fakeAnalyticsTxStore struct {
	txs       []*models.Transaction
	lastQuery dto.TransactionQuery
}

func (f *fakeAnalyticsTxStore) Query(_ context.Context, _ string, q dto.TransactionQuery, handle func(*models.Transaction) error) error {
	f.lastQuery = q
	for _, t := range f.txs {
		if q.AccountID != nil && t.AccountID != *q.AccountID {
			continue
		}
		if q.PostedFrom != nil && t.PostedAt.Before(*q.PostedFrom) {
			continue
		}
		if q.PostedTo != nil && t.PostedAt.After(*q.PostedTo) {
			continue
		}
		if err := handle(t); err != nil {
			return err
		}
	}
	return nil
}

type fakeAnalyticsAccountStore struct {
	accounts []*models.Account
	listErr  error
}

func (f *fakeAnalyticsAccountStore) List(_ context.Context, _ string) ([]*models.Account, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.accounts, nil
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.TotalIncome != 0 || got.TotalExpense != 0 || got.NetBalance != 0 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if got.ByCategory == nil || len(got.ByCategory) != 0 {
		t.Fatalf("byCategory should be empty, not nil: %+v", got.ByCategory)
	}
}

func TestSummarizeTotalsAndCategories(t *testing.T) {
	got := Summarize([]models.Transaction{
		{Kind: models.KindIncome, Amount: 1000},
		{Kind: models.KindIncome, Amount: 250.25},
		{Kind: models.KindExpense, Amount: 100, Category: "Food"},
		{Kind: models.KindExpense, Amount: 40.5, Category: "Food"},
		{Kind: models.KindExpense, Amount: 60, Category: "Transport"},
		{Kind: models.KindExpense, Amount: 15},
	})

	if got.TotalIncome != 1250.25 {
		t.Fatalf("income: got %v, want 1250.25", got.TotalIncome)
	}
	if got.TotalExpense != 215.5 {
		t.Fatalf("expense: got %v, want 215.5", got.TotalExpense)
	}
	if got.NetBalance != 1034.75 {
		t.Fatalf("net: got %v, want 1034.75", got.NetBalance)
	}
	if got.ByCategory["Food"] != 140.5 {
		t.Fatalf("food: got %v, want 140.5", got.ByCategory["Food"])
	}
	if got.ByCategory["Transport"] != 60 {
		t.Fatalf("transport: got %v, want 60", got.ByCategory["Transport"])
	}
	if got.ByCategory["Other"] != 15 {
		t.Fatalf("uncategorized expense should land under Other: %+v", got.ByCategory)
	}
}

func TestSummarizeExcludesLoans(t *testing.T) {
	got := Summarize([]models.Transaction{
		{Kind: models.KindIncome, Amount: 100},
		{Kind: models.KindLoan, Amount: 500, LoanDirection: models.LoanLent, Status: models.LoanPending},
		{Kind: models.KindLoan, Amount: 200, LoanDirection: models.LoanBorrowed, Status: models.LoanSettled},
	})
	if got.TotalIncome != 100 || got.TotalExpense != 0 {
		t.Fatalf("loans must not count toward totals: %+v", got)
	}
}

func TestGetSummaryPassesFilters(t *testing.T) {
	from := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	txStore := &fakeAnalyticsTxStore{
		txs: []*models.Transaction{
			{Kind: models.KindExpense, Amount: 20, Category: "Food", AccountID: "acc-1",
				PostedAt: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)},
			{Kind: models.KindExpense, Amount: 99, Category: "Food", AccountID: "acc-2",
				PostedAt: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)},
			{Kind: models.KindExpense, Amount: 50, Category: "Food", AccountID: "acc-1",
				PostedAt: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewAnalyticsService(txStore, &fakeAnalyticsAccountStore{})

	got, err := svc.GetSummary(helpers.TestCtx(), "user", dto.SummaryArgs{
		AccountID: helpers.Ptr("acc-1"),
		DateFrom:  &from,
		DateTo:    &to,
	})
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}
	if got.TotalExpense != 20 {
		t.Fatalf("expense: got %v, want 20", got.TotalExpense)
	}
	if txStore.lastQuery.AccountID == nil || *txStore.lastQuery.AccountID != "acc-1" {
		t.Fatalf("accountId filter not forwarded: %+v", txStore.lastQuery)
	}
}

func TestGetOverview(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	txStore := &fakeAnalyticsTxStore{
		txs: []*models.Transaction{
			{Kind: models.KindIncome, Amount: 300,
				PostedAt: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)},
			{Kind: models.KindExpense, Amount: 120, Category: "Food",
				PostedAt: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)},
			// Last month, must not show up in this-month summary.
			{Kind: models.KindExpense, Amount: 999, Category: "Food",
				PostedAt: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)},
		},
	}
	accStore := &fakeAnalyticsAccountStore{
		accounts: []*models.Account{
			{AccountID: "acc-1", Name: "Current", Balance: 410.10},
			{AccountID: "acc-2", Name: "Savings", Balance: 1000},
		},
	}
	svc := NewAnalyticsService(txStore, accStore)
	svc.now = fixedNow(now)

	got, err := svc.GetOverview(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("GetOverview error: %v", err)
	}
	if got.TotalBalance != 1410.10 {
		t.Fatalf("total balance: got %v, want 1410.10", got.TotalBalance)
	}
	if len(got.Accounts) != 2 {
		t.Fatalf("accounts: got %d, want 2", len(got.Accounts))
	}
	if got.ThisMonth.TotalIncome != 300 || got.ThisMonth.TotalExpense != 120 {
		t.Fatalf("this-month summary: %+v", got.ThisMonth)
	}
}

func TestGetOverviewAccountListFailure(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsTxStore{}, &fakeAnalyticsAccountStore{
		listErr: errors.New("firestore unavailable"),
	})
	if _, err := svc.GetOverview(helpers.TestCtx(), "user"); err == nil {
		t.Fatal("expected error from account list failure")
	}
}
