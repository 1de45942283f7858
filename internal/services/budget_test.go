package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/models"
	"github.com/AdeenMir/SpendingTracker/pkg/helpers"
)

type fakeBudgetStore struct {
	budgets map[string]*models.Budget
}

func newFakeBudgetStore(budgets ...*models.Budget) *fakeBudgetStore {
	f := &fakeBudgetStore{budgets: map[string]*models.Budget{}}
	for _, b := range budgets {
		f.budgets[b.BudgetID] = b
	}
	return f
}

func (f *fakeBudgetStore) Create(_ context.Context, _ string, b *models.Budget) error {
	cp := *b
	f.budgets[b.BudgetID] = &cp
	return nil
}

func (f *fakeBudgetStore) Get(_ context.Context, _, id string) (*models.Budget, error) {
	b, ok := f.budgets[id]
	if !ok {
		return nil, errs.NewNotFoundError("budget not found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBudgetStore) List(_ context.Context, _ string) ([]*models.Budget, error) {
	out := make([]*models.Budget, 0, len(f.budgets))
	for _, b := range f.budgets {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeBudgetStore) Update(_ context.Context, _ string, b *models.Budget) error {
	cp := *b
	f.budgets[b.BudgetID] = &cp
	return nil
}

func (f *fakeBudgetStore) Delete(_ context.Context, _, id string) error {
	delete(f.budgets, id)
	return nil
}

type fakeBudgetTxStore struct {
	txs       []*models.Transaction
	lastQuery dto.TransactionQuery
}

// Query applies the same filters the Firestore store would, so period
// boundaries are exercised end to end.
func (f *fakeBudgetTxStore) Query(_ context.Context, _ string, q dto.TransactionQuery, handle func(*models.Transaction) error) error {
	f.lastQuery = q
	for _, t := range f.txs {
		if q.Kind != nil && t.Kind != *q.Kind {
			continue
		}
		if q.Category != nil && t.Category != *q.Category {
			continue
		}
		if q.PostedFrom != nil && t.PostedAt.Before(*q.PostedFrom) {
			continue
		}
		if err := handle(t); err != nil {
			return err
		}
	}
	return nil
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPeriodStart(t *testing.T) {
	// Wednesday, 15 January 2025, 14:30 local.
	now := time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		period models.BudgetPeriod
		want   time.Time
	}{
		{models.PeriodDaily, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{models.PeriodWeekly, time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC)}, // most recent Monday
		{models.PeriodMonthly, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := periodStart(tc.period, now)
		if err != nil {
			t.Fatalf("periodStart(%s) error: %v", tc.period, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("periodStart(%s): got %v, want %v", tc.period, got, tc.want)
		}
	}
}

func TestPeriodStartOnMondayAndSunday(t *testing.T) {
	monday := time.Date(2025, time.January, 13, 9, 0, 0, 0, time.UTC)
	got, _ := periodStart(models.PeriodWeekly, monday)
	if want := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("weekly start on Monday: got %v, want %v", got, want)
	}

	sunday := time.Date(2025, time.January, 19, 9, 0, 0, 0, time.UTC)
	got, _ = periodStart(models.PeriodWeekly, sunday)
	if want := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("weekly start on Sunday: got %v, want %v", got, want)
	}
}

func TestPeriodStartUnknownPeriod(t *testing.T) {
	_, err := periodStart("quarterly", time.Now())
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestComputeSpentWeeklyBoundary(t *testing.T) {
	// "Now" is Wednesday 15 January 2025. Last Sunday (the 12th) is
	// before this week's Monday and must not count; Tuesday the 14th must.
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	txStore := &fakeBudgetTxStore{
		txs: []*models.Transaction{
			{Kind: models.KindExpense, Category: "Food", Amount: 30,
				PostedAt: time.Date(2025, time.January, 12, 18, 0, 0, 0, time.UTC)},
			{Kind: models.KindExpense, Category: "Food", Amount: 12.50,
				PostedAt: time.Date(2025, time.January, 14, 9, 0, 0, 0, time.UTC)},
			{Kind: models.KindExpense, Category: "Transport", Amount: 8,
				PostedAt: time.Date(2025, time.January, 14, 9, 0, 0, 0, time.UTC)},
			{Kind: models.KindIncome, Category: "Food", Amount: 99,
				PostedAt: time.Date(2025, time.January, 14, 9, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewBudgetService(newFakeBudgetStore(), txStore)
	svc.now = fixedNow(now)

	spent, err := svc.ComputeSpent(helpers.TestCtx(), "user", "Food", models.PeriodWeekly)
	if err != nil {
		t.Fatalf("ComputeSpent error: %v", err)
	}
	if spent != 12.50 {
		t.Fatalf("spent: got %v, want 12.50", spent)
	}
	if txStore.lastQuery.Kind == nil || *txStore.lastQuery.Kind != models.KindExpense {
		t.Fatalf("query kind: %+v", txStore.lastQuery.Kind)
	}
}

func TestComputeSpentNoMatches(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetStore(), &fakeBudgetTxStore{})
	spent, err := svc.ComputeSpent(helpers.TestCtx(), "user", "Food", models.PeriodDaily)
	if err != nil {
		t.Fatalf("ComputeSpent error: %v", err)
	}
	if spent != 0 {
		t.Fatalf("spent: got %v, want 0", spent)
	}
}

func TestGetBudgetStatus(t *testing.T) {
	budget := &models.Budget{
		BudgetID:    "b1",
		Category:    "Food",
		LimitAmount: 100,
		Period:      models.PeriodMonthly,
	}
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	txStore := &fakeBudgetTxStore{
		txs: []*models.Transaction{
			{Kind: models.KindExpense, Category: "Food", Amount: 80,
				PostedAt: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
			{Kind: models.KindExpense, Category: "Food", Amount: 45,
				PostedAt: time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewBudgetService(newFakeBudgetStore(budget), txStore)
	svc.now = fixedNow(now)

	status, err := svc.GetBudgetStatus(helpers.TestCtx(), "user", "b1")
	if err != nil {
		t.Fatalf("GetBudgetStatus error: %v", err)
	}
	if status.Spent != 125 {
		t.Fatalf("spent: got %v, want 125", status.Spent)
	}
	if status.Percent != 1.25 {
		t.Fatalf("percent: got %v, want 1.25", status.Percent)
	}
	if !status.OverBudget {
		t.Fatalf("expected over budget")
	}
}

func TestGetBudgetStatusZeroLimit(t *testing.T) {
	// A zero limit can only come from legacy data; it must not divide.
	budget := &models.Budget{BudgetID: "b1", Category: "Food", Period: models.PeriodDaily}
	svc := NewBudgetService(newFakeBudgetStore(budget), &fakeBudgetTxStore{})

	status, err := svc.GetBudgetStatus(helpers.TestCtx(), "user", "b1")
	if err != nil {
		t.Fatalf("GetBudgetStatus error: %v", err)
	}
	if status.Percent != 0 {
		t.Fatalf("percent with zero limit: got %v, want 0", status.Percent)
	}
}

func TestCreateBudgetValidation(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetStore(), &fakeBudgetTxStore{})
	cases := []dto.CreateBudgetRequest{
		{Category: "", LimitAmount: 10, Period: models.PeriodDaily},
		{Category: "Food", LimitAmount: 0, Period: models.PeriodDaily},
		{Category: "Food", LimitAmount: 10, Period: "yearly"},
	}
	for _, req := range cases {
		_, err := svc.CreateBudget(helpers.TestCtx(), "user", req)
		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %+v, got %v", req, err)
		}
	}
}

func TestUpdateBudget(t *testing.T) {
	budget := &models.Budget{BudgetID: "b1", Category: "Food", LimitAmount: 50, Period: models.PeriodDaily}
	store := newFakeBudgetStore(budget)
	svc := NewBudgetService(store, &fakeBudgetTxStore{})

	updated, err := svc.UpdateBudget(helpers.TestCtx(), "user", "b1", dto.UpdateBudgetRequest{
		LimitAmount: 75,
		Period:      models.PeriodWeekly,
	})
	if err != nil {
		t.Fatalf("UpdateBudget error: %v", err)
	}
	if updated.LimitAmount != 75 || updated.Period != models.PeriodWeekly {
		t.Fatalf("unexpected budget: %+v", updated)
	}
	if updated.Category != "Food" {
		t.Fatalf("category changed: %q", updated.Category)
	}
}

func TestDeleteBudgetMissing(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetStore(), &fakeBudgetTxStore{})
	err := svc.DeleteBudget(helpers.TestCtx(), "user", "nope")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
