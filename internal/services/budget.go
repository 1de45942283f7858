package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/models"
	"github.com/AdeenMir/SpendingTracker/pkg/helpers"
)

type budgetBSStore interface {
	Create(ctx context.Context, uid string, b *models.Budget) error
	Get(ctx context.Context, uid, budgetID string) (*models.Budget, error)
	List(ctx context.Context, uid string) ([]*models.Budget, error)
	Update(ctx context.Context, uid string, b *models.Budget) error
	Delete(ctx context.Context, uid, budgetID string) error
}

type budgetTransactionStore interface {
	Query(ctx context.Context, uid string, q dto.TransactionQuery, handle func(*models.Transaction) error) error
}

// budgetService evaluates period-scoped spend against category limits.
// Budgets are read-only with respect to transaction activity.
type budgetService struct {
	store budgetBSStore
	txs   budgetTransactionStore
	now   func() time.Time
}

func NewBudgetService(store budgetBSStore, txs budgetTransactionStore) *budgetService {
	return &budgetService{store: store, txs: txs, now: time.Now}
}

func (s *budgetService) CreateBudget(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if err := validateBudget(req.Category, req.LimitAmount, req.Period); err != nil {
		return nil, err
	}
	b := &models.Budget{
		BudgetID:    uuid.New().String(),
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		Period:      req.Period,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, uid, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, uid string) ([]*models.Budget, error) {
	return s.store.List(ctx, uid)
}

func (s *budgetService) UpdateBudget(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error) {
	b, err := s.store.Get(ctx, uid, budgetID)
	if err != nil {
		return nil, err
	}
	if err := validateBudget(b.Category, req.LimitAmount, req.Period); err != nil {
		return nil, err
	}
	b.LimitAmount = req.LimitAmount
	b.Period = req.Period
	if err := s.store.Update(ctx, uid, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, uid, budgetID string) error {
	if _, err := s.store.Get(ctx, uid, budgetID); err != nil {
		return err
	}
	return s.store.Delete(ctx, uid, budgetID)
}

// ComputeSpent sums expense amounts for the category from the period start
// through now. There is no period end.
func (s *budgetService) ComputeSpent(ctx context.Context, uid, category string, period models.BudgetPeriod) (float64, error) {
	start, err := periodStart(period, s.now())
	if err != nil {
		return 0, err
	}

	spent := decimal.Zero
	err = s.txs.Query(ctx, uid, dto.TransactionQuery{
		Kind:       helpers.Ptr(models.KindExpense),
		Category:   &category,
		PostedFrom: &start,
	}, func(t *models.Transaction) error {
		spent = spent.Add(decimal.NewFromFloat(t.Amount))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return spent.InexactFloat64(), nil
}

func (s *budgetService) GetBudgetStatus(ctx context.Context, uid, budgetID string) (dto.BudgetStatus, error) {
	b, err := s.store.Get(ctx, uid, budgetID)
	if err != nil {
		return dto.BudgetStatus{}, err
	}
	spent, err := s.ComputeSpent(ctx, uid, b.Category, b.Period)
	if err != nil {
		return dto.BudgetStatus{}, err
	}

	var percent float64
	if b.LimitAmount > 0 {
		percent = decimal.NewFromFloat(spent).
			Div(decimal.NewFromFloat(b.LimitAmount)).InexactFloat64()
	}
	return dto.BudgetStatus{
		BudgetID:    b.BudgetID,
		Category:    b.Category,
		Period:      b.Period,
		LimitAmount: b.LimitAmount,
		Spent:       spent,
		Percent:     percent,
		OverBudget:  spent > b.LimitAmount,
	}, nil
}

// periodStart resolves the earliest instant a budget evaluation includes:
// start of today, the most recent Monday, or the first of the month.
func periodStart(period models.BudgetPeriod, now time.Time) (time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case models.PeriodDaily:
		return midnight, nil
	case models.PeriodWeekly:
		return mondayOfWeek(midnight), nil
	case models.PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, errs.NewValidationError("period must be one of: daily, weekly, monthly")
}

func mondayOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // ISO: Sunday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func validateBudget(category string, limit float64, period models.BudgetPeriod) error {
	if category == "" {
		return errs.NewValidationError("category is required")
	}
	if limit <= 0 {
		return errs.NewValidationError("limitAmount must be greater than zero")
	}
	switch period {
	case models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly:
		return nil
	}
	return errs.NewValidationError("period must be one of: daily, weekly, monthly")
}
