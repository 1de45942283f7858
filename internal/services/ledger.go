package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/models"
	"github.com/AdeenMir/SpendingTracker/pkg/helpers"
	"github.com/AdeenMir/SpendingTracker/pkg/logger"
)

// ledgerAccountStore is the account storage surface the ledger needs:
// name resolution at post time and the atomic delta primitive. The ledger
// never reads a balance to write it back.
type ledgerAccountStore interface {
	GetByName(ctx context.Context, uid, name string) (*models.Account, error)
	AdjustBalance(ctx context.Context, uid, accountID string, delta float64) error
}

type ledgerTransactionStore interface {
	Create(ctx context.Context, uid string, t *models.Transaction) error
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	Update(ctx context.Context, uid string, t *models.Transaction) error
	Delete(ctx context.Context, uid, transactionID string) error
	Query(ctx context.Context, uid string, q dto.TransactionQuery, handle func(*models.Transaction) error) error
}

// ledgerService keeps each account's stored balance equal to the signed
// sum of its posted transactions. Every mutation path derives its
// adjustment from balanceEffect, so the arithmetic lives in one place.
type ledgerService struct {
	accounts ledgerAccountStore
	txs      ledgerTransactionStore
	now      func() time.Time
}

func NewLedgerService(accounts ledgerAccountStore, txs ledgerTransactionStore) *ledgerService {
	return &ledgerService{
		accounts: accounts,
		txs:      txs,
		now:      time.Now,
	}
}

// balanceEffect returns the signed contribution of a transaction to its
// account balance: income +amount, expense -amount, settled loans signed
// by direction, pending loans zero (off-balance until settled).
func balanceEffect(t *models.Transaction) decimal.Decimal {
	amount := decimal.NewFromFloat(t.Amount)
	switch t.Kind {
	case models.KindIncome:
		return amount
	case models.KindExpense:
		return amount.Neg()
	case models.KindLoan:
		if t.Status != models.LoanSettled {
			return decimal.Zero
		}
		if t.LoanDirection == models.LoanBorrowed {
			return amount.Neg()
		}
		return amount
	}
	return decimal.Zero
}

func (s *ledgerService) PostTransaction(ctx context.Context, uid string, req dto.PostTransactionRequest) (*models.Transaction, error) {
	if err := validatePost(req); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByName(ctx, uid, req.AccountName)
	if err != nil {
		return nil, err
	}

	t := &models.Transaction{
		TransactionID: uuid.New().String(),
		AccountID:     account.AccountID,
		AccountName:   account.Name,
		Kind:          req.Kind,
		Amount:        req.Amount,
		Note:          req.Note,
		PostedAt:      helpers.ValueOr(req.PostedAt, s.now()),
	}
	switch req.Kind {
	case models.KindLoan:
		t.Person = req.Person
		t.LoanDirection = req.LoanDirection
		t.Status = models.LoanPending
	default:
		t.Category = req.Category
		if t.Category == "" {
			t.Category = "Other"
		}
	}

	if err := s.txs.Create(ctx, uid, t); err != nil {
		return nil, err
	}

	if err := s.applyEffect(ctx, uid, t, balanceEffect(t)); err != nil {
		return t, err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction posted", "transaction_id", t.TransactionID, "kind", t.Kind, "account_id", t.AccountID)
	return t, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	return s.txs.Get(ctx, uid, transactionID)
}

func (s *ledgerService) ListTransactions(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	var out []models.Transaction
	err := s.txs.Query(ctx, uid, q, func(t *models.Transaction) error {
		out = append(out, *t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EditTransaction changes the amount and the category-or-person label.
// The balance of the recorded account moves by the difference between the
// old and new effect; editing a pending loan touches no balance.
func (s *ledgerService) EditTransaction(ctx context.Context, uid, transactionID string, req dto.EditTransactionRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than zero")
	}

	old, err := s.txs.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}

	updated := *old
	updated.Amount = req.Amount
	if req.Label != "" {
		if updated.Kind == models.KindLoan {
			updated.Person = req.Label
		} else {
			updated.Category = req.Label
		}
	}

	if err := s.txs.Update(ctx, uid, &updated); err != nil {
		return nil, err
	}

	delta := balanceEffect(&updated).Sub(balanceEffect(old))
	if err := s.applyEffect(ctx, uid, &updated, delta); err != nil {
		return &updated, err
	}
	return &updated, nil
}

// DeleteTransaction reverses the transaction's balance effect, then
// removes the record.
func (s *ledgerService) DeleteTransaction(ctx context.Context, uid, transactionID string) error {
	t, err := s.txs.Get(ctx, uid, transactionID)
	if err != nil {
		return err
	}

	effect := balanceEffect(t)
	if !effect.IsZero() {
		if err := s.accounts.AdjustBalance(ctx, uid, t.AccountID, effect.Neg().InexactFloat64()); err != nil {
			return err
		}
	}
	if err := s.txs.Delete(ctx, uid, transactionID); err != nil {
		return errs.NewPartialFailureError("record",
			fmt.Sprintf("balance reversed but transaction %s was not removed", transactionID), err)
	}

	log := logger.FromContext(ctx)
	log.Info("transaction deleted", "transaction_id", transactionID, "account_id", t.AccountID)
	return nil
}

// SettleLoan moves a pending loan on-balance: lent money comes back
// (+amount), borrowed money is paid back (-amount). Settled is terminal.
func (s *ledgerService) SettleLoan(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	t, err := s.txs.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}
	if t.Kind != models.KindLoan {
		return nil, errs.NewValidationError("transaction is not a loan")
	}
	if t.Status != models.LoanPending {
		return nil, errs.NewInvalidStateError("loan is already settled")
	}

	t.Status = models.LoanSettled
	if err := s.txs.Update(ctx, uid, t); err != nil {
		return nil, err
	}

	if err := s.applyEffect(ctx, uid, t, balanceEffect(t)); err != nil {
		return t, err
	}

	log := logger.FromContext(ctx)
	log.Info("loan settled", "transaction_id", t.TransactionID, "direction", t.LoanDirection)
	return t, nil
}

// applyEffect is the second write of a two-step mutation. A failure here
// leaves the record and the balance out of step, which must never be
// silent: it surfaces as PartialFailureError naming the balance step.
func (s *ledgerService) applyEffect(ctx context.Context, uid string, t *models.Transaction, effect decimal.Decimal) error {
	if effect.IsZero() {
		return nil
	}
	if err := s.accounts.AdjustBalance(ctx, uid, t.AccountID, effect.InexactFloat64()); err != nil {
		return errs.NewPartialFailureError("balance",
			fmt.Sprintf("transaction %s written but balance adjustment failed", t.TransactionID), err)
	}
	return nil
}

func validatePost(req dto.PostTransactionRequest) error {
	if req.Amount <= 0 {
		return errs.NewValidationError("amount must be greater than zero")
	}
	if req.AccountName == "" {
		return errs.NewValidationError("accountName is required")
	}
	switch req.Kind {
	case models.KindIncome, models.KindExpense:
		if req.Person != "" {
			return errs.NewValidationError("person is only valid for loans")
		}
	case models.KindLoan:
		if req.Person == "" {
			return errs.NewValidationError("person is required for loans")
		}
		if req.LoanDirection != models.LoanLent && req.LoanDirection != models.LoanBorrowed {
			return errs.NewValidationError(`loanType must be "lent" or "borrowed"`)
		}
		if req.Category != "" {
			return errs.NewValidationError("category is not valid for loans")
		}
	default:
		return errs.NewValidationError("kind must be one of: income, expense, loan")
	}
	return nil
}
