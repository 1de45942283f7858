package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/models"
	"github.com/AdeenMir/SpendingTracker/pkg/logger"
)

type accountASStore interface {
	Create(ctx context.Context, uid string, a *models.Account) error
	Get(ctx context.Context, uid, accountID string) (*models.Account, error)
	GetByName(ctx context.Context, uid, name string) (*models.Account, error)
	List(ctx context.Context, uid string) ([]*models.Account, error)
	Count(ctx context.Context, uid string) (int, error)
	Delete(ctx context.Context, uid, accountID string) error
}

type accountTransactionCounter interface {
	CountByAccount(ctx context.Context, uid, accountID string) (int, error)
}

type accountService struct {
	store       accountASStore
	txs         accountTransactionCounter
	defaultName string
}

func NewAccountService(store accountASStore, txs accountTransactionCounter, defaultName string) *accountService {
	return &accountService{store: store, txs: txs, defaultName: defaultName}
}

// ListAccounts returns the owner's accounts, provisioning the default
// account on first use so a fresh owner always has somewhere to post.
func (s *accountService) ListAccounts(ctx context.Context, uid string) ([]*models.Account, error) {
	accounts, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(accounts) > 0 {
		return accounts, nil
	}

	a := &models.Account{
		AccountID: uuid.New().String(),
		Name:      s.defaultName,
		Balance:   0,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, uid, a); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("default account provisioned", "account_id", a.AccountID, "name", a.Name)
	return []*models.Account{a}, nil
}

func (s *accountService) GetAccount(ctx context.Context, uid, accountID string) (*models.Account, error) {
	return s.store.Get(ctx, uid, accountID)
}

func (s *accountService) CreateAccount(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}

	// Names are the user-facing handle and must stay unique per owner.
	if _, err := s.store.GetByName(ctx, uid, req.Name); err == nil {
		return nil, errs.NewAlreadyExistsError("an account with this name already exists")
	} else if _, ok := err.(*errs.AccountNotFoundError); !ok {
		return nil, err
	}

	a := &models.Account{
		AccountID: uuid.New().String(),
		Name:      req.Name,
		Balance:   0,
		ColorTag:  req.ColorTag,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, uid, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAccount refuses to delete the owner's only account, and refuses
// while posted transactions still reference the account. No cascade, no
// dangling accountId references.
func (s *accountService) DeleteAccount(ctx context.Context, uid, accountID string) error {
	if _, err := s.store.Get(ctx, uid, accountID); err != nil {
		return err
	}

	count, err := s.store.Count(ctx, uid)
	if err != nil {
		return err
	}
	if count <= 1 {
		return errs.NewInvalidStateError("cannot delete the only account")
	}

	refs, err := s.txs.CountByAccount(ctx, uid, accountID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return errs.NewInvalidStateError("account still has transactions; delete them first")
	}

	return s.store.Delete(ctx, uid, accountID)
}
