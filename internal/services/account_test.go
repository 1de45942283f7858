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

type stubAccountStore struct {
	accounts map[string]*models.Account
}

func newStubAccountStore(accounts ...*models.Account) *stubAccountStore {
	s := &stubAccountStore{accounts: map[string]*models.Account{}}
	for _, a := range accounts {
		s.accounts[a.AccountID] = a
	}
	return s
}

func (s *stubAccountStore) Create(_ context.Context, _ string, a *models.Account) error {
	cp := *a
	s.accounts[a.AccountID] = &cp
	return nil
}

func (s *stubAccountStore) Get(_ context.Context, _, accountID string) (*models.Account, error) {
	a, ok := s.accounts[accountID]
	if !ok {
		return nil, errs.NewAccountNotFoundError(accountID)
	}
	cp := *a
	return &cp, nil
}

func (s *stubAccountStore) GetByName(_ context.Context, _, name string) (*models.Account, error) {
	for _, a := range s.accounts {
		if a.Name == name {
			cp := *a
			return &cp, nil
		}
	}
	return nil, errs.NewAccountNotFoundError(name)
}

func (s *stubAccountStore) List(_ context.Context, _ string) ([]*models.Account, error) {
	out := make([]*models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubAccountStore) Count(_ context.Context, _ string) (int, error) {
	return len(s.accounts), nil
}

func (s *stubAccountStore) Delete(_ context.Context, _, accountID string) error {
	delete(s.accounts, accountID)
	return nil
}

type stubTxCounter struct {
	counts map[string]int
}

func (s *stubTxCounter) CountByAccount(_ context.Context, _, accountID string) (int, error) {
	return s.counts[accountID], nil
}

func TestListAccountsProvisionsDefault(t *testing.T) {
	store := newStubAccountStore()
	svc := NewAccountService(store, &stubTxCounter{}, "Current")

	accounts, err := svc.ListAccounts(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("ListAccounts error: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("accounts: got %d, want 1", len(accounts))
	}
	if accounts[0].Name != "Current" || accounts[0].Balance != 0 {
		t.Fatalf("unexpected default account: %+v", accounts[0])
	}
	if len(store.accounts) != 1 {
		t.Fatalf("default account was not persisted")
	}
}

func TestListAccountsDoesNotReprovision(t *testing.T) {
	store := newStubAccountStore(&models.Account{AccountID: "acc-1", Name: "Savings"})
	svc := NewAccountService(store, &stubTxCounter{}, "Current")

	accounts, err := svc.ListAccounts(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("ListAccounts error: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Name != "Savings" {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

func TestCreateAccount(t *testing.T) {
	store := newStubAccountStore()
	svc := NewAccountService(store, &stubTxCounter{}, "Current")

	a, err := svc.CreateAccount(helpers.TestCtx(), "user", dto.CreateAccountRequest{
		Name:     "Savings",
		ColorTag: "#00FF00",
	})
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if a.AccountID == "" {
		t.Fatal("expected a store-assigned id")
	}
	if a.Balance != 0 {
		t.Fatalf("new account balance: got %v, want 0", a.Balance)
	}
	if a.ColorTag != "#00FF00" {
		t.Fatalf("colorTag: got %q", a.ColorTag)
	}
}

func TestCreateAccountDuplicateName(t *testing.T) {
	store := newStubAccountStore(&models.Account{AccountID: "acc-1", Name: "Savings"})
	svc := NewAccountService(store, &stubTxCounter{}, "Current")

	_, err := svc.CreateAccount(helpers.TestCtx(), "user", dto.CreateAccountRequest{Name: "Savings"})
	var dup *errs.AlreadyExistsError
	if !errors.As(err, &dup) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
}

func TestCreateAccountEmptyName(t *testing.T) {
	svc := NewAccountService(newStubAccountStore(), &stubTxCounter{}, "Current")
	_, err := svc.CreateAccount(helpers.TestCtx(), "user", dto.CreateAccountRequest{})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteOnlyAccountBlocked(t *testing.T) {
	store := newStubAccountStore(&models.Account{AccountID: "acc-1", Name: "Current"})
	svc := NewAccountService(store, &stubTxCounter{}, "Current")

	err := svc.DeleteAccount(helpers.TestCtx(), "user", "acc-1")
	var state *errs.InvalidStateError
	if !errors.As(err, &state) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if len(store.accounts) != 1 {
		t.Fatal("account was deleted")
	}
}

func TestDeleteReferencedAccountBlocked(t *testing.T) {
	store := newStubAccountStore(
		&models.Account{AccountID: "acc-1", Name: "Current"},
		&models.Account{AccountID: "acc-2", Name: "Savings"},
	)
	svc := NewAccountService(store, &stubTxCounter{counts: map[string]int{"acc-2": 3}}, "Current")

	err := svc.DeleteAccount(helpers.TestCtx(), "user", "acc-2")
	var state *errs.InvalidStateError
	if !errors.As(err, &state) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
}

func TestDeleteUnreferencedAccount(t *testing.T) {
	store := newStubAccountStore(
		&models.Account{AccountID: "acc-1", Name: "Current", CreatedAt: time.Now()},
		&models.Account{AccountID: "acc-2", Name: "Savings", CreatedAt: time.Now()},
	)
	svc := NewAccountService(store, &stubTxCounter{}, "Current")

	if err := svc.DeleteAccount(helpers.TestCtx(), "user", "acc-2"); err != nil {
		t.Fatalf("DeleteAccount error: %v", err)
	}
	if _, ok := store.accounts["acc-2"]; ok {
		t.Fatal("account still present")
	}
}

func TestDeleteMissingAccount(t *testing.T) {
	svc := NewAccountService(newStubAccountStore(), &stubTxCounter{}, "Current")
	err := svc.DeleteAccount(helpers.TestCtx(), "user", "nope")
	var nf *errs.AccountNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected AccountNotFoundError, got %v", err)
	}
}
