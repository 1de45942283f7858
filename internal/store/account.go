package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/models"
)

type accountStore struct {
	client *firestore.Client
}

func NewAccountStore(client *firestore.Client) *accountStore {
	return &accountStore{client: client}
}

func (s *accountStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("accounts")
}

func (s *accountStore) Create(ctx context.Context, uid string, a *models.Account) error {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	_, err := s.collection(uid).Doc(a.AccountID).Create(ctx, a)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("account already exists")
		}
		return errs.NewDatabaseError("create", "failed to create account", err)
	}
	return nil
}

func (s *accountStore) Get(ctx context.Context, uid, accountID string) (*models.Account, error) {
	doc, err := s.collection(uid).Doc(accountID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewAccountNotFoundError(accountID)
		}
		return nil, errs.NewDatabaseError("read", "failed to get account", err)
	}
	var a models.Account
	if err := doc.DataTo(&a); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse account data", err)
	}
	return &a, nil
}

// GetByName resolves an account through its per-owner unique display name.
// Used only when posting a new transaction; every later adjustment goes
// through the recorded accountId.
func (s *accountStore) GetByName(ctx context.Context, uid, name string) (*models.Account, error) {
	docs, err := s.collection(uid).Where("name", "==", name).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to query account by name", err)
	}
	if len(docs) == 0 {
		return nil, errs.NewAccountNotFoundError(name)
	}
	var a models.Account
	if err := docs[0].DataTo(&a); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse account data", err)
	}
	return &a, nil
}

func (s *accountStore) List(ctx context.Context, uid string) ([]*models.Account, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list accounts", err)
	}
	accounts := make([]*models.Account, 0, len(docs))
	for _, d := range docs {
		var a models.Account
		if err := d.DataTo(&a); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse account data", err)
		}
		accounts = append(accounts, &a)
	}
	return accounts, nil
}

func (s *accountStore) Count(ctx context.Context, uid string) (int, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return 0, errs.NewDatabaseError("read", "failed to count accounts", err)
	}
	return len(docs), nil
}

func (s *accountStore) Delete(ctx context.Context, uid, accountID string) error {
	_, err := s.collection(uid).Doc(accountID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete account", err)
	}
	return nil
}

// AdjustBalance applies a signed delta to the stored balance with a
// server-side increment. Concurrent adjustments never lose updates; the
// balance is never read, recomputed and written back by the client.
func (s *accountStore) AdjustBalance(ctx context.Context, uid, accountID string, delta float64) error {
	_, err := s.collection(uid).Doc(accountID).Update(ctx, []firestore.Update{
		{Path: "balance", Value: firestore.Increment(delta)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewAccountNotFoundError(accountID)
		}
		return errs.NewDatabaseError("update", "failed to adjust account balance", err)
	}
	return nil
}
