package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

func (s *transactionStore) Create(ctx context.Context, uid string, t *models.Transaction) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := s.collection(uid).Doc(t.TransactionID).Create(ctx, t)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create transaction", err)
	}
	return nil
}

func (s *transactionStore) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewTransactionNotFoundError(transactionID)
		}
		return nil, errs.NewDatabaseError("read", "failed to get transaction", err)
	}
	var t models.Transaction
	if err := doc.DataTo(&t); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	return &t, nil
}

func (s *transactionStore) Update(ctx context.Context, uid string, t *models.Transaction) error {
	t.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(t.TransactionID).Set(ctx, t)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update transaction", err)
	}
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	_, err := s.collection(uid).Doc(transactionID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete transaction", err)
	}
	return nil
}

// CountByAccount reports how many transactions still reference an account.
// Account deletion is blocked while this is non-zero.
func (s *transactionStore) CountByAccount(ctx context.Context, uid, accountID string) (int, error) {
	docs, err := s.collection(uid).Where("accountId", "==", accountID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errs.NewDatabaseError("read", "failed to count transactions by account", err)
	}
	return len(docs), nil
}

// Query streams matching transactions to handle, newest first. Filters are
// equality on kind, category and accountId plus a postedAt range.
func (s *transactionStore) Query(ctx context.Context, uid string, q dto.TransactionQuery, handle func(*models.Transaction) error) error {
	query := s.collection(uid).Query
	if q.Kind != nil {
		query = query.Where("kind", "==", string(*q.Kind))
	}
	if q.Category != nil {
		query = query.Where("category", "==", *q.Category)
	}
	if q.AccountID != nil {
		query = query.Where("accountId", "==", *q.AccountID)
	}
	if q.PostedFrom != nil {
		query = query.Where("postedAt", ">=", *q.PostedFrom)
	}
	if q.PostedTo != nil {
		query = query.Where("postedAt", "<=", *q.PostedTo)
	}
	query = query.OrderBy("postedAt", firestore.Desc)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	it := query.Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return errs.NewDatabaseError("read", "failed to query transactions", err)
		}
		var t models.Transaction
		if err := doc.DataTo(&t); err != nil {
			return errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		if err := handle(&t); err != nil {
			return err
		}
	}
}
