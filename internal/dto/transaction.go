package dto

import (
	"time"

	"github.com/AdeenMir/SpendingTracker/internal/models"
)

// PostTransactionRequest creates a ledger entry against the named account.
type PostTransactionRequest struct {
	AccountName   string               `json:"accountName"`
	Kind          models.TransactionKind `json:"kind"`
	Amount        float64              `json:"amount"`
	Category      string               `json:"category,omitempty"`
	Person        string               `json:"person,omitempty"`
	LoanDirection models.LoanDirection `json:"loanType,omitempty"`
	Note          string               `json:"note,omitempty"`
	PostedAt      *time.Time           `json:"postedAt,omitempty"`
}

// EditTransactionRequest changes the amount and the category-or-person
// label. Kind and account are immutable after posting.
type EditTransactionRequest struct {
	Amount float64 `json:"amount"`
	Label  string  `json:"label"`
}

// TransactionQuery is the filter set the store supports: equality on kind,
// category and account, a postedAt range, ordered by postedAt descending.
type TransactionQuery struct {
	Kind       *models.TransactionKind
	Category   *string
	AccountID  *string
	PostedFrom *time.Time
	PostedTo   *time.Time
	Limit      int
}
