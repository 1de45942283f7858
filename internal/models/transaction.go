package models

import (
	"time"
)

type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
	KindLoan    TransactionKind = "loan"
)

type LoanDirection string

const (
	LoanLent     LoanDirection = "lent"     // owner gave money out
	LoanBorrowed LoanDirection = "borrowed" // owner took money in
)

type LoanStatus string

const (
	LoanPending LoanStatus = "pending"
	LoanSettled LoanStatus = "settled"
)

// Transaction is a single ledger entry. Exactly one of Category (income,
// expense) or Person (loan) is populated; LoanDirection and Status are set
// only when Kind is loan. The account join key is the immutable AccountID;
// AccountName is denormalized for display and never used for lookups.
type Transaction struct {
	TransactionID string          `firestore:"transactionId" json:"transactionId"`
	AccountID     string          `firestore:"accountId" json:"accountId"`
	AccountName   string          `firestore:"accountName" json:"accountName"`
	Kind          TransactionKind `firestore:"kind" json:"kind"`
	Amount        float64         `firestore:"amount" json:"amount"` // always positive
	Category      string          `firestore:"category,omitempty" json:"category,omitempty"`
	Person        string          `firestore:"person,omitempty" json:"person,omitempty"`
	LoanDirection LoanDirection   `firestore:"loanType,omitempty" json:"loanType,omitempty"`
	Status        LoanStatus      `firestore:"status,omitempty" json:"status,omitempty"`
	Note          string          `firestore:"note,omitempty" json:"note,omitempty"`
	PostedAt      time.Time       `firestore:"postedAt" json:"postedAt"`
	CreatedAt     time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `firestore:"updatedAt" json:"updatedAt"`
}

// Label returns whichever of category or person is populated.
func (t *Transaction) Label() string {
	if t.Kind == KindLoan {
		return t.Person
	}
	return t.Category
}
