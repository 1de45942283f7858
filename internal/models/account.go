package models

import (
	"time"
)

// Account holds a materialized running balance: every transaction write
// that affects it must carry the compensating adjustment, so balance reads
// stay O(1).
type Account struct {
	AccountID string    `firestore:"accountId" json:"accountId"`
	Name      string    `firestore:"name" json:"name"` // unique per owner
	Balance   float64   `firestore:"balance" json:"balance"`
	ColorTag  string    `firestore:"colorTag" json:"colorTag,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
