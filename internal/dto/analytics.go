package dto

import (
	"time"

	"github.com/AdeenMir/SpendingTracker/internal/models"
)

type SummaryArgs struct {
	AccountID *string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// SummaryResult is the income/expense rollup over a transaction set.
// Loans are excluded; ByCategory covers expenses only.
type SummaryResult struct {
	TotalIncome  float64            `json:"totalIncome"`
	TotalExpense float64            `json:"totalExpense"`
	NetBalance   float64            `json:"netBalance"`
	ByCategory   map[string]float64 `json:"byCategory"`
}

type OverviewResult struct {
	TotalBalance float64           `json:"totalBalance"`
	Accounts     []*models.Account `json:"accounts"`
	ThisMonth    SummaryResult     `json:"thisMonth"`
}
