package models

import "time"

type BudgetPeriod string

const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
)

// Budget is a spending limit for a category, evaluated against expense
// transactions from the period start through now. Budgets are never
// mutated by transaction activity.
type Budget struct {
	BudgetID    string       `firestore:"budgetId" json:"budgetId"`
	Category    string       `firestore:"category" json:"category"`
	LimitAmount float64      `firestore:"limitAmount" json:"limitAmount"`
	Period      BudgetPeriod `firestore:"period" json:"period"`
	CreatedAt   time.Time    `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `firestore:"updatedAt" json:"updatedAt"`
}
