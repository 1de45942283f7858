package dto

import "github.com/AdeenMir/SpendingTracker/internal/models"

type CreateBudgetRequest struct {
	Category    string              `json:"category"`
	LimitAmount float64             `json:"limitAmount"`
	Period      models.BudgetPeriod `json:"period"`
}

type UpdateBudgetRequest struct {
	LimitAmount float64             `json:"limitAmount"`
	Period      models.BudgetPeriod `json:"period"`
}

// BudgetStatus is the caller-facing evaluation of a budget: amount spent
// in the current period against the limit.
type BudgetStatus struct {
	BudgetID    string              `json:"budgetId"`
	Category    string              `json:"category"`
	Period      models.BudgetPeriod `json:"period"`
	LimitAmount float64             `json:"limitAmount"`
	Spent       float64             `json:"spent"`
	Percent     float64             `json:"percent"` // spent/limit, 0 when limit is 0
	OverBudget  bool                `json:"overBudget"`
}
