package v1

import (
	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/budgeting"
	"github.com/shopspring/decimal"
)

// CategorySpend is the sum of expenses of one category in a month
type CategorySpend struct {
	CategoryID *uuid.UUID      `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // ID of the category. null for expenses without category
	Name       string          `json:"name" example:"Groceries"`                                  // Name of the category
	Amount     decimal.Decimal `json:"amount" example:"182.45"`                                   // Sum of all expenses
}

type DashboardLinks struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?fromDate=2024-03-01&untilDate=2024-03-31"` // Transactions of the month
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`                                                    // Budgets of the user
}

type Dashboard struct {
	Month               string                  `json:"month" example:"2024-03"`         // The month, in YYYY-MM format
	Income              decimal.Decimal         `json:"income" example:"2400"`           // Sum of income in the month
	Expense             decimal.Decimal         `json:"expense" example:"1315.28"`       // Sum of expenses in the month
	Balance             decimal.Decimal         `json:"balance" example:"1084.72"`       // Income minus expenses
	Categories          []CategorySpend         `json:"categories"`                      // Expenses per category, highest first
	Budgets             []budgeting.SpendStatus `json:"budgets"`                         // Current status of all budgets. Budget groups are listed once
	UnreadNotifications int64                   `json:"unreadNotifications" example:"2"` // Notifications that are neither read nor dismissed
	Links               DashboardLinks          `json:"links"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                    // Data for the dashboard
	Error *string    `json:"error" example:"the month must be in the format YYYY-MM"` // The error, if any occurred
}
