// Package budgeting implements the spend aggregation, the reset policy,
// alerts and badges for budgets.
package budgeting

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	WarningPercent  = decimal.NewFromInt(80)
	ExceededPercent = decimal.NewFromInt(100)
)

// SpendStatus is the state of a budget, or of a budget group, in its current period.
type SpendStatus struct {
	BudgetID    uuid.UUID         `json:"budgetId" example:"e2d6e5c1-7ab1-43b8-8f46-f2e1c6a4b1a0"` // The budget, for groups the first member
	GroupID     *uuid.UUID        `json:"groupId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`  // Set for budget groups
	Name        string            `json:"name" example:"Food"`
	Members     []uuid.UUID       `json:"members"`                                    // All budgets the status is calculated for
	Limit       decimal.Decimal   `json:"limit" example:"250"`                        // Cap of the budget, sum of all member amounts for groups
	Spent       decimal.Decimal   `json:"spent" example:"200"`                        // Expenses in the current period
	Remaining   decimal.Decimal   `json:"remaining" example:"50"`                     // Limit minus spent, negative when exceeded
	Percent     decimal.Decimal   `json:"percent" example:"80"`                       // Spent in percent of the limit
	Level       models.AlertLevel `json:"level" example:"WARNING"`                    // OK, WARNING or EXCEEDED
	PeriodStart time.Time         `json:"periodStart" example:"2024-03-01T00:00:00Z"` // Start of the current period
	PeriodEnd   time.Time         `json:"periodEnd" example:"2024-04-01T00:00:00Z"`   // End of the current period, exclusive
	Archived    bool              `json:"archived" example:"false"`                   // Archived budgets never alert
}

// Window returns the spend window of a group of budgets: from the
// earliest reset to the latest end of period.
func Window(members []models.Budget) (start, end time.Time) {
	for i, b := range members {
		if i == 0 || b.LastExpenseReset.Before(start) {
			start = b.LastExpenseReset
		}

		if e := b.PeriodEnd(); i == 0 || e.After(end) {
			end = e
		}
	}

	return start.UTC(), end.UTC()
}

// scope returns the budgets a budget is evaluated for.
func scope(budget models.Budget, members []models.Budget) []models.Budget {
	if budget.GroupID == nil || len(members) == 0 {
		return []models.Budget{budget}
	}
	return members
}

// Applies reports if a transaction counts as spend for the budgets.
//
// Assigned transactions count for the budget or group they are assigned to.
// Unassigned transactions count for every budget of their category.
func Applies(members []models.Budget, t models.Transaction) bool {
	if t.Type != models.TransactionExpense {
		return false
	}

	for _, b := range members {
		if t.Assigned() {
			if t.BudgetID != nil && *t.BudgetID == b.ID {
				return true
			}

			if t.GroupID != nil && b.GroupID != nil && *t.GroupID == *b.GroupID {
				return true
			}

			continue
		}

		if t.CategoryID != nil && *t.CategoryID == b.CategoryID {
			return true
		}
	}

	return false
}

// Spent returns the sum of all expenses that count for the budget in
// its current period. For budgets in a group, the spend of the whole
// group is returned. Each transaction is counted at most once.
func Spent(budget models.Budget, members []models.Budget, transactions []models.Transaction) decimal.Decimal {
	members = scope(budget, members)
	start, end := Window(members)

	spent := decimal.Zero
	for _, t := range transactions {
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}

		if Applies(members, t) {
			spent = spent.Add(t.Amount)
		}
	}

	return spent
}

// Level returns the alert level for the amount spent of a limit.
//
// Thresholds are compared on the exact amounts, not on the rounded percentage.
func Level(spent, limit decimal.Decimal) models.AlertLevel {
	if !limit.IsPositive() {
		if spent.IsPositive() {
			return models.AlertExceeded
		}
		return models.AlertOK
	}

	hundred := decimal.NewFromInt(100)
	switch {
	case spent.Mul(hundred).GreaterThanOrEqual(limit.Mul(ExceededPercent)):
		return models.AlertExceeded
	case spent.Mul(hundred).GreaterThanOrEqual(limit.Mul(WarningPercent)):
		return models.AlertWarning
	default:
		return models.AlertOK
	}
}

// Status returns the status of the budget, or of its group.
func Status(budget models.Budget, members []models.Budget, transactions []models.Transaction) SpendStatus {
	members = scope(budget, members)
	start, end := Window(members)

	status := SpendStatus{
		BudgetID:    members[0].ID,
		GroupID:     budget.GroupID,
		Name:        members[0].Name,
		Limit:       decimal.Zero,
		Spent:       Spent(budget, members, transactions),
		PeriodStart: start,
		PeriodEnd:   end,
		Archived:    true,
	}

	for _, b := range members {
		status.Members = append(status.Members, b.ID)
		status.Limit = status.Limit.Add(b.Amount)
		status.Archived = status.Archived && b.Archived
	}

	status.Remaining = status.Limit.Sub(status.Spent)

	// Percent is for display only
	switch {
	case status.Limit.IsPositive():
		status.Percent = status.Spent.Div(status.Limit).Mul(decimal.NewFromInt(100)).Round(2)
	case status.Spent.IsPositive():
		status.Percent = ExceededPercent
	default:
		status.Percent = decimal.Zero
	}

	status.Level = Level(status.Spent, status.Limit)
	return status
}
