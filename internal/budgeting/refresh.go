package budgeting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/notify"
	"gorm.io/gorm"
)

// expenses loads all expenses of a user in the window of the budgets.
func expenses(db *gorm.DB, userID uuid.UUID, budgets []models.Budget) ([]models.Transaction, error) {
	if len(budgets) == 0 {
		return []models.Transaction{}, nil
	}

	start, end := Window(budgets)

	var transactions []models.Transaction
	err := db.
		Where(&models.Transaction{UserID: userID, Type: models.TransactionExpense}).
		Where("date >= ? AND date < ?", start, end).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Statuses applies the reset policy to the budgets of a user and returns
// their status. Budget groups are reported once.
func Statuses(db *gorm.DB, userID uuid.UUID, now time.Time) ([]SpendStatus, error) {
	budgets, err := ApplyResets(db, userID, now)
	if err != nil {
		return nil, err
	}

	transactions, err := expenses(db, userID, budgets)
	if err != nil {
		return nil, err
	}

	groups := make(map[uuid.UUID][]models.Budget)
	for _, b := range budgets {
		if b.GroupID != nil {
			groups[*b.GroupID] = append(groups[*b.GroupID], b)
		}
	}

	statuses := []SpendStatus{}
	seen := make(map[uuid.UUID]bool)
	for _, b := range budgets {
		if b.GroupID != nil {
			if seen[*b.GroupID] {
				continue
			}
			seen[*b.GroupID] = true
		}

		statuses = append(statuses, Status(b, groups[groupKey(b)], transactions))
	}

	return statuses, nil
}

// BudgetStatus applies the reset policy and returns the status of a single
// budget, or of its group.
func BudgetStatus(db *gorm.DB, budget models.Budget, now time.Time) (SpendStatus, error) {
	budgets, err := ApplyResets(db, budget.UserID, now)
	if err != nil {
		return SpendStatus{}, err
	}

	var members []models.Budget
	for _, b := range budgets {
		if b.ID == budget.ID || (budget.GroupID != nil && groupKey(b) == *budget.GroupID) {
			members = append(members, b)
		}
	}

	if len(members) == 0 {
		members = []models.Budget{budget}
	}

	transactions, err := expenses(db, budget.UserID, members)
	if err != nil {
		return SpendStatus{}, err
	}

	return Status(members[0], members, transactions), nil
}

// Refresh applies the reset policy to all budgets of a user and
// creates notifications for all thresholds the budgets crossed.
func Refresh(ctx context.Context, db *gorm.DB, mailer notify.Mailer, user models.User, now time.Time) ([]models.Notification, error) {
	statuses, err := Statuses(db, user.ID, now)
	if err != nil {
		return nil, err
	}

	return CheckAlerts(ctx, db, mailer, user, statuses)
}

func groupKey(b models.Budget) uuid.UUID {
	if b.GroupID == nil {
		return uuid.Nil
	}
	return *b.GroupID
}
