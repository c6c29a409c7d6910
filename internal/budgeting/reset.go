package budgeting

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"gorm.io/gorm"
)

// Rollover applies the reset policy to a budget and reports if the budget changed.
//
// Budgets without a due day reset when the calendar month changes.
// Budgets with a due day reset on every due date instead, the start of
// the period then is the last due date that has passed.
func Rollover(b *models.Budget, now time.Time) bool {
	now = now.UTC()

	if b.DueDay == 0 {
		key := types.Key(now)
		if b.MonthKey == key && b.DueDate == nil {
			return false
		}

		b.MonthKey = key
		b.LastExpenseReset = types.MonthOf(now).Time()
		b.DueDate = nil
		return true
	}

	changed := false
	if b.DueDate == nil {
		created := b.CreatedAt
		if created.IsZero() {
			created = now
		}

		due := models.NextDueDate(b.DueDay, created)
		b.DueDate = &due
		changed = true
	}

	if now.Before(*b.DueDate) {
		return changed
	}

	last := *b.DueDate
	next := last.AddDate(0, 1, 0)
	for !now.Before(next) {
		last = next
		next = next.AddDate(0, 1, 0)
	}

	b.LastExpenseReset = last
	b.DueDate = &next
	b.MonthKey = types.Key(last)
	return true
}

// ApplyResets applies the reset policy to all budgets of a user and
// persists the budgets that changed. All budgets are returned.
func ApplyResets(db *gorm.DB, userID uuid.UUID, now time.Time) ([]models.Budget, error) {
	var budgets []models.Budget
	err := db.Where(&models.Budget{UserID: userID}).Order("created_at, id").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	for i := range budgets {
		if !Rollover(&budgets[i], now) {
			continue
		}

		err := persistPeriod(db, budgets[i])
		if err != nil {
			return nil, err
		}
	}

	return budgets, nil
}

// Reset starts a new spend window for the budget at the given time.
func Reset(db *gorm.DB, b *models.Budget, now time.Time) error {
	b.LastExpenseReset = now.UTC()
	b.MonthKey = types.Key(b.LastExpenseReset)
	return persistPeriod(db, *b)
}

// persistPeriod writes the period fields only. Hooks are skipped, the
// budget has been validated when it was saved.
func persistPeriod(db *gorm.DB, b models.Budget) error {
	return db.Model(&models.Budget{DefaultModel: models.DefaultModel{ID: b.ID}}).UpdateColumns(map[string]any{
		"month_key":          b.MonthKey,
		"last_expense_reset": b.LastExpenseReset,
		"due_date":           b.DueDate,
	}).Error
}
