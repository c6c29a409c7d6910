package budgeting

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	"gorm.io/gorm"
)

// Metric is a counted property of the data of a user.
type Metric string

const (
	MetricExpenses   Metric = "expenses"
	MetricIncome     Metric = "income"
	MetricBudgets    Metric = "budgets"
	MetricCategories Metric = "categories"
)

// Definition describes a badge that unlocks when a metric reaches the threshold.
type Definition struct {
	Key         string `json:"key" example:"expense-tracker"`
	Name        string `json:"name" example:"Expense Tracker"`
	Description string `json:"description" example:"Record 10 expenses"`
	Metric      Metric `json:"metric" example:"expenses"`
	Threshold   int64  `json:"threshold" example:"10"`
}

// Catalogue contains all badges.
var Catalogue = []Definition{
	{"first-expense", "First Expense", "Record your first expense", MetricExpenses, 1},
	{"expense-tracker", "Expense Tracker", "Record 10 expenses", MetricExpenses, 10},
	{"expense-master", "Expense Master", "Record 50 expenses", MetricExpenses, 50},
	{"expense-legend", "Expense Legend", "Record 100 expenses", MetricExpenses, 100},
	{"first-income", "First Income", "Record your first income", MetricIncome, 1},
	{"income-stream", "Income Stream", "Record 10 incomes", MetricIncome, 10},
	{"first-budget", "First Budget", "Create your first budget", MetricBudgets, 1},
	{"budget-planner", "Budget Planner", "Create 5 budgets", MetricBudgets, 5},
	{"categorizer", "Categorizer", "Create 5 categories", MetricCategories, 5},
}

// Counts maps each metric to its current value.
type Counts map[Metric]int64

// BadgeProgress is the progress of a user towards a badge.
type BadgeProgress struct {
	Definition
	Count      int64      `json:"count" example:"4"`
	Unlocked   bool       `json:"unlocked" example:"false"`
	UnlockedAt *time.Time `json:"unlockedAt" example:"2024-03-12T08:30:00Z"`
}

// CountMetrics counts all metrics for a user.
func CountMetrics(db *gorm.DB, userID uuid.UUID) (Counts, error) {
	counts := Counts{}

	queries := []struct {
		metric Metric
		query  *gorm.DB
	}{
		{MetricExpenses, db.Model(&models.Transaction{}).Where(&models.Transaction{UserID: userID, Type: models.TransactionExpense})},
		{MetricIncome, db.Model(&models.Transaction{}).Where(&models.Transaction{UserID: userID, Type: models.TransactionIncome})},
		{MetricBudgets, db.Model(&models.Budget{}).Where(&models.Budget{UserID: userID})},
		{MetricCategories, db.Model(&models.Category{}).Where(&models.Category{UserID: userID})},
	}

	for _, q := range queries {
		var count int64
		err := q.query.Count(&count).Error
		if err != nil {
			return nil, err
		}
		counts[q.metric] = count
	}

	return counts, nil
}

// Progress lists every badge of the catalogue with the current count.
//
// Badges stay unlocked once they have been unlocked, even when the count
// drops below the threshold later.
func Progress(counts Counts, unlocked []models.Badge) []BadgeProgress {
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, b := range unlocked {
		unlockedAt[b.Key] = b.UnlockedAt
	}

	progress := make([]BadgeProgress, 0, len(Catalogue))
	for _, d := range Catalogue {
		p := BadgeProgress{
			Definition: d,
			Count:      counts[d.Metric],
		}

		if at, ok := unlockedAt[d.Key]; ok {
			at = at.UTC()
			p.Unlocked = true
			p.UnlockedAt = &at
		} else {
			p.Unlocked = p.Count >= d.Threshold
		}

		progress = append(progress, p)
	}

	return progress
}

// EvaluateBadges unlocks all badges the user reached and returns the
// newly unlocked ones.
func EvaluateBadges(db *gorm.DB, userID uuid.UUID, now time.Time) ([]models.Badge, error) {
	counts, err := CountMetrics(db, userID)
	if err != nil {
		return nil, err
	}

	var existing []models.Badge
	err = db.Where(&models.Badge{UserID: userID}).Find(&existing).Error
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(existing))
	for _, b := range existing {
		have[b.Key] = true
	}

	unlocked := []models.Badge{}
	for _, d := range Catalogue {
		if have[d.Key] || counts[d.Metric] < d.Threshold {
			continue
		}

		badge := models.Badge{UserID: userID, Key: d.Key, UnlockedAt: now.UTC()}
		err := db.Create(&badge).Error
		if errors.Is(err, models.ErrBadgeAlreadyUnlocked) {
			continue
		} else if err != nil {
			return unlocked, err
		}

		unlocked = append(unlocked, badge)
	}

	return unlocked, nil
}
