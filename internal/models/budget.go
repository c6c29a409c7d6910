package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetType string

const (
	BudgetSingle BudgetType = "SINGLE"
	BudgetMulti  BudgetType = "MULTI"
)

// MaxDueDay is the highest supported due day. Every month has this day.
const MaxDueDay = 28

// Budget is a spending cap for one category.
//
// MULTI budgets share a GroupID. The cap of the group is the sum of
// the amounts of all its members.
type Budget struct {
	DefaultModel
	UserID           uuid.UUID       `json:"-" gorm:"index"`
	User             User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name             string          `json:"name" example:"Food"`
	Type             BudgetType      `json:"type" example:"SINGLE"`
	GroupID          *uuid.UUID      `json:"groupId" gorm:"uniqueIndex:budget_group_category" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	CategoryID       uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_group_category" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`
	Category         Category        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"250"`
	MonthKey         string          `json:"monthKey" example:"2024-03"`
	LastExpenseReset time.Time       `json:"lastExpenseReset" example:"2024-03-01T00:00:00Z"`
	DueDay           int             `json:"dueDay" example:"0"`
	DueDate          *time.Time      `json:"dueDate" example:"2024-03-15T00:00:00Z"`
	Note             string          `json:"note" example:"Groceries and takeout"`
	Archived         bool            `json:"archived" example:"false"`
}

// NextDueDate returns the first occurrence of the due day strictly after t.
func NextDueDate(day int, t time.Time) time.Time {
	t = t.UTC()
	due := time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, time.UTC)
	if !due.After(t) {
		due = due.AddDate(0, 1, 0)
	}
	return due
}

// PeriodEnd returns the end of the current spend window, exclusive.
func (b Budget) PeriodEnd() time.Time {
	if b.DueDay > 0 && b.DueDate != nil {
		return b.DueDate.UTC()
	}

	month, err := types.ParseMonth(b.MonthKey)
	if err != nil {
		return types.MonthOf(b.LastExpenseReset).End()
	}
	return month.End()
}

// Members returns all budgets of the group the budget belongs to.
// For budgets without a group, only the budget itself is returned.
func (b Budget) Members(db *gorm.DB) ([]Budget, error) {
	if b.GroupID == nil {
		return []Budget{b}, nil
	}

	var members []Budget
	err := db.Where(&Budget{UserID: b.UserID, GroupID: b.GroupID}).Order("created_at, id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Validate checks the budget for consistency that does not need the database.
func (b *Budget) Validate() error {
	if b.Type == "" {
		b.Type = BudgetSingle
	}

	if b.Type != BudgetSingle && b.Type != BudgetMulti {
		return ErrBudgetTypeInvalid
	}

	if b.Type == BudgetSingle && b.GroupID != nil {
		return ErrBudgetSingleWithGroup
	}

	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	if b.DueDay < 0 || b.DueDay > MaxDueDay {
		return ErrBudgetDueDayInvalid
	}

	return nil
}

// BeforeSave validates the budget and initializes the current period.
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	if b.GroupID != nil && *b.GroupID == uuid.Nil {
		b.GroupID = nil
	}

	if err := b.Validate(); err != nil {
		return err
	}

	var category Category
	err := tx.Where(&Category{DefaultModel: DefaultModel{ID: b.CategoryID}, UserID: b.UserID}).First(&category).Error
	if err != nil {
		return err
	}

	if category.Kind != KindExpense {
		return ErrBudgetCategoryNotExpense
	}

	now := tx.NowFunc()
	if b.DueDay == 0 {
		b.DueDate = nil
	} else if b.DueDate == nil {
		due := NextDueDate(b.DueDay, now)
		b.DueDate = &due
	}

	if b.LastExpenseReset.IsZero() {
		b.LastExpenseReset = types.MonthOf(now).Time()
		if b.DueDate != nil {
			b.LastExpenseReset = b.DueDate.AddDate(0, -1, 0)
		}
	}
	b.LastExpenseReset = b.LastExpenseReset.UTC()
	b.MonthKey = types.Key(b.LastExpenseReset)

	return nil
}

// BeforeCreate generates the group for new MULTI budgets and verifies
// that a budget joining a group matches the due day of the group.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	if b.Type != BudgetMulti {
		return nil
	}

	if b.GroupID == nil {
		id := uuid.New()
		b.GroupID = &id
		return nil
	}

	var member Budget
	err := tx.Where(&Budget{UserID: b.UserID, GroupID: b.GroupID}).Limit(1).Find(&member).Error
	if err != nil {
		return err
	}

	if member.ID != uuid.Nil && member.DueDay != b.DueDay {
		return ErrBudgetGroupDueDayMismatch
	}

	return nil
}

// BeforeUpdate enforces that type and group are immutable and
// recomputes the due date when the due day changes.
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	var stored Budget
	err := tx.First(&stored, b.ID).Error
	if err != nil {
		return err
	}

	if stored.Type != b.Type || !sameGroup(stored.GroupID, b.GroupID) {
		return ErrBudgetTypeImmutable
	}

	if stored.DueDay != b.DueDay && b.DueDay > 0 {
		due := NextDueDate(b.DueDay, tx.NowFunc())
		b.DueDate = &due
	}

	return nil
}

// AfterUpdate propagates the due day to all other members of the group.
func (b *Budget) AfterUpdate(tx *gorm.DB) error {
	if b.GroupID == nil {
		return nil
	}

	return tx.Model(&Budget{}).
		Where("group_id = ? AND id != ?", b.GroupID, b.ID).
		UpdateColumns(map[string]any{"due_day": b.DueDay, "due_date": b.DueDate}).Error
}

// AfterDelete removes the alerts of the group when its last budget is gone.
func (b *Budget) AfterDelete(tx *gorm.DB) error {
	if b.GroupID == nil {
		return nil
	}
	return deleteOrphanedGroupAlerts(tx, b.UserID)
}

func sameGroup(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
