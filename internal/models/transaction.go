package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction is an income or an expense of a user.
//
// A transaction without BudgetID and GroupID is unassigned. Unassigned
// expenses count towards the budgets for their category.
type Transaction struct {
	DefaultModel
	UserID     uuid.UUID       `json:"-" gorm:"index"`
	User       User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Type       TransactionType `json:"type" example:"EXPENSE"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.99"`
	Date       time.Time       `json:"date" gorm:"index" example:"2024-03-12T08:30:00Z"`
	CategoryID *uuid.UUID      `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`
	Category   Category        `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Note       string          `json:"note" example:"Bakery"`
	BudgetID   *uuid.UUID      `json:"budgetId" example:"e2d6e5c1-7ab1-43b8-8f46-f2e1c6a4b1a0"`
	Budget     Budget          `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	GroupID    *uuid.UUID      `json:"groupId" gorm:"index" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
}

// Assigned reports if the transaction is assigned to a budget or a group.
func (t Transaction) Assigned() bool {
	return t.BudgetID != nil || t.GroupID != nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - verifies amount, type and that referenced resources belong to the user
//   - links the transaction to the group of its budget
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	t.Note = strings.TrimSpace(t.Note)
	t.CategoryID = nilIfEmpty(t.CategoryID)
	t.BudgetID = nilIfEmpty(t.BudgetID)
	t.GroupID = nilIfEmpty(t.GroupID)

	if t.Date.IsZero() {
		t.Date = tx.NowFunc()
	}
	t.Date = t.Date.In(time.UTC)

	if t.Type == "" {
		t.Type = TransactionExpense
	}

	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Type == TransactionIncome && t.Assigned() {
		return ErrTransactionIncomeAssigned
	}

	if t.CategoryID != nil {
		err = tx.Where(&Category{DefaultModel: DefaultModel{ID: *t.CategoryID}, UserID: t.UserID}).First(&Category{}).Error
		if err != nil {
			return err
		}
	}

	return t.LinkBudget(tx)
}

// BeforeCreate applies the category rules of the user to transactions
// that do not have a category.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.CategoryID != nil || t.Note == "" {
		return nil
	}

	var rules []CategoryRule
	err := tx.Where(&CategoryRule{UserID: t.UserID}).Order("priority, created_at").Find(&rules).Error
	if err != nil {
		return err
	}

	for _, rule := range rules {
		if rule.Matches(t.Note) {
			id := rule.CategoryID
			t.CategoryID = &id
			break
		}
	}

	return nil
}

// LinkBudget verifies the budget or group the transaction is assigned to.
//
// When a budget is set, the GroupID is copied from the budget so that
// transactions assigned to a group member count for the whole group.
func (t *Transaction) LinkBudget(db *gorm.DB) error {
	if t.BudgetID != nil {
		var budget Budget
		err := db.Where(&Budget{DefaultModel: DefaultModel{ID: *t.BudgetID}, UserID: t.UserID}).First(&budget).Error
		if err != nil {
			return err
		}

		t.GroupID = budget.GroupID
		return nil
	}

	if t.GroupID != nil {
		return db.Where(&Budget{UserID: t.UserID, GroupID: t.GroupID}).First(&Budget{}).Error
	}

	return nil
}

// nilIfEmpty ensures that optional references are nil and not a
// pointer to the Nil UUID.
func nilIfEmpty(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}
