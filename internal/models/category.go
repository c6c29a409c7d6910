package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryKind string

const (
	KindIncome  CategoryKind = "INCOME"
	KindExpense CategoryKind = "EXPENSE"
)

// Category groups transactions, e.g. "Groceries" or "Salary".
type Category struct {
	DefaultModel
	UserID   uuid.UUID    `json:"-" gorm:"uniqueIndex:category_user_name"`
	User     User         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name     string       `json:"name" gorm:"uniqueIndex:category_user_name" example:"Groceries"` // Name of the category, unique per user
	Kind     CategoryKind `json:"kind" example:"EXPENSE"`                                         // INCOME or EXPENSE
	Note     string       `json:"note" example:"Supermarket and bakery"`                          // A note
	Archived bool         `json:"archived" example:"false"`                                       // Is the category hidden?
}

// Validate checks the category for consistency. Empty kinds default to EXPENSE.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.Kind == "" {
		c.Kind = KindExpense
	}

	if c.Kind != KindIncome && c.Kind != KindExpense {
		return ErrCategoryKindInvalid
	}

	return nil
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return c.Validate()
}

// AfterDelete cleans up alerts of budget groups whose budgets were deleted
// together with the category.
func (c *Category) AfterDelete(tx *gorm.DB) error {
	return deleteOrphanedGroupAlerts(tx, c.UserID)
}
