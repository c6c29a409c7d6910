package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Export contains all data of a user.
type Export struct {
	User          User           `json:"user"`
	Categories    []Category     `json:"categories"`
	CategoryRules []CategoryRule `json:"categoryRules"`
	Budgets       []Budget       `json:"budgets"`
	Transactions  []Transaction  `json:"transactions"`
	Notifications []Notification `json:"notifications"`
	Badges        []Badge        `json:"badges"`
}

// ExportUser collects all resources of a user.
func ExportUser(db *gorm.DB, userID uuid.UUID) (Export, error) {
	var export Export

	err := db.First(&export.User, userID).Error
	if err != nil {
		return Export{}, err
	}

	queries := []struct {
		model any
		dest  any
		order string
	}{
		{&Category{}, &export.Categories, "name"},
		{&CategoryRule{}, &export.CategoryRules, "priority, created_at"},
		{&Budget{}, &export.Budgets, "created_at"},
		{&Transaction{}, &export.Transactions, "date, created_at"},
		{&Notification{}, &export.Notifications, "created_at"},
		{&Badge{}, &export.Badges, "unlocked_at"},
	}

	for _, q := range queries {
		err := db.Model(q.model).Where("user_id = ?", userID).Order(q.order).Find(q.dest).Error
		if err != nil {
			return Export{}, err
		}
	}

	return export, nil
}

// DeleteUserData deletes all resources of a user. The user and its
// sessions are kept.
func DeleteUserData(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Order matters, transactions and notifications reference budgets
		// and categories
		for _, model := range []any{&Notification{}, &Badge{}, &Transaction{}, &Budget{}, &CategoryRule{}, &Category{}} {
			err := tx.Where("user_id = ?", userID).Delete(model).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
