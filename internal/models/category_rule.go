package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule sets the category of new transactions without a category
// when their note matches the glob pattern.
type CategoryRule struct {
	DefaultModel
	UserID     uuid.UUID `json:"-" gorm:"index"`
	User       User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Priority   uint      `json:"priority" example:"3"`     // Rules are evaluated in ascending priority
	Match      string    `json:"match" example:"*Bakery*"` // Pattern the note is matched against. Supports * as wildcard
	CategoryID uuid.UUID `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`
	Category   Category  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Matches reports whether the note matches the pattern of the rule,
// ignoring case.
func (r CategoryRule) Matches(note string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(note))
}

func (r *CategoryRule) BeforeSave(tx *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	return tx.Where(&Category{DefaultModel: DefaultModel{ID: r.CategoryID}, UserID: r.UserID}).First(&Category{}).Error
}
