package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertLevel is the state of a budget compared to its cap.
type AlertLevel string

const (
	AlertOK       AlertLevel = "OK"
	AlertWarning  AlertLevel = "WARNING"
	AlertExceeded AlertLevel = "EXCEEDED"
)

// Notification is an alert for a budget or a budget group that reached a threshold.
//
// Notifications are unique per subject, level and period. A notification
// that has been dismissed therefore is never created again for the same period.
// The subject is the budget for single budgets and the group for budget groups,
// so alerts of a group survive the deletion of single members.
type Notification struct {
	DefaultModel
	UserID      uuid.UUID  `json:"-" gorm:"index"`
	User        User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SubjectID   uuid.UUID  `json:"-" gorm:"type:uuid;not null;uniqueIndex:notification_subject_level_period"`
	BudgetID    *uuid.UUID `json:"budgetId" gorm:"index" example:"e2d6e5c1-7ab1-43b8-8f46-f2e1c6a4b1a0"` // Set for alerts of single budgets
	Budget      Budget     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	GroupID     *uuid.UUID `json:"groupId" gorm:"index" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // Set for alerts of budget groups
	Level       AlertLevel `json:"level" gorm:"uniqueIndex:notification_subject_level_period" example:"WARNING"`
	PeriodStart time.Time  `json:"periodStart" gorm:"uniqueIndex:notification_subject_level_period" example:"2024-03-01T00:00:00Z"`
	Title       string     `json:"title" example:"Budget Food at 80%"`
	Message     string     `json:"message" example:"You spent €200.00 of €250.00."`
	Read        bool       `json:"read" example:"false"`
	Dismissed   bool       `json:"dismissed" example:"false"`
	Emailed     bool       `json:"emailed" example:"true"`
}

// Subject returns the ID an alert is keyed by: the group for budget groups,
// the budget otherwise.
func Subject(budgetID uuid.UUID, groupID *uuid.UUID) uuid.UUID {
	if groupID != nil {
		return *groupID
	}
	return budgetID
}

func (n *Notification) AfterFind(tx *gorm.DB) error {
	_ = n.DefaultModel.AfterFind(tx)
	n.PeriodStart = n.PeriodStart.In(time.UTC)
	return nil
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.PeriodStart = n.PeriodStart.UTC()

	// Group alerts are not tied to a member budget
	if n.GroupID != nil {
		n.BudgetID = nil
	}

	if n.SubjectID == uuid.Nil {
		switch {
		case n.GroupID != nil:
			n.SubjectID = *n.GroupID
		case n.BudgetID != nil:
			n.SubjectID = *n.BudgetID
		default:
			return ErrNotificationSubjectMissing
		}
	}

	return nil
}

// deleteOrphanedGroupAlerts removes the alerts of budget groups of the user
// that have no budgets left.
func deleteOrphanedGroupAlerts(tx *gorm.DB, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return nil
	}

	return tx.Session(&gorm.Session{NewDB: true}).
		Where("user_id = ? AND group_id IS NOT NULL", userID).
		Where("group_id NOT IN (SELECT group_id FROM budgets WHERE group_id IS NOT NULL)").
		Delete(&Notification{}).Error
}
