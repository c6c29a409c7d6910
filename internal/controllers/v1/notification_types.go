package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	mw_uuid "github.com/moneywise/backend/internal/uuid"
)

// NotificationEditable represents all user configurable parameters
type NotificationEditable struct {
	Read      bool `json:"read" example:"true"`       // Has the notification been read?
	Dismissed bool `json:"dismissed" example:"false"` // Has the notification been dismissed? Dismissed alerts are not created again in the same period
}

type NotificationLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/notifications/0d9b2f8c-6f2a-4b8e-a3c4-1f5d1e1a9a11"` // The notification itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/e2d6e5c1-7ab1-43b8-8f46-f2e1c6a4b1a0"`     // The budget that caused the alert, or the budgets of the group
}

type Notification struct {
	models.DefaultModel
	NotificationEditable
	BudgetID    *uuid.UUID        `json:"budgetId" example:"e2d6e5c1-7ab1-43b8-8f46-f2e1c6a4b1a0"` // ID of the budget. Not set for alerts of budget groups
	GroupID     *uuid.UUID        `json:"groupId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`  // ID of the budget group, if any
	Level       models.AlertLevel `json:"level" example:"WARNING"`                                 // WARNING at 80%, EXCEEDED at 100%
	PeriodStart time.Time         `json:"periodStart" example:"2024-03-01T00:00:00Z"`              // Start of the budget period the alert belongs to
	Title       string            `json:"title" example:"Budget Food at 80%"`
	Message     string            `json:"message" example:"You spent €200.00 of €250.00 since 1 March 2024, €50.00 remaining."`
	Emailed     bool              `json:"emailed" example:"true"` // Has the alert been sent by email?
	Links       NotificationLinks `json:"links"`
}

func newNotification(url string, model models.Notification) Notification {
	budget := fmt.Sprintf("%s/v1/budgets?group=%s", url, model.SubjectID)
	if model.BudgetID != nil {
		budget = fmt.Sprintf("%s/v1/budgets/%s", url, *model.BudgetID)
	}

	return Notification{
		DefaultModel: model.DefaultModel,
		NotificationEditable: NotificationEditable{
			Read:      model.Read,
			Dismissed: model.Dismissed,
		},
		BudgetID:    model.BudgetID,
		GroupID:     model.GroupID,
		Level:       model.Level,
		PeriodStart: model.PeriodStart,
		Title:       model.Title,
		Message:     model.Message,
		Emailed:     model.Emailed,
		Links: NotificationLinks{
			Self:   fmt.Sprintf("%s/v1/notifications/%s", url, model.ID),
			Budget: budget,
		},
	}
}

type NotificationListResponse struct {
	Data       []Notification `json:"data"`                                                          // List of notifications
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type NotificationResponse struct {
	Data  *Notification `json:"data"`                                                          // Data for the notification
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type NotificationQueryFilter struct {
	Read      bool              `form:"read"`                       // Has the notification been read?
	Dismissed bool              `form:"dismissed"`                  // Has the notification been dismissed?
	Level     models.AlertLevel `form:"level"`                      // WARNING or EXCEEDED
	BudgetID  mw_uuid.UUID      `form:"budget"`                     // By ID of the budget
	GroupID   mw_uuid.UUID      `form:"group"`                      // By ID of the budget group
	Offset    uint              `form:"offset" filterField:"false"` // The offset of the first Notification returned. Defaults to 0.
	Limit     int               `form:"limit" filterField:"false"`  // Maximum number of Notifications to return. Defaults to 50.
}

func (f NotificationQueryFilter) model(userID uuid.UUID) models.Notification {
	return models.Notification{
		UserID:    userID,
		Read:      f.Read,
		Dismissed: f.Dismissed,
		Level:     f.Level,
		BudgetID:  f.BudgetID.Ptr(),
		GroupID:   f.GroupID.Ptr(),
	}
}
