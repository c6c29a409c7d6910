package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/budgeting"
	"github.com/moneywise/backend/internal/models"
	mw_uuid "github.com/moneywise/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name       string            `json:"name" example:"Food" default:""`                                                                    // Name of the budget
	Type       models.BudgetType `json:"type" example:"SINGLE" default:"SINGLE"`                                                            // SINGLE or MULTI. Cannot be changed
	GroupID    *uuid.UUID        `json:"groupId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`                                            // Group to join. New MULTI budgets without a group start a new one. Cannot be changed
	CategoryID uuid.UUID         `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`                                         // ID of the expense category
	Amount     decimal.Decimal   `json:"amount" example:"250" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Spending cap per period
	DueDay     int               `json:"dueDay" example:"15" minimum:"0" maximum:"28" default:"0"`                                          // Day of month the period starts. 0 for calendar months
	Note       string            `json:"note" example:"Groceries and takeout" default:""`                                                   // A note
	Archived   bool              `json:"archived" example:"false" default:"false"`                                                          // Archived budgets never alert
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		Name:       editable.Name,
		Type:       editable.Type,
		GroupID:    editable.GroupID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		DueDay:     editable.DueDay,
		Note:       editable.Note,
		Archived:   editable.Archived,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                     // The budget itself
	Status       string `json:"status" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/status"`            // Spend status of the budget or its group
	Reset        string `json:"reset" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/reset"`              // Starts a new period
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Transactions assigned to the budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`

	// These fields are computed
	MonthKey         string     `json:"monthKey" example:"2024-03"`                      // Month of the current period
	LastExpenseReset time.Time  `json:"lastExpenseReset" example:"2024-03-01T00:00:00Z"` // Start of the current period
	DueDate          *time.Time `json:"dueDate" example:"2024-03-15T00:00:00Z"`          // Next due date, for budgets with a due day
}

func newBudget(url string, model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:       model.Name,
			Type:       model.Type,
			GroupID:    model.GroupID,
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			DueDay:     model.DueDay,
			Note:       model.Note,
			Archived:   model.Archived,
		},
		MonthKey:         model.MonthKey,
		LastExpenseReset: model.LastExpenseReset,
		DueDate:          model.DueDate,
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Status:       fmt.Sprintf("%s/v1/budgets/%s/status", url, model.ID),
			Reset:        fmt.Sprintf("%s/v1/budgets/%s/reset", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetStatusResponse struct {
	Data  *budgeting.SpendStatus `json:"data"`                                                          // Spend status of the budget or its group
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name       string            `form:"name" filterField:"false"`   // By name
	Note       string            `form:"note" filterField:"false"`   // By note
	Type       models.BudgetType `form:"type"`                       // SINGLE or MULTI
	CategoryID mw_uuid.UUID      `form:"category"`                   // By ID of the category
	GroupID    mw_uuid.UUID      `form:"group"`                      // By ID of the budget group
	Archived   bool              `form:"archived"`                   // Is the budget archived?
	Search     string            `form:"search" filterField:"false"` // By string in name or note
	Offset     uint              `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit      int               `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model(userID uuid.UUID) (models.Budget, error) {
	if f.Type != "" && f.Type != models.BudgetSingle && f.Type != models.BudgetMulti {
		return models.Budget{}, errBudgetTypeInvalid
	}

	return models.Budget{
		UserID:     userID,
		Type:       f.Type,
		CategoryID: f.CategoryID.UUID,
		GroupID:    f.GroupID.Ptr(),
		Archived:   f.Archived,
	}, nil
}
