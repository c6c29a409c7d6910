package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	mw_uuid "github.com/moneywise/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Type       models.TransactionType `json:"type" example:"EXPENSE" default:"EXPENSE"`                                                            // INCOME or EXPENSE
	Amount     decimal.Decimal        `json:"amount" example:"14.99" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount, always positive
	Date       time.Time              `json:"date" example:"2024-03-12T08:30:00Z"`                                                                 // Date of the transaction. Defaults to now
	CategoryID *uuid.UUID             `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`                                           // ID of the category. Set by category rules when empty
	Note       string                 `json:"note" example:"Bakery" default:""`                                                                    // A note
	BudgetID   *uuid.UUID             `json:"budgetId" example:"e2d6e5c1-7ab1-43b8-8f46-f2e1c6a4b1a0"`                                             // ID of the budget the expense is assigned to
	GroupID    *uuid.UUID             `json:"groupId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`                                              // ID of the budget group the expense is assigned to. Set automatically for budgets of a group
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:     userID,
		Type:       editable.Type,
		Amount:     editable.Amount,
		Date:       editable.Date,
		CategoryID: editable.CategoryID,
		Note:       editable.Note,
		BudgetID:   editable.BudgetID,
		GroupID:    editable.GroupID,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(url string, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:       model.Type,
			Amount:     model.Amount,
			Date:       model.Date,
			CategoryID: model.CategoryID,
			Note:       model.Note,
			BudgetID:   model.BudgetID,
			GroupID:    model.GroupID,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if one occurred
}

type TransactionQueryFilter struct {
	Type              models.TransactionType `form:"type"`                                  // INCOME or EXPENSE
	CategoryID        mw_uuid.UUID           `form:"category"`                              // ID of the category
	BudgetID          mw_uuid.UUID           `form:"budget"`                                // ID of the budget
	GroupID           mw_uuid.UUID           `form:"group"`                                 // ID of the budget group
	FromDate          time.Time              `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time              `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Note              string                 `form:"note" filterField:"false"`              // Note contains this string
	Unassigned        bool                   `form:"unassigned" filterField:"false"`        // Is the transaction assigned to neither budget nor group?
	Offset            uint                   `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model(userID uuid.UUID) (models.Transaction, error) {
	if f.Type != "" && f.Type != models.TransactionIncome && f.Type != models.TransactionExpense {
		return models.Transaction{}, errTransactionTypeInvalid
	}

	// This does not set the string or date fields since they are
	// handled in the controller function
	return models.Transaction{
		UserID:     userID,
		Type:       f.Type,
		CategoryID: f.CategoryID.Ptr(),
		BudgetID:   f.BudgetID.Ptr(),
		GroupID:    f.GroupID.Ptr(),
	}, nil
}
