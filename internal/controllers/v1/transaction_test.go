package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID})

	tests := []struct {
		name     string
		editable v1.TransactionEditable
		status   int
		err      error
	}{
		{"Expense", v1.TransactionEditable{Amount: decimal.NewFromFloat(14.99), Note: "Bakery"}, http.StatusCreated, nil},
		{"Income", v1.TransactionEditable{Type: models.TransactionIncome, Amount: decimal.NewFromFloat(2400)}, http.StatusCreated, nil},
		{"Assigned expense", v1.TransactionEditable{Amount: decimal.NewFromFloat(5), BudgetID: &budget.Data.ID}, http.StatusCreated, nil},
		{"Negative amount", v1.TransactionEditable{Amount: decimal.NewFromFloat(-5)}, http.StatusBadRequest, models.ErrTransactionAmountNotPositive},
		{"Invalid type", v1.TransactionEditable{Type: "TRANSFER", Amount: decimal.NewFromFloat(5)}, http.StatusBadRequest, models.ErrTransactionTypeInvalid},
		{"Income assigned to budget", v1.TransactionEditable{Type: models.TransactionIncome, Amount: decimal.NewFromFloat(5), BudgetID: &budget.Data.ID}, http.StatusBadRequest, models.ErrTransactionIncomeAssigned},
		{"Category does not exist", v1.TransactionEditable{Amount: decimal.NewFromFloat(5), CategoryID: uuidPtr(uuid.New())}, http.StatusNotFound, models.ErrResourceNotFound},
		{"Budget does not exist", v1.TransactionEditable{Amount: decimal.NewFromFloat(5), BudgetID: uuidPtr(uuid.New())}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err != nil {
				assert.Contains(t, *response.Data[0].Error, tt.err.Error())
				return
			}

			assert.True(t, response.Data[0].Data.Amount.Equal(tt.editable.Amount))
			assert.False(t, response.Data[0].Data.Date.IsZero(), "date defaults to now")
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{ "amount": "no number" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestTransactionsGroupFromBudget verifies that transactions assigned to
// a budget of a group are linked to the group.
func (suite *TestSuiteStandard) TestTransactionsGroupFromBudget() {
	first := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti})
	second := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, GroupID: first.Data.GroupID})

	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: &second.Data.ID})
	suite.Require().NotNil(transaction.Data.GroupID)
	suite.Assert().Equal(*first.Data.GroupID, *transaction.Data.GroupID)

	// Group of a budget without group is cleared
	single := suite.createTestBudget(suite.T(), v1.BudgetEditable{})
	r := suite.request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"budgetId": single.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(single.Data.ID, *updated.Data.BudgetID)
	suite.Assert().Nil(updated.Data.GroupID)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: food.Data.ID})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromFloat(12.5),
		Date:       time.Date(2024, 3, 12, 8, 30, 0, 0, time.UTC),
		CategoryID: &food.Data.ID,
		Note:       "Bakery",
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:   decimal.NewFromFloat(40),
		Date:     time.Date(2024, 3, 20, 18, 0, 0, 0, time.UTC),
		BudgetID: &budget.Data.ID,
	})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TransactionIncome,
		Amount: decimal.NewFromFloat(2400),
		Date:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Note:   "Salary",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Income", "type=INCOME", 1},
		{"Expense", "type=EXPENSE", 2},
		{"Category", fmt.Sprintf("category=%s", food.Data.ID), 1},
		{"Budget", fmt.Sprintf("budget=%s", budget.Data.ID), 1},
		{"From date", "fromDate=2024-03-15T00:00:00Z", 2},
		{"Until date", "untilDate=2024-03-20T00:00:00Z", 2},
		{"Date range", "fromDate=2024-03-13T00:00:00Z&untilDate=2024-03-31T00:00:00Z", 1},
		{"Amount less or equal", "amountLessOrEqual=40", 2},
		{"Amount more or equal", "amountMoreOrEqual=40", 2},
		{"Note", "note=aker", 1},
		{"Empty note", "note=", 1},
		{"Unassigned", "unassigned=true", 2},
		{"Assigned", "unassigned=false", 1},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}

	// Newest first
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Salary", response.Data[0].Note)
	suite.Assert().Equal("Bakery", response.Data[2].Note)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterTypeInvalid() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=TRANSFER", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing", transaction.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"OPTIONS Existing", transaction.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"GET Not existing", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Not existing", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Note: "Bakery", Amount: decimal.NewFromFloat(3.5)})

	r := suite.request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"amount": 4.2})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.Amount.Equal(decimal.NewFromFloat(4.2)))
	suite.Assert().Equal("Bakery", updated.Data.Note)

	r = suite.request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"amount": 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, `{ "note": 5 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := suite.request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsOtherUser verifies that transactions cannot reference
// resources of other users.
func (suite *TestSuiteStandard) TestTransactionsOtherUser() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{})
	other := suite.register(suite.T(), v1.RegisterEditable{})

	r := suite.requestAs(suite.T(), other.Token, http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.requestAs(suite.T(), other.Token, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{Amount: decimal.NewFromFloat(1), BudgetID: &budget.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
