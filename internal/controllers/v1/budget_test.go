package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// recently returns a time in the current month that is at least a few
// seconds in the past.
func recently() time.Time {
	now := time.Now().UTC()
	t := now.Add(-1 * time.Hour)
	if start := types.MonthOf(now).Time(); t.Before(start) {
		return start
	}
	return t
}

func (suite *TestSuiteStandard) budgetStatus(t *testing.T, budget v1.BudgetResponse) v1.BudgetStatusResponse {
	r := suite.request(t, http.MethodGet, budget.Data.Links.Status, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var status v1.BudgetStatusResponse
	test.DecodeResponse(t, &r, &status)
	return status
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	income := suite.createTestCategory(suite.T(), v1.CategoryEditable{Kind: models.KindIncome})
	group := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, DueDay: 15})

	tests := []struct {
		name     string
		editable v1.BudgetEditable
		status   int
		err      error
	}{
		{"Single", v1.BudgetEditable{}, http.StatusCreated, nil},
		{"Due day", v1.BudgetEditable{DueDay: 28}, http.StatusCreated, nil},
		{"Joins group", v1.BudgetEditable{Type: models.BudgetMulti, GroupID: group.Data.GroupID, DueDay: 15}, http.StatusCreated, nil},
		{"Income category", v1.BudgetEditable{CategoryID: income.Data.ID}, http.StatusBadRequest, models.ErrBudgetCategoryNotExpense},
		{"Negative amount", v1.BudgetEditable{Amount: decimal.NewFromFloat(-1)}, http.StatusBadRequest, models.ErrBudgetAmountNotPositive},
		{"Due day too high", v1.BudgetEditable{DueDay: 29}, http.StatusBadRequest, models.ErrBudgetDueDayInvalid},
		{"Invalid type", v1.BudgetEditable{Type: "WEEKLY"}, http.StatusBadRequest, models.ErrBudgetTypeInvalid},
		{"Single with group", v1.BudgetEditable{GroupID: group.Data.GroupID}, http.StatusBadRequest, models.ErrBudgetSingleWithGroup},
		{"Group with other due day", v1.BudgetEditable{Type: models.BudgetMulti, GroupID: group.Data.GroupID, DueDay: 3}, http.StatusBadRequest, models.ErrBudgetGroupDueDayMismatch},
		{"Category does not exist", v1.BudgetEditable{CategoryID: uuid.New()}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.editable.CategoryID == uuid.Nil {
				tt.editable.CategoryID = suite.createTestCategory(t, v1.CategoryEditable{}).Data.ID
			}

			if tt.editable.Amount.IsZero() {
				tt.editable.Amount = decimal.NewFromFloat(250)
			}

			r := suite.request(t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err != nil {
				assert.Contains(t, *response.Data[0].Error, tt.err.Error())
				return
			}

			budget := response.Data[0].Data
			assert.Equal(t, types.Key(budget.LastExpenseReset), budget.MonthKey)

			if tt.editable.DueDay == 0 {
				assert.Nil(t, budget.DueDate)
				assert.True(t, types.MonthOf(time.Now()).Time().Equal(budget.LastExpenseReset))
			} else {
				assert.NotNil(t, budget.DueDate)
				assert.Equal(t, tt.editable.DueDay, budget.DueDate.Day())
				assert.True(t, budget.DueDate.After(time.Now()))
			}
		})
	}
}

// TestBudgetsDuplicateCategoryInGroup verifies that a category is used only
// once per group.
func (suite *TestSuiteStandard) TestBudgetsDuplicateCategoryInGroup() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	first := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, CategoryID: category.Data.ID})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, CategoryID: category.Data.ID, GroupID: first.Data.GroupID}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	group := suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Living", Type: models.BudgetMulti, CategoryID: food.Data.ID})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Living", Type: models.BudgetMulti, GroupID: group.Data.GroupID})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Hobbies", Note: "Climbing", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Type", "type=MULTI", 2},
		{"Group", fmt.Sprintf("group=%s", *group.Data.GroupID), 2},
		{"Category", fmt.Sprintf("category=%s", food.Data.ID), 1},
		{"Archived", "archived=true", 1},
		{"Name", "name=Liv", 2},
		{"Search", "search=climb", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?type=WEEKLY", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		method string
	}{
		{"GET Existing", budget.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"OPTIONS Existing", budget.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"GET Not existing", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"GET status not existing", fmt.Sprintf("%s/status", uuid.New()), http.StatusNotFound, http.MethodGet},
		{"POST reset not existing", fmt.Sprintf("%s/reset", uuid.New()), http.StatusNotFound, http.MethodPost},
		{"POST reset invalid ID", "notaUUID/reset", http.StatusBadRequest, http.MethodPost},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsStatus() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromFloat(200)})

	status := suite.budgetStatus(suite.T(), budget)
	suite.Assert().True(status.Data.Spent.IsZero())
	suite.Assert().Equal(models.AlertOK, status.Data.Level)

	// Unassigned expense of the category
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(120), Date: recently()})

	// Assigned expense
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: &budget.Data.ID, Amount: decimal.NewFromFloat(50), Date: recently()})

	// Income and expenses of other categories do not count
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Type: models.TransactionIncome, CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(1000), Date: recently()})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(70), Date: recently()})

	// Expenses of earlier months do not count
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(500), Date: types.MonthOf(time.Now()).Time().AddDate(0, 0, -1)})

	status = suite.budgetStatus(suite.T(), budget)
	suite.Assert().True(status.Data.Spent.Equal(decimal.NewFromFloat(170)), "spent is %s", status.Data.Spent)
	suite.Assert().True(status.Data.Remaining.Equal(decimal.NewFromFloat(30)), "remaining is %s", status.Data.Remaining)
	suite.Assert().True(status.Data.Percent.Equal(decimal.NewFromFloat(85)), "percent is %s", status.Data.Percent)
	suite.Assert().Equal(models.AlertWarning, status.Data.Level)
	suite.Assert().Equal([]uuid.UUID{budget.Data.ID}, status.Data.Members)
	suite.Assert().True(types.MonthOf(time.Now()).Time().Equal(status.Data.PeriodStart))
	suite.Assert().True(types.MonthOf(time.Now()).AddDate(0, 1).Time().Equal(status.Data.PeriodEnd))
}

// TestBudgetsGroupStatus verifies that the members of a budget group share
// their limit and spend.
func (suite *TestSuiteStandard) TestBudgetsGroupStatus() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	drinks := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Drinks"})

	first := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, CategoryID: food.Data.ID, Amount: decimal.NewFromFloat(150)})
	second := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, CategoryID: drinks.Data.ID, GroupID: first.Data.GroupID, Amount: decimal.NewFromFloat(50)})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &food.Data.ID, Amount: decimal.NewFromFloat(60), Date: recently()})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &drinks.Data.ID, Amount: decimal.NewFromFloat(20), Date: recently()})

	// Assigned to the group and matching a member category, counted once
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &food.Data.ID, BudgetID: &second.Data.ID, Amount: decimal.NewFromFloat(20), Date: recently()})

	for _, budget := range []v1.BudgetResponse{first, second} {
		status := suite.budgetStatus(suite.T(), budget)
		suite.Assert().Equal(first.Data.GroupID, status.Data.GroupID)
		suite.Assert().ElementsMatch([]uuid.UUID{first.Data.ID, second.Data.ID}, status.Data.Members)
		suite.Assert().True(status.Data.Limit.Equal(decimal.NewFromFloat(200)), "limit is %s", status.Data.Limit)
		suite.Assert().True(status.Data.Spent.Equal(decimal.NewFromFloat(100)), "spent is %s", status.Data.Spent)
		suite.Assert().Equal(models.AlertOK, status.Data.Level)
	}
}

func (suite *TestSuiteStandard) TestBudgetsReset() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	first := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, CategoryID: category.Data.ID})
	second := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, GroupID: first.Data.GroupID})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(30), Date: recently()})
	suite.Require().True(suite.budgetStatus(suite.T(), first).Data.Spent.Equal(decimal.NewFromFloat(30)))

	r := suite.request(suite.T(), http.MethodPost, first.Data.Links.Reset, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var reset v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &reset)
	suite.Assert().True(reset.Data.LastExpenseReset.After(first.Data.LastExpenseReset))
	suite.Assert().Equal(types.Key(time.Now()), reset.Data.MonthKey)

	suite.Assert().True(suite.budgetStatus(suite.T(), first).Data.Spent.IsZero())

	// The whole group starts a new period
	r = suite.request(suite.T(), http.MethodGet, second.Data.Links.Self, "")
	var member v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &member)
	suite.Assert().True(reset.Data.LastExpenseReset.Equal(member.Data.LastExpenseReset))

	// New expenses count again
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(12)})
	suite.Assert().True(suite.budgetStatus(suite.T(), first).Data.Spent.Equal(decimal.NewFromFloat(12)))
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Food", Note: "Groceries"})

	r := suite.request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{"amount": 300, "name": "Eating"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.Amount.Equal(decimal.NewFromFloat(300)))
	suite.Assert().Equal("Eating", updated.Data.Name)
	suite.Assert().Equal("Groceries", updated.Data.Note)
	suite.Assert().True(budget.Data.LastExpenseReset.Equal(updated.Data.LastExpenseReset))

	tests := []struct {
		name string
		body any
		err  error
	}{
		{"Type", map[string]any{"type": "MULTI"}, models.ErrBudgetTypeImmutable},
		{"Amount", map[string]any{"amount": 0}, models.ErrBudgetAmountNotPositive},
		{"Due day", map[string]any{"dueDay": 31}, models.ErrBudgetDueDayInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, budget.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

// TestBudgetsUpdateGroupDueDay verifies that the due day is the same for
// all members of a group.
func (suite *TestSuiteStandard) TestBudgetsUpdateGroupDueDay() {
	first := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti})
	second := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, GroupID: first.Data.GroupID})

	r := suite.request(suite.T(), http.MethodPatch, first.Data.Links.Self, map[string]any{"dueDay": 10})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Require().NotNil(updated.Data.DueDate)
	suite.Assert().Equal(10, updated.Data.DueDate.Day())

	r = suite.request(suite.T(), http.MethodGet, second.Data.Links.Self, "")
	var member v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &member)
	suite.Assert().Equal(10, member.Data.DueDay)
	suite.Require().NotNil(member.Data.DueDate)
	suite.Assert().Equal(updated.Data.DueDate.Day(), member.Data.DueDate.Day())
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: &budget.Data.ID})

	r := suite.request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.BudgetID)
}
