package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboard() {
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	rent := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rent"})
	salary := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Salary", Kind: models.KindIncome})

	march := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Type: models.TransactionIncome, CategoryID: &salary.Data.ID, Amount: decimal.NewFromFloat(2400), Date: march})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &rent.Data.ID, Amount: decimal.NewFromFloat(900), Date: march})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &food.Data.ID, Amount: decimal.NewFromFloat(80.5), Date: march})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &food.Data.ID, Amount: decimal.NewFromFloat(19.5), Date: march.AddDate(0, 0, 10)})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(15), Date: march})

	// Other months are ignored
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &food.Data.ID, Amount: decimal.NewFromFloat(1000), Date: march.AddDate(0, 1, 0)})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	dashboard := response.Data

	suite.Assert().Equal("2024-03", dashboard.Month)
	suite.Assert().True(dashboard.Income.Equal(decimal.NewFromFloat(2400)), "income is %s", dashboard.Income)
	suite.Assert().True(dashboard.Expense.Equal(decimal.NewFromFloat(1015)), "expense is %s", dashboard.Expense)
	suite.Assert().True(dashboard.Balance.Equal(decimal.NewFromFloat(1385)), "balance is %s", dashboard.Balance)
	suite.Assert().Equal("http://example.com/v1/transactions?fromDate=2024-03-01&untilDate=2024-03-31", dashboard.Links.Transactions)

	suite.Require().Len(dashboard.Categories, 3)
	suite.Assert().Equal("Rent", dashboard.Categories[0].Name)
	suite.Assert().Equal("Food", dashboard.Categories[1].Name)
	suite.Assert().True(dashboard.Categories[1].Amount.Equal(decimal.NewFromFloat(100)))
	suite.Assert().Nil(dashboard.Categories[2].CategoryID, "expenses without category are grouped")
}

func (suite *TestSuiteStandard) TestDashboardBudgets() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	first := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, CategoryID: category.Data.ID})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, GroupID: first.Data.GroupID})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(190), Date: recently()})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(types.Key(time.Now()), response.Data.Month, "defaults to the current month")
	suite.Require().Len(response.Data.Budgets, 2, "groups are listed once")
	suite.Assert().Equal(models.AlertWarning, response.Data.Budgets[0].Level)
	suite.Assert().Equal(int64(1), response.Data.UnreadNotifications)
}

func (suite *TestSuiteStandard) TestDashboardInvalidMonth() {
	for _, month := range []string{"2024-13", "March", "2024-3-1"} {
		r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?month="+month, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Assert().Contains(r.Header().Get("Content-Type"), "application/json")
		suite.Assert().Equal("the month must be in the format YYYY-MM", test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}
