package v1_test

import (
	"net/http"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCleanup() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Match: "*", CategoryID: category.Data.ID})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(150), Date: recently()})

	other := suite.register(suite.T(), v1.RegisterEditable{})
	r := suite.requestAs(suite.T(), other.Token, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "Kept"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, path := range []string{"categories", "category-rules", "budgets", "transactions", "notifications"} {
		r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Len(response.Data, 0, path)
	}

	// The user can still log in
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/auth/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Data of other users is kept
	r = suite.requestAs(suite.T(), other.Token, http.MethodGet, "http://example.com/v1/categories", "")
	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	for _, url := range []string{"http://example.com/v1", "http://example.com/v1?confirm=yes"} {
		r := suite.request(suite.T(), http.MethodDelete, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Assert().Equal("the confirmation for the cleanup API call was incorrect", test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}

func (suite *TestSuiteStandard) TestCleanupUnauthorized() {
	r := test.Request(suite.co, suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
