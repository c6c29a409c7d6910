package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestOptions verifies the allowed methods of all collection endpoints.
func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "OPTIONS, GET, DELETE"},
		{"/v1/auth/register", "OPTIONS, POST"},
		{"/v1/auth/login", "OPTIONS, POST"},
		{"/v1/auth/logout", "OPTIONS, POST"},
		{"/v1/auth/me", "OPTIONS, GET, PATCH"},
		{"/v1/categories", "OPTIONS, GET, POST"},
		{"/v1/category-rules", "OPTIONS, GET, POST"},
		{"/v1/transactions", "OPTIONS, GET, POST"},
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/dashboard", "OPTIONS, GET"},
		{"/v1/notifications", "OPTIONS, GET"},
		{"/v1/notifications/dismiss-all", "OPTIONS, POST"},
		{"/v1/badges", "OPTIONS, GET"},
		{"/v1/export", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsBudgetSubresources() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{})

	r := suite.request(suite.T(), http.MethodOptions, budget.Data.Links.Status, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = suite.request(suite.T(), http.MethodOptions, budget.Data.Links.Reset, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/v1/categories"},
		{http.MethodDelete, "/v1/dashboard"},
		{http.MethodPost, "/v1/badges"},
		{http.MethodPatch, "/v1/export"},
	} {
		r := suite.request(suite.T(), tt.method, "http://example.com"+tt.path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
	}
}

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("http://example.com/v1/categories", response.Links.Categories)
	suite.Assert().Equal("http://example.com/v1/export", response.Links.Export)
}
