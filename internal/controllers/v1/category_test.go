package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), models.ErrGeneral.Error())
}

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Categories endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", suite.createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := suite.request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestCategoriesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestCategoriesOtherUser verifies that categories of other users are not found.
func (suite *TestSuiteStandard) TestCategoriesOtherUser() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Private"})
	other := suite.register(suite.T(), v1.RegisterEditable{})

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		r := suite.requestAs(suite.T(), other.Token, method, c.Data.Links.Self, `{ "name": "Mine now" }`)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r := suite.requestAs(suite.T(), other.Token, http.MethodGet, "http://example.com/v1/categories", "")
	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)

	// The same name can be used by different users
	r = suite.requestAs(suite.T(), other.Token, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "Private"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", Note: "Supermarket"})
	_ = suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Salary", Kind: models.KindIncome})
	_ = suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rent", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Kind INCOME", "kind=INCOME", 1, 1},
		{"Kind EXPENSE", "kind=EXPENSE", 2, 2},
		{"Archived", "archived=true", 1, 1},
		{"Not archived", "archived=false", 2, 2},
		{"Name", "name=roc", 1, 1},
		{"Empty note", "note=", 2, 2},
		{"Search", "search=market", 1, 1},
		{"Limit", "limit=2", 2, 3},
		{"Offset", "offset=2", 1, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilterKindInvalid() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories?kind=SAVINGS", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the kind filter must be INCOME or EXPENSE", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Name: "Groceries"},
		{Name: "Groceries"},
		{Name: ""},
		{Name: "Salary", Kind: "SAVINGS"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 4)

	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().Equal(models.KindExpense, response.Data[0].Data.Kind, "kind defaults to EXPENSE")
	suite.Assert().Equal(models.ErrCategoryNameNotUnique.Error(), *response.Data[1].Error)
	suite.Assert().Equal(models.ErrCategoryNameEmpty.Error(), *response.Data[2].Error)
	suite.Assert().Equal(models.ErrCategoryKindInvalid.Error(), *response.Data[3].Error)
}

func (suite *TestSuiteStandard) TestCategoriesCreateBrokenBody() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/categories", `{ "name": "not a list" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", Note: "Supermarket"})

	r := suite.request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{
		"name":     "Food",
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Food", updated.Data.Name)
	suite.Assert().True(updated.Data.Archived)
	suite.Assert().Equal("Supermarket", updated.Data.Note, "fields that are not sent are kept")
	suite.Assert().Equal(c.Data.CreatedAt, updated.Data.CreatedAt)
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	_ = suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Taken"})
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest},
		{"Name taken", map[string]any{"name": "Taken"}, http.StatusBadRequest},
		{"Invalid kind", map[string]any{"kind": "SAVINGS"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, c.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestCategoriesDelete verifies that deleting a category removes its budgets
// and unlinks its transactions.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	c := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: c.Data.ID})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &c.Data.ID})

	r := suite.request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.CategoryID)
	suite.Assert().Nil(response.Data.BudgetID)
}
