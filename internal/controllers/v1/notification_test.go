package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) notifications(t *testing.T, query string) []v1.Notification {
	r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/notifications?%s", query), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(t, &r, &response)
	return response.Data
}

// TestNotificationsAlerts verifies that crossing the thresholds of a budget
// creates one notification per level and period and sends alert emails.
func (suite *TestSuiteStandard) TestNotificationsAlerts() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Food", CategoryID: category.Data.ID})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(50), Date: recently()})
	suite.Assert().Len(suite.notifications(suite.T(), ""), 0)

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(35), Date: recently()})
	notifications := suite.notifications(suite.T(), "")
	suite.Require().Len(notifications, 1)
	suite.Assert().Equal(models.AlertWarning, notifications[0].Level)
	suite.Require().NotNil(notifications[0].BudgetID)
	suite.Assert().Equal(budget.Data.ID, *notifications[0].BudgetID)
	suite.Assert().Equal("Budget Food at 80%", notifications[0].Title)
	suite.Assert().True(notifications[0].Emailed)
	suite.Assert().False(notifications[0].Read)

	messages := suite.mailer.Messages()
	suite.Require().Len(messages, 1)
	suite.Assert().Equal(suite.user.Email, messages[0].To)
	suite.Assert().Equal("Budget Food at 80%", messages[0].Subject)

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(20), Date: recently()})
	notifications = suite.notifications(suite.T(), "")
	suite.Require().Len(notifications, 2)
	suite.Assert().Len(suite.notifications(suite.T(), "level=EXCEEDED"), 1)
	suite.Assert().Len(suite.mailer.Messages(), 2)

	// Thresholds alert only once per period
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(20), Date: recently()})
	suite.Assert().Len(suite.notifications(suite.T(), ""), 2)
	suite.Assert().Len(suite.mailer.Messages(), 2)

	// Dismissed alerts are not created again
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/notifications/dismiss-all", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(20), Date: recently()})
	suite.Assert().Len(suite.notifications(suite.T(), "dismissed=false"), 0)
	suite.Assert().Len(suite.notifications(suite.T(), "dismissed=true&read=true"), 2)
}

// TestNotificationsGroup verifies that alerts of budget groups belong to the
// group and stay dismissed when members of the group are deleted.
func (suite *TestSuiteStandard) TestNotificationsGroup() {
	first := suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti})
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Type: models.BudgetMulti, GroupID: first.Data.GroupID, CategoryID: category.Data.ID})
	suite.Require().NotNil(first.Data.GroupID)
	groupID := *first.Data.GroupID

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(170), Date: recently()})

	notifications := suite.notifications(suite.T(), fmt.Sprintf("group=%s", groupID))
	suite.Require().Len(notifications, 1)
	suite.Assert().Equal(models.AlertWarning, notifications[0].Level)
	suite.Assert().Nil(notifications[0].BudgetID)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/budgets?group=%s", groupID), notifications[0].Links.Budget)

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/notifications/dismiss-all", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodDelete, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The remaining member is over its cap: only the new level alerts
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(1), Date: recently()})

	warnings := suite.notifications(suite.T(), "level=WARNING")
	suite.Require().Len(warnings, 1)
	suite.Assert().True(warnings[0].Dismissed)
	suite.Assert().Len(suite.notifications(suite.T(), "level=EXCEEDED&dismissed=false"), 1)
	suite.Assert().Len(suite.mailer.Messages(), 2)
}

// TestNotificationsNoEmail verifies that users without email alerts only
// get notifications.
func (suite *TestSuiteStandard) TestNotificationsNoEmail() {
	r := suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/auth/me", map[string]any{"emailAlerts": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(150), Date: recently()})

	notifications := suite.notifications(suite.T(), "")
	suite.Assert().Len(notifications, 2)
	for _, n := range notifications {
		suite.Assert().False(n.Emailed)
	}
	suite.Assert().Len(suite.mailer.Messages(), 0)
}

func (suite *TestSuiteStandard) TestNotificationsArchivedBudget() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Archived: true})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(150), Date: recently()})

	suite.Assert().Len(suite.notifications(suite.T(), ""), 0)
}

func (suite *TestSuiteStandard) TestNotificationsUpdateAndDelete() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(90), Date: recently()})

	notifications := suite.notifications(suite.T(), fmt.Sprintf("budget=%s", budget.Data.ID))
	suite.Require().Len(notifications, 1)
	notification := notifications[0]

	r := suite.request(suite.T(), http.MethodOptions, notification.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodPatch, notification.Links.Self, map[string]any{"read": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.NotificationResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.Read)
	suite.Assert().False(updated.Data.Dismissed)
	suite.Assert().Equal(notification.Title, updated.Data.Title)

	suite.Assert().Len(suite.notifications(suite.T(), "read=false"), 0)

	r = suite.request(suite.T(), http.MethodPatch, notification.Links.Self, `{ "read": "yes" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodDelete, notification.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, notification.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNotificationsGetSingle() {
	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Not existing", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Not existing", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"OPTIONS Not existing", uuid.New().String(), http.StatusNotFound, http.MethodOptions},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("http://example.com/v1/notifications/%s", tt.id), "")
			assert.Equal(t, tt.status, r.Code)
		})
	}
}
