package v1_test

import (
	"net/http"

	"github.com/moneywise/backend/internal/budgeting"
	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
)

func (suite *TestSuiteStandard) badges() map[string]budgeting.BadgeProgress {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/badges", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BadgeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, len(budgeting.Catalogue))

	badges := make(map[string]budgeting.BadgeProgress, len(response.Data))
	for _, b := range response.Data {
		badges[b.Key] = b
	}
	return badges
}

func (suite *TestSuiteStandard) TestBadges() {
	for _, b := range suite.badges() {
		suite.Assert().False(b.Unlocked, b.Key)
		suite.Assert().Zero(b.Count, b.Key)
	}

	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{Type: models.TransactionIncome})

	badges := suite.badges()
	suite.Assert().True(badges["first-expense"].Unlocked)
	suite.Assert().NotNil(badges["first-expense"].UnlockedAt)
	suite.Assert().True(badges["first-income"].Unlocked)
	suite.Assert().False(badges["expense-tracker"].Unlocked)
	suite.Assert().Equal(int64(1), badges["expense-tracker"].Count)
	suite.Assert().Equal(int64(10), badges["expense-tracker"].Threshold)

	// Badges stay unlocked
	r := suite.request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	badges = suite.badges()
	suite.Assert().True(badges["first-expense"].Unlocked)
	suite.Assert().Zero(badges["first-expense"].Count)
}

func (suite *TestSuiteStandard) TestBadgesUnlockedByUpdate() {
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{})
	suite.Assert().Nil(suite.badges()["first-income"].UnlockedAt)

	r := suite.request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"type": models.TransactionIncome})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	badge := suite.badges()["first-income"]
	suite.Assert().True(badge.Unlocked)
	suite.Assert().NotNil(badge.UnlockedAt, "the badge is stored when the transaction is updated")
}

func (suite *TestSuiteStandard) TestBadgesCategorizer() {
	for i := 0; i < 5; i++ {
		_ = suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	}

	suite.Assert().True(suite.badges()["categorizer"].Unlocked)
}

func (suite *TestSuiteStandard) TestBadgesDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/badges", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError, http.StatusUnauthorized)
}
