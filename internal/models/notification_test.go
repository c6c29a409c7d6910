package models_test

import (
	"time"

	"github.com/moneywise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestNotificationUnique() {
	budget := suite.createTestBudget(models.Budget{})
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	notification := models.Notification{UserID: budget.UserID, BudgetID: &budget.ID, Level: models.AlertWarning, PeriodStart: start, Dismissed: true}
	suite.Require().Nil(models.DB.Create(&notification).Error)

	err := models.DB.Create(&models.Notification{UserID: budget.UserID, BudgetID: &budget.ID, Level: models.AlertWarning, PeriodStart: start}).Error
	suite.Assert().ErrorIs(err, models.ErrNotificationNotUnique)

	// Other levels and periods are fine
	suite.Assert().Nil(models.DB.Create(&models.Notification{UserID: budget.UserID, BudgetID: &budget.ID, Level: models.AlertExceeded, PeriodStart: start}).Error)
	suite.Assert().Nil(models.DB.Create(&models.Notification{UserID: budget.UserID, BudgetID: &budget.ID, Level: models.AlertWarning, PeriodStart: start.AddDate(0, 1, 0)}).Error)
}

func (suite *TestSuiteStandard) TestNotificationDeletedWithBudget() {
	budget := suite.createTestBudget(models.Budget{})
	suite.Require().Nil(models.DB.Create(&models.Notification{UserID: budget.UserID, BudgetID: &budget.ID, Level: models.AlertWarning}).Error)

	suite.Require().Nil(models.DB.Delete(&budget).Error)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Notification{}).Where("budget_id = ?", budget.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestNotificationSubject() {
	single := suite.createTestBudget(models.Budget{})
	notification := models.Notification{UserID: single.UserID, BudgetID: &single.ID, Level: models.AlertWarning}
	suite.Require().Nil(models.DB.Create(&notification).Error)
	suite.Assert().Equal(single.ID, notification.SubjectID)

	first := suite.createTestBudget(models.Budget{UserID: single.UserID, Type: models.BudgetMulti})
	group := models.Notification{UserID: first.UserID, BudgetID: &first.ID, GroupID: first.GroupID, Level: models.AlertWarning}
	suite.Require().Nil(models.DB.Create(&group).Error)
	suite.Assert().Equal(*first.GroupID, group.SubjectID)
	suite.Assert().Nil(group.BudgetID, "group alerts are not tied to a member")

	err := models.DB.Create(&models.Notification{UserID: single.UserID, Level: models.AlertWarning}).Error
	suite.Assert().ErrorIs(err, models.ErrNotificationSubjectMissing)
}

func (suite *TestSuiteStandard) TestNotificationGroupSurvivesMemberDeletion() {
	first := suite.createTestBudget(models.Budget{Type: models.BudgetMulti})
	second := suite.createTestBudget(models.Budget{UserID: first.UserID, Type: models.BudgetMulti, GroupID: first.GroupID})
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	notification := models.Notification{UserID: first.UserID, GroupID: first.GroupID, Level: models.AlertWarning, PeriodStart: start, Dismissed: true}
	suite.Require().Nil(models.DB.Create(&notification).Error)

	count := func() int64 {
		var count int64
		suite.Require().Nil(models.DB.Model(&models.Notification{}).Where("group_id = ?", first.GroupID).Count(&count).Error)
		return count
	}

	// The dismissed alert is kept while the group has budgets
	suite.Require().Nil(models.DB.Delete(&first).Error)
	suite.Assert().Equal(int64(1), count())

	err := models.DB.Create(&models.Notification{UserID: first.UserID, GroupID: first.GroupID, Level: models.AlertWarning, PeriodStart: start}).Error
	suite.Assert().ErrorIs(err, models.ErrNotificationNotUnique)

	// Deleting the last budget removes the alerts of the group
	suite.Require().Nil(models.DB.Delete(&second).Error)
	suite.Assert().Equal(int64(0), count())
}

func (suite *TestSuiteStandard) TestNotificationGroupDeletedWithCategory() {
	budget := suite.createTestBudget(models.Budget{Type: models.BudgetMulti})
	suite.Require().Nil(models.DB.Create(&models.Notification{UserID: budget.UserID, GroupID: budget.GroupID, Level: models.AlertExceeded}).Error)

	var category models.Category
	suite.Require().Nil(models.DB.First(&category, budget.CategoryID).Error)
	suite.Require().Nil(models.DB.Delete(&category).Error)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Notification{}).Where("user_id = ?", budget.UserID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestBadgeUnique() {
	user := suite.createTestUser(models.User{})

	suite.Require().Nil(models.DB.Create(&models.Badge{UserID: user.ID, Key: "first-expense", UnlockedAt: time.Now()}).Error)

	err := models.DB.Create(&models.Badge{UserID: user.ID, Key: "first-expense", UnlockedAt: time.Now()}).Error
	suite.Assert().ErrorIs(err, models.ErrBadgeAlreadyUnlocked)
}
