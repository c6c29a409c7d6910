package models_test

import (
	"github.com/moneywise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestExportAndDeleteUserData() {
	budget := suite.createTestBudget(models.Budget{})
	_ = suite.createTestTransaction(models.Transaction{UserID: budget.UserID, BudgetID: &budget.ID})

	// Data of other users is not touched
	other := suite.createTestBudget(models.Budget{})

	export, err := models.ExportUser(models.DB, budget.UserID)
	suite.Require().Nil(err)
	suite.Assert().Equal(budget.UserID, export.User.ID)
	suite.Assert().Len(export.Categories, 1)
	suite.Assert().Len(export.Budgets, 1)
	suite.Assert().Len(export.Transactions, 1)
	suite.Assert().Len(export.CategoryRules, 0)

	suite.Require().Nil(models.DeleteUserData(models.DB, budget.UserID))

	export, err = models.ExportUser(models.DB, budget.UserID)
	suite.Require().Nil(err)
	suite.Assert().Len(export.Categories, 0)
	suite.Assert().Len(export.Budgets, 0)
	suite.Assert().Len(export.Transactions, 0)

	suite.Assert().Nil(models.DB.First(&models.Budget{}, other.ID).Error)
}
