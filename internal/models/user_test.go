package models_test

import (
	"github.com/moneywise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserNormalization() {
	user := suite.createTestUser(models.User{Email: "  Jane.Doe@Example.COM ", Name: " Jane ", Currency: "usd"})

	suite.Assert().Equal("jane.doe@example.com", user.Email)
	suite.Assert().Equal("Jane", user.Name)
	suite.Assert().Equal("USD", user.Currency)
}

func (suite *TestSuiteStandard) TestUserDefaultCurrency() {
	user := suite.createTestUser(models.User{})
	suite.Assert().Equal(models.DefaultCurrency, user.Currency)
}

func (suite *TestSuiteStandard) TestUserValidation() {
	tests := []struct {
		name string
		user models.User
		err  error
	}{
		{"No email", models.User{}, models.ErrUserEmailInvalid},
		{"No at sign", models.User{Email: "jane.example.com"}, models.ErrUserEmailInvalid},
		{"Display name", models.User{Email: "Jane <jane@example.com>"}, models.ErrUserEmailInvalid},
		{"Unknown currency", models.User{Email: "jane@example.com", Currency: "XYZW"}, models.ErrUserCurrencyInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.user).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "jane@example.com"})

	err := models.DB.Create(&models.User{Email: "JANE@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserPassword() {
	user := models.User{}

	suite.Assert().ErrorIs(user.SetPassword("short"), models.ErrPasswordTooShort)
	suite.Assert().Empty(user.PasswordHash)

	suite.Require().Nil(user.SetPassword("correct horse battery staple"))
	suite.Assert().NotContains(user.PasswordHash, "correct horse")
	suite.Assert().True(user.CheckPassword("correct horse battery staple"))
	suite.Assert().False(user.CheckPassword("Correct horse battery staple"))
}
