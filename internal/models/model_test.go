package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
		},
	}

	err := model.AfterFind(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelKeepsID() {
	id := uuid.New()
	model := models.DefaultModel{ID: id}

	_ = model.BeforeCreate(models.DB)
	suite.Assert().Equal(id, model.ID)

	model = models.DefaultModel{}
	_ = model.BeforeCreate(models.DB)
	suite.Assert().NotEqual(uuid.Nil, model.ID)
}

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	err := models.DB.First(&models.CategoryRule{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category rule matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.User{Email: "closed@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
