package models_test

import (
	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{Name: " Makan ", Note: "  warung  "})

	assert.Equal(suite.T(), "Makan", category.Name)
	assert.Equal(suite.T(), "warung", category.Note)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	userID := uuid.New()
	suite.createTestCategory(models.Category{UserID: userID, Name: "Makan"})

	err := models.DB.Create(&models.Category{UserID: userID, Name: "Makan"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// Another user can use the same name
	err = models.DB.Create(&models.Category{UserID: uuid.New(), Name: "Makan"}).Error
	assert.Nil(suite.T(), err)
}
