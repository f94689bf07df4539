package models_test

import (
	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingRoundTrip() {
	userID := uuid.New()

	err := models.SetSetting(models.DB, userID, "digest", `{"cached":true}`)
	assert.Nil(suite.T(), err)

	value, ok, err := models.GetSetting(models.DB, userID, "digest")
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), `{"cached":true}`, value)
}

func (suite *TestSuiteStandard) TestSettingOverwrite() {
	userID := uuid.New()

	assert.Nil(suite.T(), models.SetSetting(models.DB, userID, "draft", "first"))
	assert.Nil(suite.T(), models.SetSetting(models.DB, userID, "draft", "second"))

	value, ok, err := models.GetSetting(models.DB, userID, "draft")
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "second", value)
}

func (suite *TestSuiteStandard) TestSettingGuestUser() {
	// The guest profile stores settings under the nil UUID
	err := models.SetSetting(models.DB, uuid.Nil, "draft", "guest data")
	assert.Nil(suite.T(), err)

	value, ok, err := models.GetSetting(models.DB, uuid.Nil, "draft")
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "guest data", value)

	// Another user must not see the guest's setting
	_, ok, err = models.GetSetting(models.DB, uuid.New(), "draft")
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestSettingDelete() {
	userID := uuid.New()

	assert.Nil(suite.T(), models.SetSetting(models.DB, userID, "draft", "data"))
	assert.Nil(suite.T(), models.DeleteSetting(models.DB, userID, "draft"))

	_, ok, err := models.GetSetting(models.DB, userID, "draft")
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestSettingEmptyKey() {
	err := models.SetSetting(models.DB, uuid.New(), "", "data")
	assert.ErrorIs(suite.T(), err, models.ErrSettingKeyEmpty)
}
