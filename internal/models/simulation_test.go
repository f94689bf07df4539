package models_test

import (
	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSalarySimulationSalaryNotPositive() {
	err := models.DB.Create(&models.SalarySimulation{
		Title: "Gaji September",
		Month: types.NewMonth(2026, 9),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrSalaryNotPositive)
}

func (suite *TestSuiteStandard) TestSalarySimulationTitleUnique() {
	userID := uuid.New()

	_ = suite.createTestSalarySimulation(models.SalarySimulation{
		UserID:       userID,
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
	})

	err := models.DB.Create(&models.SalarySimulation{
		UserID:       userID,
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(7000000),
		Month:        types.NewMonth(2026, 9),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrSimulationNameNotUnique)
}

func (suite *TestSuiteStandard) TestSalarySimulationTitleUniquePerMonth() {
	userID := uuid.New()

	_ = suite.createTestSalarySimulation(models.SalarySimulation{
		UserID:       userID,
		Title:        "Gaji",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
	})

	// The same title is fine for a different month
	err := models.DB.Create(&models.SalarySimulation{
		UserID:       userID,
		Title:        "Gaji",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 10),
	}).Error

	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestSalarySimulationItemIntegrity() {
	err := models.DB.Create(&models.SalarySimulationItem{
		SalarySimulationID: uuid.New(),
		AllocationAmount:   decimal.NewFromInt(1500000),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSalarySimulationItems() {
	scenario := suite.createTestSalarySimulation(models.SalarySimulation{
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
	})

	item := models.SalarySimulationItem{
		SalarySimulationID: scenario.ID,
		AllocationAmount:   decimal.NewFromInt(1500000),
		AllocationPercent:  decimal.NewFromInt(25),
	}
	err := models.DB.Create(&item).Error
	assert.Nil(suite.T(), err)

	var items []models.SalarySimulationItem
	err = models.DB.Where("salary_simulation_id = ?", scenario.ID).Find(&items).Error
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), items, 1)
}
