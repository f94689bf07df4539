package models_test

import (
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetPeriodDefault() {
	budget := suite.createTestBudget(models.Budget{
		Name:    "Makan",
		Planned: decimal.NewFromInt(1500000),
		Month:   types.NewMonth(2026, 8),
	})

	assert.Equal(suite.T(), models.BudgetPeriodMonthly, budget.Period)
}

func (suite *TestSuiteStandard) TestBudgetPeriodValidation() {
	err := models.DB.Create(&models.Budget{
		Name:   "Makan",
		Month:  types.NewMonth(2026, 8),
		Period: "yearly",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetPeriodInvalid)
}

func (suite *TestSuiteStandard) TestBudgetPlannedNegative() {
	err := models.DB.Create(&models.Budget{
		Name:    "Makan",
		Planned: decimal.NewFromInt(-1),
		Month:   types.NewMonth(2026, 8),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetPlannedNegative)
}

func (suite *TestSuiteStandard) TestBudgetName() {
	category := suite.createTestCategory(models.Category{Name: "Transportasi"})

	tests := []struct {
		name     string
		budget   models.Budget
		expected string
	}{
		{
			"own name wins",
			models.Budget{Name: "Bensin", Category: &category},
			"Bensin",
		},
		{
			"category name as fallback",
			models.Budget{Category: &category},
			"Transportasi",
		},
		{
			"unnamed and uncategorized",
			models.Budget{},
			models.NoCategoryName,
		},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.expected, tt.budget.BudgetName(), tt.name)
	}
}

func (suite *TestSuiteStandard) TestBudgetMonthRoundTrip() {
	month := types.NewMonth(2026, 8)

	budget := suite.createTestBudget(models.Budget{
		Name:  "Makan",
		Month: month,
	})

	var loaded models.Budget
	err := models.DB.First(&loaded, budget.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), month.Equal(loaded.Month), "expected %s, got %s", month, loaded.Month)
}
