package models_test

import (
	"github.com/hematwoi/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDebtStatusDefault() {
	debt := suite.createTestDebt(models.Debt{
		Title:  "Cicilan motor",
		Amount: decimal.NewFromInt(850000),
	})

	assert.Equal(suite.T(), models.DebtStatusDue, debt.Status)
}

func (suite *TestSuiteStandard) TestDebtStatusValidation() {
	err := models.DB.Create(&models.Debt{
		Title:  "Cicilan motor",
		Status: "forgiven",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrChargeStatusInvalid)
}

func (suite *TestSuiteStandard) TestDebtDisplayName() {
	tests := []struct {
		debt     models.Debt
		expected string
	}{
		{models.Debt{Name: "Pinjaman Andi", Title: "ignored"}, "Pinjaman Andi"},
		{models.Debt{Title: "Cicilan motor"}, "Cicilan motor"},
		{models.Debt{}, "Hutang"},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.expected, tt.debt.DisplayName())
	}
}

func (suite *TestSuiteStandard) TestSubscriptionChargeStatusDefault() {
	charge := suite.createTestSubscriptionCharge(models.SubscriptionCharge{
		Name:   "Spotify",
		Amount: decimal.NewFromInt(54990),
	})

	assert.Equal(suite.T(), models.ChargeStatusDue, charge.Status)
}

func (suite *TestSuiteStandard) TestSubscriptionChargeStatusValidation() {
	err := models.DB.Create(&models.SubscriptionCharge{
		Name:   "Spotify",
		Status: "cancelled",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrChargeStatusInvalid)
}

func (suite *TestSuiteStandard) TestSubscriptionChargeDisplayName() {
	tests := []struct {
		charge   models.SubscriptionCharge
		expected string
	}{
		{models.SubscriptionCharge{Name: "Spotify", Title: "ignored"}, "Spotify"},
		{models.SubscriptionCharge{Title: "Netflix"}, "Netflix"},
		{models.SubscriptionCharge{}, "Langganan"},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.expected, tt.charge.DisplayName())
	}
}
