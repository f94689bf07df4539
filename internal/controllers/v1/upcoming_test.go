package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/hematwoi/backend/internal/controllers/v1"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDebtsCreate() {
	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	debt := suite.createTestDebt(v1.DebtEditable{
		Title:   "Cicilan motor",
		Amount:  decimal.NewFromInt(850000),
		DueDate: &due,
	})

	assert.Equal(suite.T(), "Cicilan motor", debt.Title)
	assert.Equal(suite.T(), models.DebtStatusDue, debt.Status, "status must default to due")
}

func (suite *TestSuiteStandard) TestDebtsCreateInvalidStatus() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/debts", []v1.DebtEditable{
		{Title: "Cicilan motor", Amount: decimal.NewFromInt(850000), Status: "forgiven"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDebtsListFilterStatus() {
	userID := uuid.New()
	suite.createTestDebt(v1.DebtEditable{UserID: userID, Title: "Cicilan motor"})
	suite.createTestDebt(v1.DebtEditable{UserID: userID, Title: "Pinjaman", Status: models.DebtStatusPaid})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/debts?userId=%s&status=paid", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Pinjaman", response.Data[0].Title)
}

func (suite *TestSuiteStandard) TestDebtsUpdateStatus() {
	debt := suite.createTestDebt(v1.DebtEditable{Title: "Cicilan motor"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/debts/%s", debt.ID), map[string]any{
		"status": "paid",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.DebtStatusPaid, response.Data.Status)
}

func (suite *TestSuiteStandard) TestDebtsDelete() {
	debt := suite.createTestDebt(v1.DebtEditable{Title: "Cicilan motor"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/debts/%s", debt.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestSubscriptionChargesCreate() {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	charge := suite.createTestSubscriptionCharge(v1.SubscriptionChargeEditable{
		Name:    "Spotify",
		Amount:  decimal.NewFromInt(54990),
		DueDate: &due,
	})

	assert.Equal(suite.T(), "Spotify", charge.Name)
	assert.Equal(suite.T(), models.ChargeStatusDue, charge.Status, "status must default to due")
}

func (suite *TestSuiteStandard) TestSubscriptionChargesListFilterStatus() {
	userID := uuid.New()
	suite.createTestSubscriptionCharge(v1.SubscriptionChargeEditable{UserID: userID, Name: "Spotify"})
	suite.createTestSubscriptionCharge(v1.SubscriptionChargeEditable{UserID: userID, Name: "Netflix", Status: models.ChargeStatusOverdue})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/subscription-charges?userId=%s&status=overdue", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SubscriptionChargeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Netflix", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestSubscriptionChargesUpdate() {
	charge := suite.createTestSubscriptionCharge(v1.SubscriptionChargeEditable{Name: "Spotify"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/subscription-charges/%s", charge.ID), map[string]any{
		"amount": "64990",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SubscriptionChargeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(64990)))
}

func (suite *TestSuiteStandard) TestSubscriptionChargesDelete() {
	charge := suite.createTestSubscriptionCharge(v1.SubscriptionChargeEditable{Name: "Spotify"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/subscription-charges/%s", charge.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/subscription-charges/%s", charge.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
