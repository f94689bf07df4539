package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/hematwoi/backend/internal/controllers/v1"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:    "Dompet",
		Type:    models.AccountTypeCash,
		Balance: decimal.NewFromInt(750000),
	})

	assert.Equal(suite.T(), "Dompet", account.Name)
	assert.True(suite.T(), account.EffectiveBalance.Equal(decimal.NewFromInt(750000)))
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidType() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/accounts", []v1.AccountEditable{
		{Name: "Saham", Type: "stocks"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsTypeDefaults() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Lainnya"})
	assert.Equal(suite.T(), models.AccountTypeOther, account.Type)
}

func (suite *TestSuiteStandard) TestAccountsListFilterName() {
	userID := uuid.New()
	suite.createTestAccount(v1.AccountEditable{UserID: userID, Name: "Dompet utama"})
	suite.createTestAccount(v1.AccountEditable{UserID: userID, Name: "Rekening gaji", Type: models.AccountTypeBank})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?userId=%s&name=dompet", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Dompet utama", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestAccountsListFilterArchived() {
	userID := uuid.New()
	suite.createTestAccount(v1.AccountEditable{UserID: userID, Name: "Aktif"})
	suite.createTestAccount(v1.AccountEditable{UserID: userID, Name: "Arsip", Archived: true})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?userId=%s&archived=true", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Arsip", response.Data[0].Name)

	// The explicit zero value filters for unarchived accounts
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?userId=%s&archived=false", userID), "")
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Aktif", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Dompet"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/accounts/%s", account.ID), map[string]any{
		"name": "Dompet baru",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Dompet baru", response.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Dompet"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsGetDatabaseClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
