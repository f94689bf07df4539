package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/hematwoi/backend/internal/controllers/v1"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{
			Type:   models.TransactionTypeExpense,
			Amount: decimal.NewFromInt(25000),
			Note:   "Nasi goreng",
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Nasi goreng", response.Data[0].Data.Note)
	assert.True(suite.T(), response.Data[0].Data.Amount.Equal(decimal.NewFromInt(25000)))
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidType() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{
			Type:   "donation",
			Amount: decimal.NewFromInt(25000),
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsCreateMixedErrors() {
	// The first transaction is fine, the second references a category
	// that does not exist. The response carries both results and the
	// status of the worst error.
	categoryID := uuid.New()

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5000000)},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(25000), CategoryID: &categoryID},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 2) {
		return
	}
	assert.Nil(suite.T(), response.Data[0].Error)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidBody() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/transactions", `{ "amount": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	userID := uuid.New()
	category := suite.createTestCategory(v1.CategoryEditable{UserID: userID, Name: "Makan"})

	for i := 1; i <= 3; i++ {
		suite.createTestTransaction(v1.TransactionEditable{
			UserID:     userID,
			Amount:     decimal.NewFromInt(int64(i) * 10000),
			CategoryID: &category.ID,
		})
	}
	suite.createTestTransaction(v1.TransactionEditable{
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(99999),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsListFilterType() {
	userID := uuid.New()
	suite.createTestTransaction(v1.TransactionEditable{UserID: userID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5000000)})
	suite.createTestTransaction(v1.TransactionEditable{UserID: userID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(25000)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?userId=%s&type=income", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), models.TransactionTypeIncome, response.Data[0].Type)
}

func (suite *TestSuiteStandard) TestTransactionsListFilterDates() {
	userID := uuid.New()

	suite.createTestTransaction(v1.TransactionEditable{
		UserID: userID,
		Amount: decimal.NewFromInt(10000),
		Date:   time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(v1.TransactionEditable{
		UserID: userID,
		Amount: decimal.NewFromInt(20000),
		Date:   time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		query  string
		length int
	}{
		{"fromDate=2026-08-15", 1},
		{"untilDate=2026-08-15", 1},
		{"fromDate=2026-08-01&untilDate=2026-08-31", 2},
		{"fromDate=2026-08-20&untilDate=2026-08-20", 1},
		{"untilDate=2026-08-09", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?userId=%s&%s", userID, tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.length)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListFilterNote() {
	userID := uuid.New()
	suite.createTestTransaction(v1.TransactionEditable{UserID: userID, Amount: decimal.NewFromInt(10000), Note: "Kopi susu"})
	suite.createTestTransaction(v1.TransactionEditable{UserID: userID, Amount: decimal.NewFromInt(20000), Note: "Bensin"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?userId=%s&note=kopi", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Kopi susu", response.Data[0].Note)
}

func (suite *TestSuiteStandard) TestTransactionsListPagination() {
	userID := uuid.New()
	for i := 0; i < 5; i++ {
		suite.createTestTransaction(v1.TransactionEditable{UserID: userID, Amount: decimal.NewFromInt(10000)})
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?userId=%s&offset=2&limit=2", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(25000)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), transaction.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGetNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(25000), Note: "Kopi"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), map[string]any{
		"note": "",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The zero value is written because the field was part of the body
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "", response.Data.Note)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(25000)), "amount must not change when it is not in the body")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalidBody() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(25000)})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), `{ "note": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(25000)})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
