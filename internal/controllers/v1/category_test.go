package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/hematwoi/backend/internal/controllers/v1"
	"github.com/hematwoi/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Makan", Note: "Groceries and eating out"})

	assert.Equal(suite.T(), "Makan", category.Name)
	assert.Equal(suite.T(), "Groceries and eating out", category.Note)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateName() {
	userID := uuid.New()
	suite.createTestCategory(v1.CategoryEditable{UserID: userID, Name: "Makan"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{UserID: userID, Name: "Makan"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// The same name is fine for another user
	recorder = test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{UserID: uuid.New(), Name: "Makan"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestCategoriesListSearch() {
	userID := uuid.New()
	suite.createTestCategory(v1.CategoryEditable{UserID: userID, Name: "Makan", Note: "warung"})
	suite.createTestCategory(v1.CategoryEditable{UserID: userID, Name: "Transportasi", Note: "bensin dan parkir"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?userId=%s&search=bensin", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Transportasi", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Makan"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), map[string]any{
		"note": "warung dan kafe",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "warung dan kafe", response.Data.Note)
	assert.Equal(suite.T(), "Makan", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Makan"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
