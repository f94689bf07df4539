package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/hematwoi/backend/internal/controllers/v1"
	"github.com/hematwoi/backend/internal/test"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSimulationsCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Makan"})

	simulation := suite.createTestSimulation(v1.SimulationEditable{
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
		Items: []v1.SimulationItemEditable{
			{CategoryID: &category.ID, AllocationAmount: decimal.NewFromInt(1500000)},
			{AllocationAmount: decimal.NewFromInt(3000000)},
		},
	})

	assert.Equal(suite.T(), "Gaji September", simulation.Title)
	assert.Len(suite.T(), simulation.Items, 2)
	assert.True(suite.T(), simulation.Summary.TotalAllocation.Equal(decimal.NewFromInt(4500000)))
	assert.True(suite.T(), simulation.Summary.RemainingSalary.Equal(decimal.NewFromInt(1500000)))
	assert.True(suite.T(), simulation.Summary.AllocationRatio.Equal(decimal.NewFromInt(75)))
}

func (suite *TestSuiteStandard) TestSimulationsCreateNoTitle() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/simulations", v1.SimulationEditable{
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "the title parameter must be set", *response.Error)
}

func (suite *TestSuiteStandard) TestSimulationsCreateDuplicateTitle() {
	userID := uuid.New()
	editable := v1.SimulationEditable{
		UserID:       userID,
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
	}
	suite.createTestSimulation(editable)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/simulations", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSimulationsList() {
	userID := uuid.New()
	suite.createTestSimulation(v1.SimulationEditable{UserID: userID, Title: "Gaji Agustus", Month: types.NewMonth(2026, 8)})
	suite.createTestSimulation(v1.SimulationEditable{UserID: userID, Title: "Gaji September", Month: types.NewMonth(2026, 9)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SimulationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations?userId=%s&month=2026-09", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Gaji September", response.Data[0].Title)
}

func (suite *TestSuiteStandard) TestSimulationsListInvalidMonth() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations?userId=%s&month=September", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSimulationsGet() {
	userID := uuid.New()
	simulation := suite.createTestSimulation(v1.SimulationEditable{UserID: userID, Title: "Gaji September", Month: types.NewMonth(2026, 9)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations/%s?userId=%s", simulation.ID, userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Gaji September", response.Data.Title)
}

func (suite *TestSuiteStandard) TestSimulationsGetOtherUser() {
	simulation := suite.createTestSimulation(v1.SimulationEditable{UserID: uuid.New(), Title: "Gaji September"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations/%s?userId=%s", simulation.ID, uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSimulationsUpdate() {
	userID := uuid.New()
	simulation := suite.createTestSimulation(v1.SimulationEditable{
		UserID:       userID,
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
		Items: []v1.SimulationItemEditable{
			{AllocationAmount: decimal.NewFromInt(1000000)},
		},
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/simulations/%s", simulation.ID), v1.SimulationEditable{
		UserID:       userID,
		SalaryAmount: decimal.NewFromInt(7000000),
		Items: []v1.SimulationItemEditable{
			{AllocationAmount: decimal.NewFromInt(2000000)},
			{AllocationAmount: decimal.NewFromInt(1500000)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Gaji September", response.Data.Title, "an empty title must keep the old one")
	assert.True(suite.T(), response.Data.SalaryAmount.Equal(decimal.NewFromInt(7000000)))
	assert.Len(suite.T(), response.Data.Items, 2, "items must be replaced, not merged")
}

func (suite *TestSuiteStandard) TestSimulationsDelete() {
	userID := uuid.New()
	simulation := suite.createTestSimulation(v1.SimulationEditable{UserID: userID, Title: "Gaji September"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/simulations/%s?userId=%s", simulation.ID, userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations/%s?userId=%s", simulation.ID, userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSimulationsDuplicate() {
	userID := uuid.New()
	simulation := suite.createTestSimulation(v1.SimulationEditable{
		UserID: userID,
		Title:  "Gaji September",
		Month:  types.NewMonth(2026, 9),
		Items: []v1.SimulationItemEditable{
			{AllocationAmount: decimal.NewFromInt(1000000)},
		},
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, fmt.Sprintf("http://example.com/v1/simulations/%s/duplicate?userId=%s", simulation.ID, userID), v1.SimulationDuplicateRequest{
		Title: "Gaji September (copy)",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Gaji September (copy)", response.Data.Title)
	assert.NotEqual(suite.T(), simulation.ID, response.Data.ID)
	assert.Len(suite.T(), response.Data.Items, 1)
}

func (suite *TestSuiteStandard) TestSimulationsDuplicateNoTitle() {
	userID := uuid.New()
	simulation := suite.createTestSimulation(v1.SimulationEditable{UserID: userID, Title: "Gaji September"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, fmt.Sprintf("http://example.com/v1/simulations/%s/duplicate?userId=%s", simulation.ID, userID), v1.SimulationDuplicateRequest{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSimulationsApply() {
	userID := uuid.New()
	category := suite.createTestCategory(v1.CategoryEditable{UserID: userID, Name: "Makan"})
	budget := suite.createTestBudget(v1.BudgetEditable{
		UserID:     userID,
		CategoryID: &category.ID,
		Planned:    decimal.NewFromInt(1000000),
		Month:      types.NewMonth(2026, 9),
	})

	simulation := suite.createTestSimulation(v1.SimulationEditable{
		UserID: userID,
		Title:  "Gaji September",
		Month:  types.NewMonth(2026, 9),
		Items: []v1.SimulationItemEditable{
			{CategoryID: &category.ID, AllocationAmount: decimal.NewFromInt(1250000)},
		},
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, fmt.Sprintf("http://example.com/v1/simulations/%s/apply?userId=%s", simulation.ID, userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SimulationApplyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 1, response.Data.MonthlyUpdated)
	assert.Equal(suite.T(), 0, response.Data.WeeklyUpdated)

	// The budget row now carries the applied allocation
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budgetResponse v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &budgetResponse)
	assert.True(suite.T(), budgetResponse.Data.Planned.Equal(decimal.NewFromInt(1250000)))
}

func (suite *TestSuiteStandard) TestSimulationsAutoDistribute() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/simulations/auto-distribute", v1.SimulationDistributeRequest{
		UserID:       uuid.New(),
		Month:        types.NewMonth(2026, 9),
		SalaryAmount: decimal.NewFromInt(3000000),
		Items: []v1.SimulationItemEditable{
			{AllocationAmount: decimal.NewFromInt(1000000), Locked: true},
			{},
			{},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SimulationDistributeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	items := response.Data.Items
	if !assert.Len(suite.T(), items, 3) {
		return
	}
	assert.True(suite.T(), items[0].AllocationAmount.Equal(decimal.NewFromInt(1000000)), "locked rows keep their amount")
	assert.True(suite.T(), items[1].AllocationAmount.Equal(decimal.NewFromInt(1000000)))
	assert.True(suite.T(), items[2].AllocationAmount.Equal(decimal.NewFromInt(1000000)))
	assert.True(suite.T(), response.Data.Summary.RemainingSalary.IsZero())
}

func (suite *TestSuiteStandard) TestSimulationsAutoDistributeEmptyBody() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/simulations/auto-distribute", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSimulationsDraftLifecycle() {
	userID := uuid.New()

	// No draft stored yet
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations/draft?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SimulationDraftResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data)

	// Save
	recorder = test.Request(suite.T(), suite.router, http.MethodPut, fmt.Sprintf("http://example.com/v1/simulations/draft?userId=%s", userID), v1.SimulationDraft{
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
		Items: []v1.SimulationItemEditable{
			{AllocationAmount: decimal.NewFromInt(1000000)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Load
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations/draft?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	if !assert.NotNil(suite.T(), response.Data) {
		return
	}
	assert.Equal(suite.T(), "Gaji September", response.Data.Title)
	assert.Len(suite.T(), response.Data.Items, 1)

	// Another user's draft is a separate setting
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations/draft?userId=%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var otherResponse v1.SimulationDraftResponse
	test.DecodeResponse(suite.T(), &recorder, &otherResponse)
	assert.Nil(suite.T(), otherResponse.Data)

	// Clear
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/simulations/draft?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/simulations/draft?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestSimulationsDraftSaveFailureIgnored() {
	suite.CloseDB()

	// Losing a draft only loses convenience, so a failed write must not
	// surface to the client
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, fmt.Sprintf("http://example.com/v1/simulations/draft?userId=%s", uuid.New()), v1.SimulationDraft{
		Title:        "Gaji September",
		SalaryAmount: decimal.NewFromInt(6000000),
		Month:        types.NewMonth(2026, 9),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SimulationDraftResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Gaji September", response.Data.Title)
}

func (suite *TestSuiteStandard) TestSimulationsGetInvalidID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/simulations/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
