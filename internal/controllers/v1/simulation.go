package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/httputil"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/simulation"
	"github.com/hematwoi/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterSimulationRoutes registers the routes for salary simulations
// with the RouterGroup that is passed.
func RegisterSimulationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSimulationList)
		r.GET("", GetSimulations)
		r.POST("", CreateSimulation)
	}

	{
		r.OPTIONS("/auto-distribute", OptionsSimulationAutoDistribute)
		r.POST("/auto-distribute", AutoDistributeSimulation)
	}

	{
		r.OPTIONS("/draft", OptionsSimulationDraft)
		r.GET("/draft", GetSimulationDraft)
		r.PUT("/draft", PutSimulationDraft)
		r.DELETE("/draft", DeleteSimulationDraft)
	}

	{
		r.OPTIONS("/:id", OptionsSimulationDetail)
		r.GET("/:id", GetSimulation)
		r.PATCH("/:id", UpdateSimulation)
		r.DELETE("/:id", DeleteSimulation)
	}

	{
		r.OPTIONS("/:id/apply", OptionsSimulationApply)
		r.POST("/:id/apply", ApplySimulation)
	}

	{
		r.OPTIONS("/:id/duplicate", OptionsSimulationDuplicate)
		r.POST("/:id/duplicate", DuplicateSimulation)
	}
}

// SimulationItemEditable represents all user configurable parameters of
// one allocation row.
type SimulationItemEditable struct {
	CategoryID        *uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category, null for unassigned
	AllocationAmount  decimal.Decimal `json:"allocationAmount" example:"1500000" minimum:"0"`            // The allocated amount
	AllocationPercent decimal.Decimal `json:"allocationPercent" example:"25" minimum:"0" maximum:"100"`  // The allocated share of the salary
	Note              string          `json:"note" example:"Meal budget" default:""`                     // A note
	Locked            bool            `json:"locked" example:"false" default:"false"`                    // Locked rows keep their amount during auto-distribution
}

func (editable SimulationItemEditable) draftItem() simulation.DraftItem {
	return simulation.DraftItem{
		CategoryID:        editable.CategoryID,
		AllocationAmount:  editable.AllocationAmount,
		AllocationPercent: editable.AllocationPercent,
		Note:              editable.Note,
		Locked:            editable.Locked,
	}
}

func newSimulationItemEditable(item simulation.DraftItem) SimulationItemEditable {
	return SimulationItemEditable{
		CategoryID:        item.CategoryID,
		AllocationAmount:  item.AllocationAmount,
		AllocationPercent: item.AllocationPercent,
		Note:              item.Note,
		Locked:            item.Locked,
	}
}

// SimulationEditable represents all user configurable parameters
type SimulationEditable struct {
	UserID       uuid.UUID                `json:"userId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the user owning the simulation
	Title        string                   `json:"title" example:"Gaji September" default:""`             // Title of the simulation, unique per user and month
	SalaryAmount decimal.Decimal          `json:"salaryAmount" example:"6000000" minimum:"0"`            // The salary being distributed
	Month        types.Month              `json:"month" example:"2026-09-01T00:00:00Z"`                  // The month the simulation is for
	Note         string                   `json:"note" example:"" default:""`                            // A note
	Items        []SimulationItemEditable `json:"items"`                                                 // The allocation rows
}

func (editable SimulationEditable) model() models.SalarySimulation {
	return models.SalarySimulation{
		UserID:       editable.UserID,
		Title:        editable.Title,
		SalaryAmount: editable.SalaryAmount,
		Month:        editable.Month,
		Note:         editable.Note,
	}
}

func (editable SimulationEditable) draftItems() []simulation.DraftItem {
	items := make([]simulation.DraftItem, 0, len(editable.Items))
	for _, item := range editable.Items {
		items = append(items, item.draftItem())
	}

	return items
}

// Simulation is the representation of a SalarySimulation in API v1.
type Simulation struct {
	models.DefaultModel
	SimulationEditable

	Summary simulation.Summary `json:"summary"` // Totals derived from the allocation rows
}

func newSimulation(db *gorm.DB, model models.SalarySimulation, items []models.SalarySimulationItem) Simulation {
	draftItems := make([]simulation.DraftItem, 0, len(items))
	apiItems := make([]SimulationItemEditable, 0, len(items))

	for _, item := range items {
		draft := simulation.DraftItem{
			CategoryID:        item.CategoryID,
			AllocationAmount:  item.AllocationAmount,
			AllocationPercent: item.AllocationPercent,
			Note:              item.Note,
			Locked:            item.Locked,
		}

		draftItems = append(draftItems, draft)
		apiItems = append(apiItems, newSimulationItemEditable(draft))
	}

	// Planned budgets feed the over-budget markers. An error only
	// loses those markers, not the simulation itself.
	planned, _ := simulation.Weights(db, model.UserID, model.Month)

	return Simulation{
		DefaultModel: model.DefaultModel,
		SimulationEditable: SimulationEditable{
			UserID:       model.UserID,
			Title:        model.Title,
			SalaryAmount: model.SalaryAmount,
			Month:        model.Month,
			Note:         model.Note,
			Items:        apiItems,
		},
		Summary: simulation.Summarize(draftItems, model.SalaryAmount, planned),
	}
}

type SimulationListResponse struct {
	Data  []Simulation `json:"data"`                                                   // List of Simulations
	Error *string      `json:"error" example:"no simulation found for the given name"` // The error, if any occurred
}

type SimulationResponse struct {
	Data  *Simulation `json:"data"`                                                   // Data for the Simulation
	Error *string     `json:"error" example:"no simulation found for the given name"` // The error, if any occurred
}

type SimulationApplyResponse struct {
	Data  *simulation.ApplyResult `json:"data"`                                                   // Counts of updated budgets
	Error *string                 `json:"error" example:"no simulation found for the given name"` // The error, if any occurred
}

// SimulationDistributeRequest is the request body for the
// auto-distribute endpoint. The rows are distributed without being
// persisted.
type SimulationDistributeRequest struct {
	UserID       uuid.UUID                `json:"userId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the user, used to load budget weights
	Month        types.Month              `json:"month" example:"2026-09-01T00:00:00Z"`                  // The month whose budgets provide the weights
	SalaryAmount decimal.Decimal          `json:"salaryAmount" example:"6000000" minimum:"0"`            // The salary being distributed
	Items        []SimulationItemEditable `json:"items"`                                                 // The allocation rows
}

type SimulationDistributeResponse struct {
	Data  *SimulationDistributeData `json:"data"`                                               // The distributed rows
	Error *string                   `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type SimulationDistributeData struct {
	Items   []SimulationItemEditable `json:"items"`   // The rows after distribution
	Summary simulation.Summary       `json:"summary"` // Totals derived from the distributed rows
}

// SimulationDraft is the representation of an unsaved simulation.
type SimulationDraft struct {
	Title        string                   `json:"title" example:"Gaji September"`             // Title of the draft
	SalaryAmount decimal.Decimal          `json:"salaryAmount" example:"6000000" minimum:"0"` // The salary being distributed
	Month        types.Month              `json:"month" example:"2026-09-01T00:00:00Z"`       // The month the draft is for
	Note         string                   `json:"note" example:""`                            // A note
	Items        []SimulationItemEditable `json:"items"`                                      // The allocation rows
}

func (d SimulationDraft) draft() simulation.Draft {
	items := make([]simulation.DraftItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, item.draftItem())
	}

	return simulation.Draft{
		Title:        d.Title,
		SalaryAmount: d.SalaryAmount,
		Month:        d.Month,
		Note:         d.Note,
		Items:        items,
	}
}

func newSimulationDraft(draft simulation.Draft) SimulationDraft {
	items := make([]SimulationItemEditable, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, newSimulationItemEditable(item))
	}

	return SimulationDraft{
		Title:        draft.Title,
		SalaryAmount: draft.SalaryAmount,
		Month:        draft.Month,
		Note:         draft.Note,
		Items:        items,
	}
}

type SimulationDraftResponse struct {
	Data  *SimulationDraft `json:"data"`                                               // The draft, null when none is stored
	Error *string          `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// SimulationDuplicateRequest is the request body for duplicating a
// simulation.
type SimulationDuplicateRequest struct {
	Title string `json:"title" example:"Gaji September (copy)"` // Title for the copy
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Router			/v1/simulations [options]
func OptionsSimulationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/simulations/{id} [options]
func OptionsSimulationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var scenario models.SalarySimulation
	err = models.DB.First(&scenario, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Router			/v1/simulations/auto-distribute [options]
func OptionsSimulationAutoDistribute(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/simulations/{id}/apply [options]
func OptionsSimulationApply(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/simulations/{id}/duplicate [options]
func OptionsSimulationDuplicate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Router			/v1/simulations/draft [options]
func OptionsSimulationDraft(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List simulations
// @Description	Returns the simulations of a user, newest month first
// @Tags			Simulations
// @Produce		json
// @Success		200	{object}	SimulationListResponse
// @Failure		400	{object}	SimulationListResponse
// @Failure		500	{object}	SimulationListResponse
// @Param			userId	query	string	false	"Filter by user"
// @Param			month	query	string	false	"Simulations for this month in YYYY-MM format"
// @Router			/v1/simulations [get]
func GetSimulations(c *gin.Context) {
	var query struct {
		QueryUser
		Month string `form:"month"`
	}

	err := c.BindQuery(&query)
	if err != nil {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, SimulationListResponse{
			Error: &s,
		})
		return
	}

	var month types.Month
	if query.Month != "" {
		month, err = types.ParseMonth(query.Month)
		if err != nil {
			s := errMonthNotSetInQuery.Error()
			c.JSON(http.StatusBadRequest, SimulationListResponse{
				Error: &s,
			})
			return
		}
	}

	scenarios, err := simulation.ListScenarios(models.DB, query.UserID.UUID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationListResponse{
			Error: &s,
		})
		return
	}

	apiResources := make([]Simulation, 0, len(scenarios))
	for _, scenario := range scenarios {
		_, items, err := simulation.GetScenario(models.DB, scenario.UserID, scenario.ID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SimulationListResponse{
				Error: &s,
			})
			return
		}

		apiResources = append(apiResources, newSimulation(models.DB, scenario, items))
	}

	c.JSON(http.StatusOK, SimulationListResponse{Data: apiResources})
}

// @Summary		Create simulation
// @Description	Creates a new simulation with its allocation rows
// @Tags			Simulations
// @Accept			json
// @Produce		json
// @Success		201			{object}	SimulationResponse
// @Failure		400			{object}	SimulationResponse
// @Failure		500			{object}	SimulationResponse
// @Param			simulation	body		SimulationEditable	true	"Simulation"
// @Router			/v1/simulations [post]
func CreateSimulation(c *gin.Context) {
	var editable SimulationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	if editable.Title == "" {
		s := errTitleNotSet.Error()
		c.JSON(http.StatusBadRequest, SimulationResponse{
			Error: &s,
		})
		return
	}

	scenario := editable.model()
	err = simulation.CreateScenario(models.DB, &scenario, editable.draftItems())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	_, items, err := simulation.GetScenario(models.DB, scenario.UserID, scenario.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSimulation(models.DB, scenario, items)
	c.JSON(http.StatusCreated, SimulationResponse{Data: &apiResource})
}

// @Summary		Get simulation
// @Description	Returns a specific simulation with its allocation rows
// @Tags			Simulations
// @Produce		json
// @Success		200	{object}	SimulationResponse
// @Failure		400	{object}	SimulationResponse
// @Failure		404	{object}	SimulationResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			userId	query	string	false	"ID of the user, unset for the guest profile"
// @Router			/v1/simulations/{id} [get]
func GetSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	var query QueryUser
	_ = c.BindQuery(&query)

	scenario, items, err := simulation.GetScenario(models.DB, query.UserID.UUID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSimulation(models.DB, scenario, items)
	c.JSON(http.StatusOK, SimulationResponse{Data: &apiResource})
}

// @Summary		Update simulation
// @Description	Replaces a simulation and all of its allocation rows
// @Tags			Simulations
// @Accept			json
// @Produce		json
// @Success		200			{object}	SimulationResponse
// @Failure		400			{object}	SimulationResponse
// @Failure		404			{object}	SimulationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			simulation	body		SimulationEditable	true	"Simulation"
// @Router			/v1/simulations/{id} [patch]
func UpdateSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	var editable SimulationEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	scenario, _, err := simulation.GetScenario(models.DB, editable.UserID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	if editable.Title != "" {
		scenario.Title = editable.Title
	}
	if !editable.SalaryAmount.IsZero() {
		scenario.SalaryAmount = editable.SalaryAmount
	}
	if !editable.Month.IsZero() {
		scenario.Month = editable.Month
	}
	scenario.Note = editable.Note

	err = simulation.UpdateScenario(models.DB, &scenario, editable.draftItems())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	_, items, err := simulation.GetScenario(models.DB, scenario.UserID, scenario.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSimulation(models.DB, scenario, items)
	c.JSON(http.StatusOK, SimulationResponse{Data: &apiResource})
}

// @Summary		Delete simulation
// @Description	Deletes a simulation and its allocation rows
// @Tags			Simulations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			userId	query	string	false	"ID of the user, unset for the guest profile"
// @Router			/v1/simulations/{id} [delete]
func DeleteSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var query QueryUser
	_ = c.BindQuery(&query)

	err = simulation.DeleteScenario(models.DB, query.UserID.UUID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Apply simulation
// @Description	Writes the allocation rows of a simulation into the budgets of its month
// @Tags			Simulations
// @Produce		json
// @Success		200	{object}	SimulationApplyResponse
// @Failure		400	{object}	SimulationApplyResponse
// @Failure		404	{object}	SimulationApplyResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			userId	query	string	false	"ID of the user, unset for the guest profile"
// @Router			/v1/simulations/{id}/apply [post]
func ApplySimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationApplyResponse{
			Error: &s,
		})
		return
	}

	var query QueryUser
	_ = c.BindQuery(&query)

	result, err := simulation.ApplyScenario(models.DB, query.UserID.UUID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationApplyResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SimulationApplyResponse{Data: &result})
}

// @Summary		Duplicate simulation
// @Description	Creates a copy of a simulation with a new title
// @Tags			Simulations
// @Accept			json
// @Produce		json
// @Success		201		{object}	SimulationResponse
// @Failure		400		{object}	SimulationResponse
// @Failure		404		{object}	SimulationResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			userId	query		string						false	"ID of the user, unset for the guest profile"
// @Param			body	body		SimulationDuplicateRequest	true	"Title for the copy"
// @Router			/v1/simulations/{id}/duplicate [post]
func DuplicateSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	var query QueryUser
	_ = c.BindQuery(&query)

	var body SimulationDuplicateRequest
	err = httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	if body.Title == "" {
		s := errTitleNotSet.Error()
		c.JSON(http.StatusBadRequest, SimulationResponse{
			Error: &s,
		})
		return
	}

	copied, err := simulation.DuplicateScenario(models.DB, query.UserID.UUID, uri.ID.UUID, body.Title)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	_, items, err := simulation.GetScenario(models.DB, copied.UserID, copied.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSimulation(models.DB, copied, items)
	c.JSON(http.StatusCreated, SimulationResponse{Data: &apiResource})
}

// @Summary		Auto-distribute allocations
// @Description	Distributes the remaining salary over the unlocked rows, weighted by the budgets of the month. Nothing is persisted.
// @Tags			Simulations
// @Accept			json
// @Produce		json
// @Success		200		{object}	SimulationDistributeResponse
// @Failure		400		{object}	SimulationDistributeResponse
// @Param			request	body		SimulationDistributeRequest	true	"Rows to distribute"
// @Router			/v1/simulations/auto-distribute [post]
func AutoDistributeSimulation(c *gin.Context) {
	var request SimulationDistributeRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationDistributeResponse{
			Error: &s,
		})
		return
	}

	items := make([]simulation.DraftItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, item.draftItem())
	}

	weights, err := simulation.Weights(models.DB, request.UserID, request.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationDistributeResponse{
			Error: &s,
		})
		return
	}

	distributed := simulation.AutoDistribute(items, request.SalaryAmount, weights)

	apiItems := make([]SimulationItemEditable, 0, len(distributed))
	for _, item := range distributed {
		apiItems = append(apiItems, newSimulationItemEditable(item))
	}

	c.JSON(http.StatusOK, SimulationDistributeResponse{
		Data: &SimulationDistributeData{
			Items:   apiItems,
			Summary: simulation.Summarize(distributed, request.SalaryAmount, weights),
		},
	})
}

// @Summary		Get draft
// @Description	Returns the autosaved simulation draft of a user
// @Tags			Simulations
// @Produce		json
// @Success		200	{object}	SimulationDraftResponse
// @Failure		500	{object}	SimulationDraftResponse
// @Param			userId	query	string	false	"ID of the user, unset for the guest profile"
// @Router			/v1/simulations/draft [get]
func GetSimulationDraft(c *gin.Context) {
	var query QueryUser
	_ = c.BindQuery(&query)

	draft, ok, err := simulation.LoadDraft(models.DB, query.UserID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationDraftResponse{
			Error: &s,
		})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, SimulationDraftResponse{})
		return
	}

	data := newSimulationDraft(draft)
	c.JSON(http.StatusOK, SimulationDraftResponse{Data: &data})
}

// @Summary		Save draft
// @Description	Stores the autosaved simulation draft of a user, replacing any previous draft
// @Tags			Simulations
// @Accept			json
// @Produce		json
// @Success		200		{object}	SimulationDraftResponse
// @Failure		400		{object}	SimulationDraftResponse
// @Param			userId	query		string			false	"ID of the user, unset for the guest profile"
// @Param			draft	body		SimulationDraft	true	"Draft"
// @Router			/v1/simulations/draft [put]
func PutSimulationDraft(c *gin.Context) {
	var query QueryUser
	_ = c.BindQuery(&query)

	var body SimulationDraft
	err := httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationDraftResponse{
			Error: &s,
		})
		return
	}

	// A lost draft only loses convenience. The autosave must never
	// surface an error to the client, so the write error is logged and
	// dropped.
	err = simulation.SaveDraft(models.DB, query.UserID.UUID, body.draft())
	if err != nil {
		log.Debug().Err(err).Msg("draft autosave failed")
	}

	c.JSON(http.StatusOK, SimulationDraftResponse{Data: &body})
}

// @Summary		Delete draft
// @Description	Deletes the autosaved simulation draft of a user
// @Tags			Simulations
// @Success		204
// @Failure		500	{object}	httpError
// @Param			userId	query	string	false	"ID of the user, unset for the guest profile"
// @Router			/v1/simulations/draft [delete]
func DeleteSimulationDraft(c *gin.Context) {
	var query QueryUser
	_ = c.BindQuery(&query)

	err := simulation.ClearDraft(models.DB, query.UserID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
