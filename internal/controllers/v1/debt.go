package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/httputil"
	"github.com/hematwoi/backend/internal/models"
	hw_uuid "github.com/hematwoi/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterDebtRoutes registers the routes for Debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}
}

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	UserID  uuid.UUID         `json:"userId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the user owning the debt
	Title   string            `json:"title" example:"Cicilan motor" default:""`              // Title of the debt
	Amount  decimal.Decimal   `json:"amount" example:"850000" minimum:"0"`                   // The amount due
	DueDate *time.Time        `json:"dueDate" example:"2026-09-05T00:00:00Z"`                // When the debt is due
	Status  models.DebtStatus `json:"status" example:"due" default:"due"`                    // One of due, overdue, paid
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		UserID:  editable.UserID,
		Title:   editable.Title,
		Amount:  editable.Amount,
		DueDate: editable.DueDate,
		Status:  editable.Status,
	}
}

// Debt is the representation of a Debt in API v1.
type Debt struct {
	models.DefaultModel
	DebtEditable
}

func newDebt(model models.Debt) Debt {
	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			UserID:  model.UserID,
			Title:   model.DisplayName(),
			Amount:  model.Amount,
			DueDate: model.DueDate,
			Status:  model.Status,
		},
	}
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"`                                                          // List of Debts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtCreateResponse struct {
	Data  []DebtResponse `json:"data"`                                                          // List of the created Debts or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (d *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DebtResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Data  *Debt   `json:"data"`                                                          // Data for the Debt
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebtQueryFilter struct {
	UserID hw_uuid.UUID `form:"userId"`                     // By ID of the user
	Status string       `form:"status"`                     // By status
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first Debt returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of Debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		UserID: f.UserID.UUID,
		Status: models.DebtStatus(f.Status),
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{})
}

// @Summary		Create debts
// @Description	Creates new debts
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var editables []DebtEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := DebtCreateResponse{}

	for _, editable := range editables {
		debt := editable.model()

		err := models.DB.Create(&debt).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDebt(debt)
		r.Data = append(r.Data, DebtResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List debts
// @Description	Returns a list of debts
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		500	{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			userId	query	string	false	"Filter by user"
// @Param			status	query	string	false	"Filter by status"
// @Param			offset	query	uint	false	"The offset of the first Debt returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Debts to return. Defaults to 50."
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("due_date ASC").
		Where(filter.model(), queryFields...)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var debts []models.Debt
	err := q.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Debt, 0)
	for _, debt := range debts {
		apiResources = append(apiResources, newDebt(debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	apiResource := newDebt(debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}

// @Summary		Update debt
// @Description	Update an existing debt. Only values to be updated need to be specified.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Param			id	path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body	DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var editable DebtEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	apiResource := newDebt(debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&debt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
