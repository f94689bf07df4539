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

// RegisterSubscriptionChargeRoutes registers the routes for
// SubscriptionCharges with the RouterGroup that is passed.
func RegisterSubscriptionChargeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSubscriptionChargeList)
		r.GET("", GetSubscriptionCharges)
		r.POST("", CreateSubscriptionCharges)
	}

	{
		r.OPTIONS("/:id", OptionsSubscriptionChargeDetail)
		r.GET("/:id", GetSubscriptionCharge)
		r.PATCH("/:id", UpdateSubscriptionCharge)
		r.DELETE("/:id", DeleteSubscriptionCharge)
	}
}

// SubscriptionChargeEditable represents all user configurable parameters
type SubscriptionChargeEditable struct {
	UserID  uuid.UUID           `json:"userId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the user owning the charge
	Name    string              `json:"name" example:"Spotify" default:""`                     // Name of the subscription
	Amount  decimal.Decimal     `json:"amount" example:"54990" minimum:"0"`                    // The amount due
	DueDate *time.Time          `json:"dueDate" example:"2026-09-01T00:00:00Z"`                // When the charge is due
	Status  models.ChargeStatus `json:"status" example:"due" default:"due"`                    // One of due, overdue, paid
}

func (editable SubscriptionChargeEditable) model() models.SubscriptionCharge {
	return models.SubscriptionCharge{
		UserID:  editable.UserID,
		Name:    editable.Name,
		Amount:  editable.Amount,
		DueDate: editable.DueDate,
		Status:  editable.Status,
	}
}

// SubscriptionCharge is the representation of a SubscriptionCharge in
// API v1.
type SubscriptionCharge struct {
	models.DefaultModel
	SubscriptionChargeEditable
}

func newSubscriptionCharge(model models.SubscriptionCharge) SubscriptionCharge {
	return SubscriptionCharge{
		DefaultModel: model.DefaultModel,
		SubscriptionChargeEditable: SubscriptionChargeEditable{
			UserID:  model.UserID,
			Name:    model.DisplayName(),
			Amount:  model.Amount,
			DueDate: model.DueDate,
			Status:  model.Status,
		},
	}
}

type SubscriptionChargeListResponse struct {
	Data       []SubscriptionCharge `json:"data"`                                                          // List of SubscriptionCharges
	Error      *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination          `json:"pagination"`                                                    // Pagination information
}

type SubscriptionChargeCreateResponse struct {
	Data  []SubscriptionChargeResponse `json:"data"`                                                          // List of the created SubscriptionCharges or their respective error
	Error *string                      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *SubscriptionChargeCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SubscriptionChargeResponse{Error: &e})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubscriptionChargeResponse struct {
	Data  *SubscriptionCharge `json:"data"`                                                          // Data for the SubscriptionCharge
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubscriptionChargeQueryFilter struct {
	UserID hw_uuid.UUID `form:"userId"`                     // By ID of the user
	Status string       `form:"status"`                     // By status
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first SubscriptionCharge returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of SubscriptionCharges to return. Defaults to 50.
}

func (f SubscriptionChargeQueryFilter) model() models.SubscriptionCharge {
	return models.SubscriptionCharge{
		UserID: f.UserID.UUID,
		Status: models.ChargeStatus(f.Status),
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscription-charges [options]
func OptionsSubscriptionChargeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscription-charges/{id} [options]
func OptionsSubscriptionChargeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.SubscriptionCharge{})
}

// @Summary		Create subscription charges
// @Description	Creates new subscription charges
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		201		{object}	SubscriptionChargeCreateResponse
// @Failure		400		{object}	SubscriptionChargeCreateResponse
// @Failure		500		{object}	SubscriptionChargeCreateResponse
// @Param			charges	body		[]SubscriptionChargeEditable	true	"SubscriptionCharges"
// @Router			/v1/subscription-charges [post]
func CreateSubscriptionCharges(c *gin.Context) {
	var editables []SubscriptionChargeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionChargeCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := SubscriptionChargeCreateResponse{}

	for _, editable := range editables {
		charge := editable.model()

		err := models.DB.Create(&charge).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSubscriptionCharge(charge)
		r.Data = append(r.Data, SubscriptionChargeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List subscription charges
// @Description	Returns a list of subscription charges
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionChargeListResponse
// @Failure		500	{object}	SubscriptionChargeListResponse
// @Router			/v1/subscription-charges [get]
// @Param			userId	query	string	false	"Filter by user"
// @Param			status	query	string	false	"Filter by status"
// @Param			offset	query	uint	false	"The offset of the first SubscriptionCharge returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of SubscriptionCharges to return. Defaults to 50."
func GetSubscriptionCharges(c *gin.Context) {
	var filter SubscriptionChargeQueryFilter

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

	var charges []models.SubscriptionCharge
	err := q.Find(&charges).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionChargeListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]SubscriptionCharge, 0)
	for _, charge := range charges {
		apiResources = append(apiResources, newSubscriptionCharge(charge))
	}

	c.JSON(http.StatusOK, SubscriptionChargeListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get subscription charge
// @Description	Returns a specific subscription charge
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionChargeResponse
// @Failure		400	{object}	SubscriptionChargeResponse
// @Failure		404	{object}	SubscriptionChargeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscription-charges/{id} [get]
func GetSubscriptionCharge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeResponse{
			Error: &s,
		})
		return
	}

	var charge models.SubscriptionCharge
	err = models.DB.First(&charge, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSubscriptionCharge(charge)
	c.JSON(http.StatusOK, SubscriptionChargeResponse{Data: &apiResource})
}

// @Summary		Update subscription charge
// @Description	Update an existing subscription charge. Only values to be updated need to be specified.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200		{object}	SubscriptionChargeResponse
// @Failure		400		{object}	SubscriptionChargeResponse
// @Failure		404		{object}	SubscriptionChargeResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			charge	body		SubscriptionChargeEditable	true	"SubscriptionCharge"
// @Router			/v1/subscription-charges/{id} [patch]
func UpdateSubscriptionCharge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeResponse{
			Error: &s,
		})
		return
	}

	var charge models.SubscriptionCharge
	err = models.DB.First(&charge, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubscriptionChargeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeResponse{
			Error: &s,
		})
		return
	}

	var editable SubscriptionChargeEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&charge).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionChargeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSubscriptionCharge(charge)
	c.JSON(http.StatusOK, SubscriptionChargeResponse{Data: &apiResource})
}

// @Summary		Delete subscription charge
// @Description	Deletes a subscription charge
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscription-charges/{id} [delete]
func DeleteSubscriptionCharge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var charge models.SubscriptionCharge
	err = models.DB.First(&charge, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&charge).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
