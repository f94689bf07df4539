package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hematwoi/backend/internal/digest"
	"github.com/hematwoi/backend/internal/httputil"
)

// RegisterDigestRoutes registers the routes for the daily digest with
// the RouterGroup that is passed.
//
// The digest service holds the cache and the refresh generation, so
// the handlers close over an injected instance instead of using a
// package level singleton.
func RegisterDigestRoutes(r *gin.RouterGroup, service *digest.Service) {
	r.OPTIONS("", OptionsDigest)
	r.GET("", GetDigest(service))

	r.OPTIONS("/refresh", OptionsDigestRefresh)
	r.POST("/refresh", RefreshDigest(service))
}

type DigestResponse struct {
	Data  *digest.Data `json:"data"`                                                    // The digest
	Error *string      `json:"error" example:"there is no Account matching your query"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Digest
// @Success		204
// @Router			/v1/digest [options]
func OptionsDigest(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Digest
// @Success		204
// @Router			/v1/digest/refresh [options]
func OptionsDigestRefresh(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Daily digest
// @Description	Returns the daily digest for a user. A cached digest is served as long as it is fresh.
// @Tags			Digest
// @Produce		json
// @Success		200	{object}	DigestResponse
// @Failure		400	{object}	DigestResponse
// @Failure		500	{object}	DigestResponse
// @Param			userId	query	string	false	"ID of the user, unset for the guest profile"
// @Router			/v1/digest [get]
func GetDigest(service *digest.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query QueryUser
		err := c.BindQuery(&query)
		if err != nil {
			s := errUserIDParameter.Error()
			c.JSON(http.StatusBadRequest, DigestResponse{
				Error: &s,
			})
			return
		}

		data, err := service.Get(c.Request.Context(), query.UserID.UUID)
		if err != nil {
			// Stale data with an error is still worth serving, the
			// client decides how prominently to mark it.
			s := err.Error()
			c.JSON(status(err), DigestResponse{
				Data:  &data,
				Error: &s,
			})
			return
		}

		c.JSON(http.StatusOK, DigestResponse{Data: &data})
	}
}

// @Summary		Recompute the daily digest
// @Description	Recomputes the digest for a user, bypassing the cache
// @Tags			Digest
// @Produce		json
// @Success		200	{object}	DigestResponse
// @Failure		400	{object}	DigestResponse
// @Failure		500	{object}	DigestResponse
// @Param			userId	query	string	false	"ID of the user, unset for the guest profile"
// @Router			/v1/digest/refresh [post]
func RefreshDigest(service *digest.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query QueryUser
		err := c.BindQuery(&query)
		if err != nil {
			s := errUserIDParameter.Error()
			c.JSON(http.StatusBadRequest, DigestResponse{
				Error: &s,
			})
			return
		}

		data, err := service.Refresh(c.Request.Context(), query.UserID.UUID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DigestResponse{
				Data:  &data,
				Error: &s,
			})
			return
		}

		c.JSON(http.StatusOK, DigestResponse{Data: &data})
	}
}
