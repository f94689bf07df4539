package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hematwoi/backend/internal/httputil"
	"github.com/hematwoi/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// resourceOptionsDetail returns the appropriate response for an HTTP
// OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Account | models.Category | models.Transaction | models.Budget | models.Debt | models.SubscriptionCharge | models.Goal | models.SalarySimulation](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// stringFilters applies the name, note and search filters to a query.
func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if slices.Contains(setFields, "Name") {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	}

	if slices.Contains(setFields, "Note") {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).
				Or(db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search))),
		)
	}

	return query
}
