package v1

import (
	"errors"
	"net/http"

	"github.com/hematwoi/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"an ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserIDParameter    = errors.New("the userId parameter must be set")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errTitleNotSet        = errors.New("the title parameter must be set")
)
