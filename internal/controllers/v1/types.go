package v1

import (
	"time"

	hw_uuid "github.com/hematwoi/backend/internal/uuid"
)

type URIID struct {
	ID hw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2026-07"` // Year and month in YYYY-MM format
}

// QueryUser scopes a request to one user. The backend has no own auth
// layer; the hosted auth service in front of it owns identity.
type QueryUser struct {
	UserID hw_uuid.UUID `form:"userId" format:"UUID"` // ID of the user
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
