package v1

import (
	mw_uuid "github.com/moneywise/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

type URIID struct {
	ID mw_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type QueryMonth struct {
	Month string `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// listLimit returns the limit for list endpoints. Defaults to 50.
func listLimit(setFields []string, limit int) int {
	if slices.Contains(setFields, "Limit") {
		return limit
	}
	return 50
}
