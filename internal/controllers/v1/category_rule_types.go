package v1

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
	mw_uuid "github.com/moneywise/backend/internal/uuid"
)

// CategoryRuleEditable represents all user configurable parameters
type CategoryRuleEditable struct {
	Priority   uint      `json:"priority" example:"3" default:"0"`                          // Rules are evaluated in ascending priority
	Match      string    `json:"match" example:"*Bakery*"`                                  // Pattern the note is matched against. Supports * as wildcard
	CategoryID uuid.UUID `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // ID of the category to set
}

func (editable CategoryRuleEditable) model(userID uuid.UUID) models.CategoryRule {
	return models.CategoryRule{
		UserID:     userID,
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: editable.CategoryID,
	}
}

type CategoryRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The category rule itself
}

type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(url string, model models.CategoryRule) CategoryRule {
	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority:   model.Priority,
			Match:      model.Match,
			CategoryID: model.CategoryID,
		},
		Links: CategoryRuleLinks{
			Self: fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of Category Rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of the created Category Rules or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the Category Rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleQueryFilter struct {
	Priority   uint         `form:"priority"`                   // By priority
	Match      string       `form:"match" filterField:"false"`  // By match
	CategoryID mw_uuid.UUID `form:"category"`                   // By ID of the Category
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Category Rule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Category Rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model(userID uuid.UUID) models.CategoryRule {
	return models.CategoryRule{
		UserID:     userID,
		Priority:   f.Priority,
		CategoryID: f.CategoryID.UUID,
	}
}
