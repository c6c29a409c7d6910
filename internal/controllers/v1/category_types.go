package v1

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name     string              `json:"name" example:"Groceries" default:""`              // Name of the category, unique per user
	Kind     models.CategoryKind `json:"kind" example:"EXPENSE" default:"EXPENSE"`         // INCOME or EXPENSE
	Note     string              `json:"note" example:"Supermarket and bakery" default:""` // Notes about the category
	Archived bool                `json:"archived" example:"true" default:"false"`          // Is the category archived?
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID:   userID,
		Name:     editable.Name,
		Kind:     editable.Kind,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions of this category
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?category=3b1ea324-d438-4419-882a-2fc91d71772f"`           // Budgets for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(url string, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:     model.Name,
			Kind:     model.Kind,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Budgets:      fmt.Sprintf("%s/v1/budgets?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name     string              `form:"name" filterField:"false"`   // By name
	Kind     models.CategoryKind `form:"kind"`                       // By kind
	Note     string              `form:"note" filterField:"false"`   // By note
	Archived bool                `form:"archived"`                   // Is the Category archived?
	Search   string              `form:"search" filterField:"false"` // By string in name or note
	Offset   uint                `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int                 `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model(userID uuid.UUID) (models.Category, error) {
	if f.Kind != "" && f.Kind != models.KindIncome && f.Kind != models.KindExpense {
		return models.Category{}, errCategoryKindInvalid
	}

	return models.Category{
		UserID:   userID,
		Kind:     f.Kind,
		Archived: f.Archived,
	}, nil
}
