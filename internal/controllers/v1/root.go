package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Auth          string `json:"auth" example:"https://example.com/api/v1/auth/me"`                 // URL of the logged in user
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of Category collection endpoint
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"` // URL of Category Rule collection endpoint
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`    // URL of Transaction collection endpoint
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`              // URL of Budget collection endpoint
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`          // URL of the Dashboard endpoint
	Notifications string `json:"notifications" example:"https://example.com/api/v1/notifications"`  // URL of Notification collection endpoint
	Badges        string `json:"badges" example:"https://example.com/api/v1/badges"`                // URL of the Badge list
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the data export
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Auth:          url + "/auth/me",
			Categories:    url + "/categories",
			CategoryRules: url + "/category-rules",
			Transactions:  url + "/transactions",
			Budgets:       url + "/budgets",
			Dashboard:     url + "/dashboard",
			Notifications: url + "/notifications",
			Badges:        url + "/badges",
			Export:        url + "/export",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
