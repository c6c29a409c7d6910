package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

type ownedResource interface {
	models.Category | models.CategoryRule | models.Budget | models.Transaction | models.Notification
}

// getResource returns the resource with the ID from the URI.
//
// Only resources of the logged in user are found.
func getResource[R ownedResource](c *gin.Context) (R, error) {
	var resource R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return resource, httputil.ErrInvalidUUID
	}

	err = models.DB.Where("user_id = ?", auth.CurrentUser(c).ID).First(&resource, uri.ID).Error
	return resource, err
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R ownedResource](c *gin.Context) {
	_, err := getResource[R](c)
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
