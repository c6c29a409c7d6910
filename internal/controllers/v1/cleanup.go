package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// Cleanup deletes all data of the logged in user
//
//	@Summary		Delete everything
//	@Description	Permanently deletes all categories, rules, budgets, transactions, notifications and badges of the user. The account itself is kept.
//	@Tags			v1
//	@Success		204
//	@Failure		400		{object}	httputil.Error
//	@Failure		401		{object}	httputil.Error
//	@Failure		500		{object}	httputil.Error
//	@Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httputil.NewError(errCleanupConfirmation))
		return
	}

	err = models.DeleteUserData(models.DB, auth.CurrentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
