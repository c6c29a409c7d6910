package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/budgeting"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

type BadgeListResponse struct {
	Data  []budgeting.BadgeProgress `json:"data"`                                                 // All badges with the progress of the user
	Error *string                   `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

// RegisterBadgeRoutes registers the routes for badges with
// the RouterGroup that is passed.
func (co Controller) RegisterBadgeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBadges)
	r.GET("", co.GetBadges)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Badges
// @Success		204
// @Router			/v1/badges [options]
func OptionsBadges(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get badges
// @Description	Returns all badges with the progress of the user towards them
// @Tags			Badges
// @Produce		json
// @Success		200	{object}	BadgeListResponse
// @Failure		500	{object}	BadgeListResponse
// @Router			/v1/badges [get]
func (co Controller) GetBadges(c *gin.Context) {
	user := auth.CurrentUser(c)

	counts, err := budgeting.CountMetrics(models.DB, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BadgeListResponse{
			Error: &s,
		})
		return
	}

	var unlocked []models.Badge
	err = models.DB.Where(&models.Badge{UserID: user.ID}).Find(&unlocked).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BadgeListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BadgeListResponse{
		Data: budgeting.Progress(counts, unlocked),
	})
}
