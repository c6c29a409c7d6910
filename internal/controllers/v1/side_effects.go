package v1

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/budgeting"
	"github.com/moneywise/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// refreshBudgets applies the reset policy to all budgets of the user and
// creates notifications for crossed thresholds. Errors are logged and never
// fail the request.
func (co Controller) refreshBudgets(c *gin.Context, user models.User) {
	notifications, err := budgeting.Refresh(c.Request.Context(), models.DB, co.Mailer, user, now())
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("user", user.ID.String()).Err(err).Msg("budget refresh")
		return
	}

	if len(notifications) > 0 {
		log.Debug().Str("request-id", requestid.Get(c)).Int("count", len(notifications)).Msg("budget alerts")
	}
}

// unlockBadges unlocks all badges the user reached. Errors are logged
// and never fail the request.
func (co Controller) unlockBadges(c *gin.Context, user models.User) {
	badges, err := budgeting.EvaluateBadges(models.DB, user.ID, now())
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("user", user.ID.String()).Err(err).Msg("badge evaluation")
		return
	}

	for _, badge := range badges {
		log.Debug().Str("request-id", requestid.Get(c)).Str("badge", badge.Key).Msg("badge unlocked")
	}
}
