package healthz

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.Error
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("database health check failed")
		c.JSON(http.StatusInternalServerError, httputil.NewError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
