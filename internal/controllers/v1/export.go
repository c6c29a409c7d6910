package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

type Export struct {
	models.Export
	Version    string    `json:"version" example:"1.4.0"`                   // Version of the backend that created the export
	ExportedAt time.Time `json:"exportedAt" example:"2024-03-12T08:30:00Z"` // Time of the export
}

type ExportResponse struct {
	Data  *Export `json:"data"`                                                 // The export
	Error *string `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

// RegisterExportRoutes registers the routes for the data export with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export data
// @Description	Exports all data of the user as JSON. The response is served as a file download.
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	user := auth.CurrentUser(c)

	data, err := models.ExportUser(models.DB, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &s,
		})
		return
	}

	exportedAt := now()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"moneywise-%s.json\"", exportedAt.Format("2006-01-02")))
	c.JSON(http.StatusOK, ExportResponse{
		Data: &Export{
			Export:     data,
			Version:    co.Version,
			ExportedAt: exportedAt,
		},
	})
}
