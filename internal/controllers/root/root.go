package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Health check, returns 204 when the database is reachable
	Version string `json:"version" example:"https://example.com/api/version"`      // Version and build information
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	Auth    string `json:"auth" example:"https://example.com/api/v1/auth"`         // Registration, login and the current user
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // All v1 resources
}

func newLinks(base string) Links {
	return Links{
		Docs:    base + "/docs/index.html",
		Healthz: base + "/healthz",
		Version: base + "/version",
		Metrics: base + "/metrics",
		Auth:    base + "/v1/auth",
		V1:      base + "/v1",
	}
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Links: newLinks(c.GetString(string(models.DBContextURL)))})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
