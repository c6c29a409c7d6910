package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/httputil"
)

type Response struct {
	Data Object `json:"data"`
}

type Object struct {
	Version   string `json:"version" example:"1.4.0"`                                     // Version of the moneywise backend
	GoVersion string `json:"goVersion" example:"go1.22.1"`                                // Go version the binary was built with
	Revision  string `json:"revision" example:"5c1a4f0e9d7cd2fa3b3d0d1a1d3b54bd2e5d7b31"` // VCS revision, empty when built without VCS information
}

// newObject collects the build information for the running binary.
func newObject(version string) Object {
	o := Object{
		Version:   version,
		GoVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return o
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			o.Revision = s.Value
		}
	}

	return o
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.GET("", Get(version))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the version of the backend and the build information
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(version string) gin.HandlerFunc {
	response := Response{Data: newObject(version)}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}
