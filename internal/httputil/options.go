package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// allow answers an OPTIONS request. OPTIONS is always allowed.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

func OptionsPost(c *gin.Context) {
	allow(c, http.MethodPost)
}

func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

func OptionsGetPatch(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch)
}

func OptionsGetDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodDelete)
}

func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}
