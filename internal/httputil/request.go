package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MaxBodySize is the maximum size of request bodies in bytes.
const MaxBodySize = 1 << 20

func limitBody(c *gin.Context) io.Reader {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)
	return c.Request.Body
}

func bodyError(c *gin.Context, err error) error {
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		return ErrRequestBodyTooBig
	case errors.Is(err, io.EOF):
		return ErrRequestBodyEmpty
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// BindData binds the JSON body of the request to data.
func BindData(c *gin.Context, data any) error {
	limitBody(c)

	if err := c.ShouldBindJSON(data); err != nil {
		return bodyError(c, err)
	}

	return nil
}
