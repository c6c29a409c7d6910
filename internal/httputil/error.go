package httputil

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidBody       = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty  = errors.New("the request body must not be empty")
	ErrRequestBodyTooBig = errors.New("the request body is too large")
	ErrInvalidUUID       = errors.New("the specified resource ID is not a valid UUID")
	ErrMethodNotAllowed  = errors.New("this HTTP method is not allowed for the endpoint you called")
)

// Error is the body of responses for requests that failed before
// reaching a resource handler.
type Error struct {
	Message string `json:"error" example:"you need to log in to access this resource"`
}

func NewError(err error) Error {
	return Error{Message: err.Error()}
}

// Abort stops the handler chain and responds with the status and the error.
func Abort(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, NewError(err))
}
