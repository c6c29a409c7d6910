package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields reports which fields of a query filter struct are set in
// the query string of the URL.
//
// setFields contains the names of all fields that are set, also when set
// to the empty string. This allows filtering for zero values.
//
// queryFields is the subset that can be passed to gorm's Where directly.
// Fields tagged with filterField:"false" are handled by the caller, e.g.
// date ranges or LIKE searches.
func GetURLFields(u *url.URL, filter any) (queryFields []any, setFields []string) {
	query := u.Query()

	for _, field := range reflect.VisibleFields(reflect.Indirect(reflect.ValueOf(filter)).Type()) {
		param := field.Tag.Get("form")
		if param == "" || !query.Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of the fields of resource that are
// present in the JSON body of the request.
//
// The body is restored after reading, so this must be called before
// binding the body.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, err := io.ReadAll(limitBody(c))
	if err != nil {
		return nil, bodyError(c, err)
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var sent map[string]json.RawMessage
	if err := json.Unmarshal(body, &sent); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("body fields")
		return nil, ErrInvalidBody
	}

	fields := []any{}
	for _, field := range reflect.VisibleFields(reflect.Indirect(reflect.ValueOf(resource)).Type()) {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if _, ok := sent[name]; ok && name != "" && name != "-" {
			fields = append(fields, field.Name)
		}
	}

	return fields, nil
}
