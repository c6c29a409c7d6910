package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	v1 "github.com/moneywise/backend/internal/controllers/v1"
	"github.com/moneywise/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// body encodes a request body. Strings and readers are sent as they
// are, everything else is encoded as JSON.
func body(t *testing.T, b any) io.Reader {
	switch v := b.(type) {
	case nil:
		return http.NoBody
	case string:
		return strings.NewReader(v)
	case io.Reader:
		return v
	default:
		encoded, err := json.Marshal(v)
		require.Nil(t, err, "request body could not be encoded")
		return bytes.NewReader(encoded)
	}
}

// Request sends a request to a router configured with the API_URL
// environment variable and all routes attached.
func Request(co v1.Controller, t *testing.T, method, reqURL string, b any, headers ...map[string]string) httptest.ResponseRecorder {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.Nil(t, err, "router could not be configured")

	router.AttachRoutes(co, r.Group("/"))

	req, err := http.NewRequest(method, reqURL, body(t, b))
	require.Nil(t, err)

	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return *recorder
}

// DecodeResponse decodes the JSON body of a response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	require.Nil(t, err, "response %q could not be decoded into %T, request ID %s", r.Body.String(), target, r.Header().Get("x-request-id"))
}

// DecodeError returns the error message of an error response.
func DecodeError(t *testing.T, s []byte) string {
	var e struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(s, &e); err != nil {
		assert.Fail(t, "response is not valid JSON", "%s", s)
	}

	return e.Error
}

// AssertHTTPStatus fails the test immediately if the response status is
// none of the expected ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expected ...int) {
	require.Contains(t, expected, r.Code, "unexpected HTTP status, request ID %s, body: %s", r.Header().Get("x-request-id"), r.Body.String())
}

// Authorization returns the header map for a bearer token.
func Authorization(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
