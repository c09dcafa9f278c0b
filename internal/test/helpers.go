// Package test contains helpers for tests.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/fi-rise/backend/internal/controllers"
	"github.com/fi-rise/backend/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BaseURL is the public URL of the server in tests.
const BaseURL = "http://example.com"

// TmpFile returns a unique path in a temporary directory that is removed
// when the test finishes.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String()+".db")
}

// Now returns the fixed time used as "now" in tests, 2023-09-20 12:00 UTC.
func Now() time.Time {
	return time.Date(2023, 9, 20, 12, 0, 0, 0, time.UTC)
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// body can be a string, which is sent as is, or any value that is encoded
// as JSON. nil sends no body.
func Request(t *testing.T, co controllers.Controller, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	case *bytes.Buffer:
		buf = b
	default:
		data, err := json.Marshal(b)
		require.Nil(t, err, "Request body could not be marshalled")
		buf = bytes.NewBuffer(data)
	}

	baseURL, _ := url.Parse(BaseURL)
	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.Nil(t, err, "Router could not be initialized")

	router.AttachRoutes(co, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, buf)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
