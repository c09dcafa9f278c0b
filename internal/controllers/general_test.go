package controllers_test

import (
	"net/http"
	"testing"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestHealthz() {
	r := suite.request(http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.CloseDB()
	r = suite.request(http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
}

func (suite *TestSuiteStandard) TestClosedStore() {
	suite.CloseDB()

	for _, url := range []string{
		"http://example.com/api/expenses",
		"http://example.com/api/goals",
		"http://example.com/api/months",
		"http://example.com/api/categories",
	} {
		r := suite.request(http.MethodGet, url, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
		suite.Assert().Equal(models.ErrGeneral.Error(), suite.decodeError(&r).Error)
	}
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/api/users", "OPTIONS, POST"},
		{"/api/users/current", "OPTIONS, GET"},
		{"/api/categories", "OPTIONS, GET, POST"},
		{"/api/categories/1", "OPTIONS, GET, PUT, PATCH, DELETE"},
		{"/api/expenses", "OPTIONS, GET, POST"},
		{"/api/expenses/recent", "OPTIONS, GET"},
		{"/api/expenses/1", "OPTIONS, GET, PUT, PATCH, DELETE"},
		{"/api/goals/1", "OPTIONS, GET, PUT, PATCH, DELETE"},
		{"/api/budgets", "OPTIONS, GET, POST"},
		{"/api/budgets/1", "OPTIONS, GET, DELETE"},
		{"/api/months", "OPTIONS, GET"},
		{"/api/resources", "OPTIONS, GET"},
		{"/api/resources/1/bookmark", "OPTIONS, POST"},
		{"/api/articles/1", "OPTIONS, GET"},
		{"/healthz", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	r := suite.request(http.MethodPut, "http://example.com/api/budgets/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
