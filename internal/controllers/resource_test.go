package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

// mapCache is an in-memory cache.Cache for tests.
type mapCache struct {
	values      map[string]any
	versions    map[string]int64
	invalidated []string
}

func (m *mapCache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := m.values[key]
	if !ok {
		return false, nil
	}

	switch d := dst.(type) {
	case *[]models.Resource:
		*d = v.([]models.Resource)
	case *models.Resource:
		*d = v.(models.Resource)
	case *[]models.Article:
		*d = v.([]models.Article)
	case *models.Article:
		*d = v.(models.Article)
	default:
		return false, nil
	}
	return true, nil
}

func (m *mapCache) Set(_ context.Context, key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mapCache) Invalidate(_ context.Context, prefix string) error {
	m.invalidated = append(m.invalidated, prefix)
	for k := range m.values {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.values, k)
		}
	}
	return nil
}

func (m *mapCache) Version(_ context.Context, namespace string) (int64, error) {
	return m.versions[namespace], nil
}

func (m *mapCache) Bump(_ context.Context, namespace string) (int64, error) {
	if m.versions == nil {
		m.versions = make(map[string]int64)
	}
	m.versions[namespace]++
	return m.versions[namespace], nil
}

func (m *mapCache) Close() error { return nil }

func (suite *TestSuiteStandard) TestGetResources() {
	tests := []struct {
		name  string
		url   string
		names []string
	}{
		{"All", "http://example.com/api/resources", []string{"Job Training Program", "Financial Counseling", "Community Action Agency"}},
		{"Type", "http://example.com/api/resources?type=housing", []string{"Community Action Agency"}},
		{"Name glob", "http://example.com/api/resources?name=*counsel*", []string{"Financial Counseling"}},
		{"Name glob case insensitive", "http://example.com/api/resources?name=JOB*", []string{"Job Training Program"}},
		{"Not bookmarked", "http://example.com/api/resources?bookmarked=false", []string{"Job Training Program", "Financial Counseling", "Community Action Agency"}},
		{"Bookmarked", "http://example.com/api/resources?bookmarked=true", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var resources []models.Resource
			test.DecodeResponse(t, &r, &resources)

			names := make([]string, 0, len(resources))
			for _, r := range resources {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestGetResourcesInvalidType() {
	r := suite.request(http.MethodGet, "http://example.com/api/resources?type=casino", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("type", suite.decodeError(&r).Fields[0].Field)
}

func (suite *TestSuiteStandard) TestGetResource() {
	r := suite.request(http.MethodGet, "http://example.com/api/resources/2", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var resource models.Resource
	test.DecodeResponse(suite.T(), &r, &resource)
	suite.Assert().Equal(models.ResourceFinancial, resource.Type)
	suite.Require().NotNil(resource.Distance)
	suite.Assert().InDelta(5.7, *resource.Distance, 0.001)

	r = suite.request(http.MethodGet, "http://example.com/api/resources/99", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestToggleBookmark() {
	cache := &mapCache{values: make(map[string]any)}
	suite.co.Cache = cache

	r := suite.request(http.MethodGet, "http://example.com/api/resources?bookmarked=true", nil)
	suite.Assert().Equal("[]", r.Body.String())

	r = suite.request(http.MethodPost, "http://example.com/api/resources/1/bookmark", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var resource models.Resource
	test.DecodeResponse(suite.T(), &r, &resource)
	suite.Assert().True(resource.Bookmarked)
	suite.Assert().Equal([]string{"resources:"}, cache.invalidated)

	// The cached list must not be served after the toggle
	r = suite.request(http.MethodGet, "http://example.com/api/resources?bookmarked=true", nil)
	var resources []models.Resource
	test.DecodeResponse(suite.T(), &r, &resources)
	suite.Require().Len(resources, 1)
	suite.Assert().Equal(uint(1), resources[0].ID)

	r = suite.request(http.MethodPost, "http://example.com/api/resources/1/bookmark", nil)
	test.DecodeResponse(suite.T(), &r, &resource)
	suite.Assert().False(resource.Bookmarked)
}

func (suite *TestSuiteStandard) TestToggleBookmarkLateCacheWrite() {
	cache := &mapCache{values: make(map[string]any)}
	suite.co.Cache = cache

	r := suite.request(http.MethodGet, "http://example.com/api/resources?bookmarked=true", nil)
	suite.Assert().Equal("[]", r.Body.String())
	suite.Require().Contains(cache.values, "resources:0:list::true:")

	r = suite.request(http.MethodPost, "http://example.com/api/resources/1/bookmark", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(int64(1), cache.versions["resources:"])

	// A list loaded before the toggle is written after the invalidation
	cache.values["resources:0:list::true:"] = []models.Resource{}

	r = suite.request(http.MethodGet, "http://example.com/api/resources?bookmarked=true", nil)
	var resources []models.Resource
	test.DecodeResponse(suite.T(), &r, &resources)
	suite.Require().Len(resources, 1, "the list from before the toggle must not be served")
	suite.Assert().Equal(uint(1), resources[0].ID)
	suite.Assert().Contains(cache.values, "resources:1:list::true:")
}

func (suite *TestSuiteStandard) TestToggleBookmarkMissing() {
	r := suite.request(http.MethodPost, "http://example.com/api/resources/99/bookmark", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetResourceCached() {
	cache := &mapCache{values: make(map[string]any)}
	suite.co.Cache = cache

	r := suite.request(http.MethodGet, "http://example.com/api/resources/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(cache.values, "resources:0:1")

	// Served from the cache even when the store fails
	suite.CloseDB()
	r = suite.request(http.MethodGet, "http://example.com/api/resources/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
