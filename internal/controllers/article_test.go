package controllers_test

import (
	"net/http"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetArticles() {
	r := suite.request(http.MethodGet, "http://example.com/api/articles", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var articles []models.Article
	test.DecodeResponse(suite.T(), &r, &articles)
	suite.Assert().Len(articles, 7)

	r = suite.request(http.MethodGet, "http://example.com/api/articles?category=credit", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &articles)
	suite.Require().Len(articles, 1)
	suite.Assert().Equal(models.ArticleCredit, articles[0].Category)

	r = suite.request(http.MethodGet, "http://example.com/api/articles?category=crypto", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetArticle() {
	r := suite.request(http.MethodGet, "http://example.com/api/articles/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var article models.Article
	test.DecodeResponse(suite.T(), &r, &article)
	suite.Assert().NotEmpty(article.Title)
	suite.Assert().NotEmpty(article.Content)

	r = suite.request(http.MethodGet, "http://example.com/api/articles/100", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no article matching your query", suite.decodeError(&r).Error)
}
