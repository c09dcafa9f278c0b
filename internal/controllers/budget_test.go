package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/router"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/test"
	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetBudgets() {
	tests := []struct {
		name string
		url  string
		len  int
	}{
		{"Current month", "http://example.com/api/budgets", 6},
		{"Explicit month", "http://example.com/api/budgets?month=9&year=2023", 6},
		{"Other month", "http://example.com/api/budgets?month=10&year=2023", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var budgets []models.Budget
			test.DecodeResponse(t, &r, &budgets)
			assert.Len(t, budgets, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestSetBudget() {
	body := map[string]any{"amount": "75.50", "categoryId": 7, "month": 10, "year": 2023}

	r := suite.request(http.MethodPost, "http://example.com/api/budgets", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	var created models.Budget
	test.DecodeResponse(suite.T(), &r, &created)

	body["amount"] = 90
	r = suite.request(http.MethodPost, "http://example.com/api/budgets", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var updated models.Budget
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal(created.ID, updated.ID)
	suite.Assert().True(decimal.NewFromInt(90).Equal(updated.Amount))

	budgets, err := suite.co.Store.ListBudgets(suite.T().Context(), storage.BudgetFilter{UserID: 1, Month: types.NewMonth(2023, 10)})
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 1)
}

func (suite *TestSuiteStandard) TestSetBudgetConcurrent() {
	url, _ := url.Parse(test.BaseURL)
	r, teardown, err := router.Config(url)
	defer teardown()
	suite.Require().Nil(err)
	router.AttachRoutes(suite.co, r.Group("/"))

	var wg sync.WaitGroup
	codes := make(chan int, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "http://example.com/api/budgets", strings.NewReader(`{"amount": "40", "categoryId": 8, "month": 9, "year": 2023}`))
			r.ServeHTTP(recorder, req)
			codes <- recorder.Code
		}()
	}
	wg.Wait()
	close(codes)

	created := 0
	for code := range codes {
		suite.Assert().Contains([]int{http.StatusCreated, http.StatusOK}, code)
		if code == http.StatusCreated {
			created++
		}
	}
	suite.Assert().Equal(1, created)

	budgets, err := suite.co.Store.ListBudgets(suite.T().Context(), storage.BudgetFilter{UserID: 1, Month: types.NewMonth(2023, 9)})
	suite.Require().Nil(err)

	count := 0
	for _, b := range budgets {
		if b.CategoryID == 8 {
			count++
		}
	}
	suite.Assert().Equal(1, count)
}

func (suite *TestSuiteStandard) TestSetBudgetInvalid() {
	tests := []struct {
		name   string
		body   any
		fields []string
	}{
		{"Overflowing category", `{"amount": "10", "categoryId": 18446744073709551617, "month": 11, "year": 2023}`, []string{"categoryId"}},
		{"Ranges", map[string]any{"amount": -1, "categoryId": 0, "month": 13, "year": 1969}, []string{"amount", "categoryId", "month", "year"}},
		{"Missing", map[string]any{"amount": 10}, []string{"categoryId", "month", "year"}},
		{"Unknown category", map[string]any{"amount": 10, "categoryId": 99, "month": 1, "year": 2024}, []string{"categoryId"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, "http://example.com/api/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var body errorBody
			test.DecodeResponse(t, &r, &body)
			assert.Equal(t, tt.fields, fieldNames(body.Fields))
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	r := suite.request(http.MethodGet, "http://example.com/api/budgets/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "http://example.com/api/budgets/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/api/budgets/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetOfOtherUser() {
	co := suite.co
	co.UserID = 2

	r := test.Request(suite.T(), co, http.MethodGet, "http://example.com/api/budgets/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), co, http.MethodGet, "http://example.com/api/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("[]", r.Body.String())
}
