package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createCategory(name string) models.Category {
	r := suite.request(http.MethodPost, "http://example.com/api/categories", map[string]any{
		"name": name,
		"icon": "pets",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var category models.Category
	test.DecodeResponse(suite.T(), &r, &category)
	return category
}

func (suite *TestSuiteStandard) TestGetCategories() {
	own := suite.createCategory("Pets")

	other := uint(2)
	_, err := suite.co.Store.CreateCategory(suite.T().Context(), models.CategoryCreate{Name: "Hidden", Icon: "lock", UserID: &other})
	suite.Require().Nil(err)

	tests := []struct {
		name string
		url  string
		len  int
		own  bool
	}{
		{"Default", "http://example.com/api/categories", 9, true},
		{"Own user", "http://example.com/api/categories?userId=1", 9, true},
		{"Other user", "http://example.com/api/categories?userId=2", 8, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var categories []models.Category
			test.DecodeResponse(t, &r, &categories)
			assert.Len(t, categories, tt.len)

			ids := make([]uint, 0, len(categories))
			for _, c := range categories {
				ids = append(ids, c.ID)
				assert.NotEqual(t, "Hidden", c.Name)
			}

			if tt.own {
				assert.Contains(t, ids, own.ID)
			} else {
				assert.NotContains(t, ids, own.ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategoriesInvalidUserID() {
	r := suite.request(http.MethodGet, "http://example.com/api/categories?userId=abc", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCategoryOwnedByUser() {
	category := suite.createCategory("Pets")
	suite.Require().NotNil(category.UserID)
	suite.Assert().Equal(uint(1), *category.UserID)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalid() {
	r := suite.request(http.MethodPost, "http://example.com/api/categories", map[string]any{"name": "   "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal([]string{"icon", "name"}, fieldNames(suite.decodeError(&r).Fields))
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	category := suite.createCategory("Pets")

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		r := suite.request(method, fmt.Sprintf("http://example.com/api/categories/%d", category.ID), map[string]any{"name": "Animals " + method})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var updated models.Category
		test.DecodeResponse(suite.T(), &r, &updated)
		suite.Assert().Equal("Animals "+method, updated.Name)
		suite.Assert().Equal("pets", updated.Icon)
	}
}

func (suite *TestSuiteStandard) TestUpdateGlobalCategory() {
	r := suite.request(http.MethodPatch, "http://example.com/api/categories/1", map[string]any{"name": "Rent"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, "http://example.com/api/categories/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	category, err := suite.co.Store.GetCategory(suite.T().Context(), 1)
	suite.Require().Nil(err)
	suite.Assert().Equal("Housing", category.Name)
}

func (suite *TestSuiteStandard) TestGetCategoryOfOtherUser() {
	other := uint(2)
	category, err := suite.co.Store.CreateCategory(suite.T().Context(), models.CategoryCreate{Name: "Hidden", Icon: "lock", UserID: &other})
	suite.Require().Nil(err)

	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/api/categories/%d", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createCategory("Pets")

	r := suite.request(http.MethodPost, "http://example.com/api/expenses", map[string]any{
		"description": "Vet",
		"amount":      "120.00",
		"date":        "2023-09-18",
		"categoryId":  category.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	var expense models.Expense
	test.DecodeResponse(suite.T(), &r, &expense)

	r = suite.request(http.MethodPost, "http://example.com/api/budgets", map[string]any{
		"amount":     50,
		"categoryId": category.ID,
		"month":      9,
		"year":       2023,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/api/categories/%d", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/api/categories/%d", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	ctx := suite.T().Context()
	stored, err := suite.co.Store.GetExpense(ctx, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Nil(stored.CategoryID)

	budgets, err := suite.co.Store.ListBudgets(ctx, storage.BudgetFilter{UserID: 1})
	suite.Require().Nil(err)
	for _, b := range budgets {
		suite.Assert().NotEqual(category.ID, b.CategoryID)
	}
}
