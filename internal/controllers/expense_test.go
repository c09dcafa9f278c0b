package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/test"
	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createExpense(body map[string]any) models.Expense {
	r := suite.request(http.MethodPost, "http://example.com/api/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var expense models.Expense
	test.DecodeResponse(suite.T(), &r, &expense)
	return expense
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	r := suite.request(http.MethodGet, "http://example.com/api/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Require().Len(expenses, 5)

	for i := 1; i < len(expenses); i++ {
		suite.Assert().False(expenses[i-1].Date.Before(expenses[i].Date), "expenses are not ordered by date")
	}
	suite.Assert().Equal("Grocery Store", expenses[0].Description)
	suite.Assert().Equal("Rent", expenses[4].Description)
}

func (suite *TestSuiteStandard) TestGetExpensesFilter() {
	suite.createExpense(map[string]any{"description": "Books", "amount": 30, "date": "2023-08-31", "categoryId": 7})

	tests := []struct {
		name string
		url  string
		len  int
	}{
		{"September", "http://example.com/api/expenses?month=9&year=2023", 5},
		{"August", "http://example.com/api/expenses?month=8&year=2023", 1},
		{"Month in current year", "http://example.com/api/expenses?month=8", 1},
		{"Other year", "http://example.com/api/expenses?month=9&year=2022", 0},
		{"Category", "http://example.com/api/expenses?categoryId=2", 2},
		{"Category and month", "http://example.com/api/expenses?categoryId=7&month=9&year=2023", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var expenses []models.Expense
			test.DecodeResponse(t, &r, &expenses)
			assert.Len(t, expenses, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidFilter() {
	tests := []struct {
		name  string
		url   string
		field string
	}{
		{"Month too large", "http://example.com/api/expenses?month=13&year=2023", "month"},
		{"Year without month", "http://example.com/api/expenses?year=2023", "month"},
		{"Year too small", "http://example.com/api/expenses?month=1&year=1800", "year"},
		{"Category zero", "http://example.com/api/expenses?categoryId=0", "categoryId"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var body errorBody
			test.DecodeResponse(t, &r, &body)
			assert.Contains(t, fieldNames(body.Fields), tt.field)
		})
	}
}

func (suite *TestSuiteStandard) TestGetRecentExpenses() {
	suite.createExpense(map[string]any{"description": "Coffee", "amount": "3.50", "date": "2023-09-19"})

	tests := []struct {
		name   string
		url    string
		status int
		len    int
	}{
		{"Default limit", "http://example.com/api/expenses/recent", http.StatusOK, 5},
		{"Limit", "http://example.com/api/expenses/recent?limit=2", http.StatusOK, 2},
		{"Limit larger than count", "http://example.com/api/expenses/recent?limit=100", http.StatusOK, 6},
		{"Limit too small", "http://example.com/api/expenses/recent?limit=-1", http.StatusBadRequest, 0},
		{"Limit too large", "http://example.com/api/expenses/recent?limit=101", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			if tt.status != http.StatusOK {
				return
			}

			var expenses []models.Expense
			test.DecodeResponse(t, &r, &expenses)
			assert.Len(t, expenses, tt.len)
			assert.Equal(t, "Coffee", expenses[0].Description)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	expense := suite.createExpense(map[string]any{
		"description": "  Pharmacy  ",
		"amount":      "24.99",
		"date":        "2023-09-19",
		"categoryId":  5,
	})

	suite.Assert().Equal("Pharmacy", expense.Description)
	suite.Assert().True(decimal.RequireFromString("24.99").Equal(expense.Amount))
	suite.Assert().Equal(types.NewDate(2023, 9, 19), expense.Date)
	suite.Require().NotNil(expense.CategoryID)
	suite.Assert().Equal(uint(5), *expense.CategoryID)
	suite.Assert().Equal(uint(1), expense.UserID)
}

func (suite *TestSuiteStandard) TestCreateExpenseUncategorized() {
	expense := suite.createExpense(map[string]any{"description": "Gift", "amount": 15, "date": "2023-09-19", "categoryId": nil})
	suite.Assert().Nil(expense.CategoryID)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	tests := []struct {
		name   string
		body   any
		fields []string
	}{
		{"All fields", map[string]any{"description": "", "amount": -5, "date": "yesterday", "categoryId": 0}, []string{"amount", "categoryId", "date", "description"}},
		{"Missing", map[string]any{}, []string{"amount", "date", "description"}},
		{"Too many decimals", map[string]any{"description": "Fee", "amount": "1.999", "date": "2023-09-01"}, []string{"amount"}},
		{"Unknown category", map[string]any{"description": "Fee", "amount": "1.99", "date": "2023-09-01", "categoryId": 999}, []string{"categoryId"}},
		{"Impossible date", map[string]any{"description": "Fee", "amount": "1.99", "date": "2023-02-30"}, []string{"date"}},
		{"Overflowing category", `{"description": "Fee", "amount": "1.99", "date": "2023-09-01", "categoryId": 18446744073709551618}`, []string{"categoryId"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, "http://example.com/api/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var body errorBody
			test.DecodeResponse(t, &r, &body)
			assert.Equal(t, "validation failed", body.Error)
			assert.Equal(t, tt.fields, fieldNames(body.Fields))
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseBrokenBody() {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Empty", "", http.StatusBadRequest},
		{"Not JSON", "{description", http.StatusBadRequest},
		{"Array", "[]", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, "http://example.com/api/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	expense := suite.createExpense(map[string]any{"description": "Taxi", "amount": "18", "date": "2023-09-12", "categoryId": 3})
	url := fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID)

	r := suite.request(http.MethodPatch, url, map[string]any{"amount": "21.40"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(decimal.RequireFromString("21.40").Equal(updated.Amount))
	suite.Assert().Equal("Taxi", updated.Description)
	suite.Require().NotNil(updated.CategoryID)
	suite.Assert().Equal(uint(3), *updated.CategoryID)

	r = suite.request(http.MethodPut, url, map[string]any{"categoryId": nil})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Nil(updated.CategoryID)
	suite.Assert().True(decimal.RequireFromString("21.40").Equal(updated.Amount))
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	r := suite.request(http.MethodPatch, "http://example.com/api/expenses/1", map[string]any{"amount": 0, "description": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal([]string{"amount", "description"}, fieldNames(suite.decodeError(&r).Fields))
}

func (suite *TestSuiteStandard) TestExpenseOfOtherUser() {
	expense, err := suite.co.Store.CreateExpense(suite.T().Context(), models.ExpenseCreate{
		Description: "Private",
		Amount:      decimal.NewFromInt(10),
		Date:        types.NewDate(2023, 9, 2),
		UserID:      2,
	})
	suite.Require().Nil(err)
	url := fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID)

	r := suite.request(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	missing := suite.request(http.MethodGet, "http://example.com/api/expenses/9999", nil)
	suite.Assert().Equal(missing.Body.String(), r.Body.String(), "not owned and missing expenses must not be distinguishable")

	r = suite.request(http.MethodPatch, url, map[string]any{"amount": 1, "description": "Mine now"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodPut, url, map[string]any{"amount": 2, "categoryId": nil})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, url, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	stored, err := suite.co.Store.GetExpense(suite.T().Context(), expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Private", stored.Description)
	suite.Assert().True(decimal.NewFromInt(10).Equal(stored.Amount), "amount changed to %s", stored.Amount)
	suite.Assert().Equal(expense.Date.String(), stored.Date.String())
	suite.Assert().Equal(uint(2), stored.UserID)

	r = suite.request(http.MethodGet, "http://example.com/api/expenses", nil)
	suite.Assert().NotContains(r.Body.String(), "Private")
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	r := suite.request(http.MethodDelete, "http://example.com/api/expenses/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "http://example.com/api/expenses/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/api/expenses/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseInvalidID() {
	for _, id := range []string{"0", "abc", "-1"} {
		r := suite.request(http.MethodGet, "http://example.com/api/expenses/"+id, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}
