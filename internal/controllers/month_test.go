package controllers_test

import (
	"net/http"

	"github.com/fi-rise/backend/internal/aggregation"
	"github.com/fi-rise/backend/internal/controllers"
	"github.com/fi-rise/backend/internal/test"
	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetMonth() {
	// An expense in another month must not change the overview
	r := suite.request(http.MethodPost, "http://example.com/api/expenses", map[string]any{"description": "Old", "amount": 500, "date": "2023-08-30", "categoryId": 2})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(http.MethodGet, "http://example.com/api/months", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var month controllers.Month
	test.DecodeResponse(suite.T(), &r, &month)

	suite.Assert().Equal(types.NewMonth(2023, 9), month.Month)
	suite.Assert().True(decimal.NewFromInt(1500).Equal(month.TotalBudget))
	suite.Assert().True(decimal.RequireFromString("833.82").Equal(month.TotalSpent), month.TotalSpent.String())
	suite.Assert().Equal(56, month.TotalPercentage)
	suite.Assert().False(month.Overspent)
	suite.Assert().Len(month.Budgets, 6)

	suite.Assert().Equal("USD", month.Currency)
	suite.Assert().Equal("$1,500.00", month.Formatted.TotalBudget)
	suite.Assert().Equal("$833.82", month.Formatted.TotalSpent)
	suite.Assert().Equal("$666.18", month.Formatted.Remaining)

	suite.Require().Len(month.Categories, 4)
	suite.Assert().Equal("Housing", month.Categories[0].Category)
	suite.Assert().Equal("Transportation", month.Categories[3].Category)

	spent := make(map[string]decimal.Decimal)
	for _, b := range month.Budgets {
		spent[b.Category] = b.Spent
	}
	suite.Assert().True(decimal.RequireFromString("90.75").Equal(spent["Food"]))
	suite.Assert().True(spent["Healthcare"].IsZero())
}

func (suite *TestSuiteStandard) TestGetMonthUncategorized() {
	r := suite.request(http.MethodPost, "http://example.com/api/expenses", map[string]any{"description": "Cash", "amount": "1000", "date": "2023-09-03"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(http.MethodGet, "http://example.com/api/months?month=9&year=2023", nil)
	var month controllers.Month
	test.DecodeResponse(suite.T(), &r, &month)

	suite.Assert().True(month.Overspent)
	suite.Assert().Equal(100, month.TotalPercentage)
	suite.Assert().Equal(aggregation.Uncategorized, month.Categories[0].CategoryID)
	suite.Assert().Equal("Uncategorized", month.Categories[0].Category)
	suite.Assert().False(month.Categories[0].Budgeted)
}

func (suite *TestSuiteStandard) TestGetMonthEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/api/months?month=1&year=2020", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var month controllers.Month
	test.DecodeResponse(suite.T(), &r, &month)
	suite.Assert().Empty(month.Budgets)
	suite.Assert().Empty(month.Categories)
	suite.Assert().True(month.TotalSpent.IsZero())
	suite.Assert().Equal(0, month.TotalPercentage)
}
