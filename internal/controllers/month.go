package controllers

import (
	"net/http"

	"github.com/fi-rise/backend/internal/aggregation"
	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetMonth)
}

// Month is the budget overview for one month.
type Month struct {
	aggregation.Overview
	Currency  string         `json:"currency" example:"USD"`
	Formatted MonthFormatted `json:"formatted"`
}

// MonthFormatted contains the totals of a month formatted for display.
type MonthFormatted struct {
	TotalBudget string `json:"totalBudget" example:"$1,500.00"`
	TotalSpent  string `json:"totalSpent" example:"$833.82"`
	Remaining   string `json:"remaining" example:"$666.18"`
}

// @Summary		Month overview
// @Description	Returns spending per category and budget usage of the user for a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	Month
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			month	query		int	false	"Month, 1 to 12. Defaults to the current month."
// @Param			year	query		int	false	"Year. Defaults to the current year."
// @Router			/months [get]
func (co Controller) GetMonth(c *gin.Context) {
	var query MonthQuery
	if !bindQuery(c, &query) {
		return
	}

	now := co.now()
	month, err := query.window(now, types.MonthOf(now))
	if err != nil {
		writeError(c, err)
		return
	}

	var (
		budgets    []models.Budget
		expenses   []models.Expense
		categories []models.Category
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		budgets, err = co.Store.ListBudgets(ctx, storage.BudgetFilter{UserID: co.UserID, Month: month})
		return
	})
	g.Go(func() (err error) {
		expenses, err = co.Store.ListExpenses(ctx, storage.ExpenseFilter{UserID: co.UserID, Month: month})
		return
	})
	g.Go(func() (err error) {
		categories, err = co.Store.ListCategories(ctx, storage.CategoryFilter{UserID: &co.UserID})
		return
	})

	if err := g.Wait(); err != nil {
		writeError(c, err)
		return
	}

	overview := aggregation.MonthOverview(month, budgets, expenses, categories)
	c.JSON(http.StatusOK, Month{
		Overview: overview,
		Currency: co.Formatter.Currency(),
		Formatted: MonthFormatted{
			TotalBudget: co.Formatter.Format(overview.TotalBudget),
			TotalSpent:  co.Formatter.Format(overview.TotalSpent),
			Remaining:   co.Formatter.Format(overview.TotalBudget.Sub(overview.TotalSpent)),
		},
	})
}
