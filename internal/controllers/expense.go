package controllers

import (
	"context"
	"net/http"

	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/types"
	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 5

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
		r.OPTIONS("/recent", httputil.OptionsGet)
		r.GET("/recent", co.GetRecentExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutPatchDelete)
		r.GET("/:id", co.GetExpense)
		r.PUT("/:id", co.UpdateExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// ExpenseQueryFilter contains the filters for the expense list.
type ExpenseQueryFilter struct {
	MonthQuery
	CategoryID uint `form:"categoryId" binding:"omitempty,min=1"`
}

// RecentQuery limits the number of recent expenses.
type RecentQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ExpenseEditable are the fields of an expense that can be set by the client.
type ExpenseEditable struct {
	Description string `json:"description" example:"Grocery Store"`
	Amount      string `json:"amount" example:"78.25"`
	Date        string `json:"date" example:"2023-09-15"`
	CategoryID  *uint  `json:"categoryId" example:"2"`
}

// @Summary		List expenses
// @Description	Returns the expenses of the user, most recent first
// @Tags			Expenses
// @Produce		json
// @Success		200			{array}		models.Expense
// @Failure		400			{object}	validationError
// @Failure		500			{object}	httpError
// @Param			month		query		int		false	"Month, 1 to 12"
// @Param			year		query		int		false	"Year. Defaults to the current year if a month is set."
// @Param			categoryId	query		uint	false	"Filter by category ID"
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var query ExpenseQueryFilter
	if !bindQuery(c, &query) {
		return
	}

	month, err := query.window(co.now(), types.Month{})
	if err != nil {
		writeError(c, err)
		return
	}

	filter := storage.ExpenseFilter{
		UserID: co.UserID,
		Month:  month,
	}
	if query.CategoryID != 0 {
		filter.CategoryID = &query.CategoryID
	}

	expenses, err := co.Store.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary		Recent expenses
// @Description	Returns the most recent expenses of the user
// @Tags			Expenses
// @Produce		json
// @Success		200		{array}		models.Expense
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			limit	query		int	false	"Maximum number of expenses to return. Defaults to 5."
// @Router			/expenses/recent [get]
func (co Controller) GetRecentExpenses(c *gin.Context) {
	var query RecentQuery
	if !bindQuery(c, &query) {
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultRecentLimit
	}

	expenses, err := co.Store.ListExpenses(c.Request.Context(), storage.ExpenseFilter{
		UserID: co.UserID,
		Limit:  query.Limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// ownedExpense returns the expense if it belongs to the user.
func (co Controller) ownedExpense(ctx context.Context, id uint) (models.Expense, error) {
	expense, err := co.Store.GetExpense(ctx, id)
	if err != nil {
		return models.Expense{}, err
	}

	if expense.UserID != co.UserID {
		return models.Expense{}, models.NotFound("expense")
	}
	return expense, nil
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Expense
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	expense, err := co.ownedExpense(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Create expense
// @Description	Creates an expense for the user
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Expense
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	p, err := httputil.Payload(c, validation.ExpenseCreate)
	if err != nil {
		writeError(c, err)
		return
	}

	create := models.ExpenseCreate{
		Description: p.String("description"),
		Amount:      p.Amount("amount", false),
		Date:        p.Date("date"),
		CategoryID:  p.OptionalID("categoryId"),
		UserID:      co.UserID,
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	if create.CategoryID != nil {
		if err := co.checkCategory(c.Request.Context(), "categoryId", *create.CategoryID); err != nil {
			writeError(c, err)
			return
		}
	}

	expense, err := co.Store.CreateExpense(c.Request.Context(), create)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// @Summary		Update expense
// @Description	Updates an expense. Only values to be updated need to be specified. A categoryId of null removes the category.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Expense
// @Failure		400		{object}	validationError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID formatted as integer"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	p, err := httputil.Payload(c, validation.ExpensePatch)
	if err != nil {
		writeError(c, err)
		return
	}

	patch := models.ExpensePatch{
		Description: p.OptionalString("description"),
		Date:        p.OptionalDate("date"),
	}
	if p.Has("amount") {
		amount := p.Amount("amount", false)
		patch.Amount = &amount
	}
	if p.IsNull("categoryId") {
		patch.CategoryID = models.Null[uint]()
	} else if categoryID := p.OptionalID("categoryId"); categoryID != nil {
		patch.CategoryID = models.Some(*categoryID)
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := co.ownedExpense(ctx, id); err != nil {
		writeError(c, err)
		return
	}

	if patch.CategoryID.Value != nil {
		if err := co.checkCategory(ctx, "categoryId", *patch.CategoryID.Value); err != nil {
			writeError(c, err)
			return
		}
	}

	expense, err := co.Store.UpdateExpense(ctx, id, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := co.ownedExpense(ctx, id); err != nil {
		writeError(c, err)
		return
	}

	deleted, err := co.Store.DeleteExpense(ctx, id)
	if err == nil && !deleted {
		err = models.NotFound("expense")
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
