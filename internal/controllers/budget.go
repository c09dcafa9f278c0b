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

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBudgets)
		r.POST("", co.SetBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetDelete)
		r.GET("/:id", co.GetBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// BudgetEditable are the fields of a budget that can be set by the client.
type BudgetEditable struct {
	Amount     string `json:"amount" example:"650"`
	CategoryID uint   `json:"categoryId" example:"1"`
	Month      int    `json:"month" example:"9"`
	Year       int    `json:"year" example:"2023"`
}

// @Summary		List budgets
// @Description	Returns the budgets of the user for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{array}		models.Budget
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			month	query		int	false	"Month, 1 to 12. Defaults to the current month."
// @Param			year	query		int	false	"Year. Defaults to the current year."
// @Router			/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
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

	budgets, err := co.Store.ListBudgets(c.Request.Context(), storage.BudgetFilter{
		UserID: co.UserID,
		Month:  month,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

func (co Controller) ownedBudget(ctx context.Context, id uint) (models.Budget, error) {
	budget, err := co.Store.GetBudget(ctx, id)
	if err != nil {
		return models.Budget{}, err
	}

	if budget.UserID != co.UserID {
		return models.Budget{}, models.NotFound("budget")
	}
	return budget, nil
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	models.Budget
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	budget, err := co.ownedBudget(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Set budget
// @Description	Sets the budget of the user for a category and month. Creates the budget if it does not exist yet, updates its amount otherwise.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Budget	"Updated"
// @Success		201		{object}	models.Budget	"Created"
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	p, err := httputil.Payload(c, validation.BudgetUpsert)
	if err != nil {
		writeError(c, err)
		return
	}

	create := models.BudgetCreate{
		Amount:     p.Amount("amount", false),
		CategoryID: p.ID("categoryId"),
		UserID:     co.UserID,
		Month:      p.Int("month"),
		Year:       p.Int("year"),
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := co.checkCategory(ctx, "categoryId", create.CategoryID); err != nil {
		writeError(c, err)
		return
	}

	budget, created, err := co.Store.UpsertBudget(ctx, create)
	if err != nil {
		writeError(c, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	c.JSON(code, budget)
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := co.ownedBudget(ctx, id); err != nil {
		writeError(c, err)
		return
	}

	deleted, err := co.Store.DeleteBudget(ctx, id)
	if err == nil && !deleted {
		err = models.NotFound("budget")
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
