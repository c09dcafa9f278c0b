package controllers

import (
	"context"
	"net/http"

	"github.com/fi-rise/backend/internal/aggregation"
	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/types"
	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutPatchDelete)
		r.GET("/:id", co.GetGoal)
		r.PUT("/:id", co.UpdateGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

// Goal is a savings goal with its progress.
type Goal struct {
	models.Goal
	Progress int    `json:"progress" example:"45"`
	Status   string `json:"status" example:"45% Complete"`
}

func newGoal(g models.Goal) Goal {
	return Goal{
		Goal:     g,
		Progress: aggregation.GoalProgress(g),
		Status:   aggregation.GoalStatus(g),
	}
}

// GoalQueryFilter contains the filters for the goal list.
type GoalQueryFilter struct {
	Completed *bool `form:"completed"`
}

// GoalEditable are the fields of a goal that can be set by the client.
type GoalEditable struct {
	Name          string  `json:"name" example:"Emergency Fund"`
	TargetAmount  string  `json:"targetAmount" example:"1000"`
	CurrentAmount string  `json:"currentAmount" example:"450"`
	TargetDate    *string `json:"targetDate" example:"2023-10-30"`
	Completed     bool    `json:"completed" example:"false"`
}

// @Summary		List goals
// @Description	Returns the goals of the user, ordered by target date
// @Tags			Goals
// @Produce		json
// @Success		200			{array}		Goal
// @Failure		400			{object}	validationError
// @Failure		500			{object}	httpError
// @Param			completed	query		bool	false	"Filter by completion"
// @Router			/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var query GoalQueryFilter
	if !bindQuery(c, &query) {
		return
	}

	goals, err := co.Store.ListGoals(c.Request.Context(), storage.GoalFilter{
		UserID:    co.UserID,
		Completed: query.Completed,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, g := range goals {
		data = append(data, newGoal(g))
	}

	c.JSON(http.StatusOK, data)
}

func (co Controller) ownedGoal(ctx context.Context, id uint) (models.Goal, error) {
	goal, err := co.Store.GetGoal(ctx, id)
	if err != nil {
		return models.Goal{}, err
	}

	if goal.UserID != co.UserID {
		return models.Goal{}, models.NotFound("goal")
	}
	return goal, nil
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	Goal
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	goal, err := co.ownedGoal(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGoal(goal))
}

// @Summary		Create goal
// @Description	Creates a savings goal for the user
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	Goal
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	p, err := httputil.Payload(c, validation.GoalCreate)
	if err != nil {
		writeError(c, err)
		return
	}

	create := models.GoalCreate{
		Name:          p.String("name"),
		TargetAmount:  p.Amount("targetAmount", false),
		CurrentAmount: decimal.Zero,
		TargetDate:    p.OptionalDate("targetDate"),
		Completed:     p.Bool("completed"),
		UserID:        co.UserID,
	}
	if p.Has("currentAmount") {
		create.CurrentAmount = p.Amount("currentAmount", true)
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	goal, err := co.Store.CreateGoal(c.Request.Context(), create)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGoal(goal))
}

// @Summary		Update goal
// @Description	Updates a goal. Only values to be updated need to be specified. Goals are never completed automatically.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	Goal
// @Failure		400		{object}	validationError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID formatted as integer"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	p, err := httputil.Payload(c, validation.GoalPatch)
	if err != nil {
		writeError(c, err)
		return
	}

	patch := models.GoalPatch{
		Name: p.OptionalString("name"),
	}
	if p.Has("targetAmount") {
		amount := p.Amount("targetAmount", false)
		patch.TargetAmount = &amount
	}
	if p.Has("currentAmount") {
		amount := p.Amount("currentAmount", true)
		patch.CurrentAmount = &amount
	}
	if p.IsNull("targetDate") {
		patch.TargetDate = models.Null[types.Date]()
	} else if date := p.OptionalDate("targetDate"); date != nil {
		patch.TargetDate = models.Some(*date)
	}
	if p.Has("completed") {
		completed := p.Bool("completed")
		patch.Completed = &completed
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := co.ownedGoal(ctx, id); err != nil {
		writeError(c, err)
		return
	}

	goal, err := co.Store.UpdateGoal(ctx, id, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGoal(goal))
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := co.ownedGoal(ctx, id); err != nil {
		writeError(c, err)
		return
	}

	deleted, err := co.Store.DeleteGoal(ctx, id)
	if err == nil && !deleted {
		err = models.NotFound("goal")
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
