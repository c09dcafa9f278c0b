package controllers

import (
	"net/http"

	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutPatchDelete)
		r.GET("/:id", co.GetCategory)
		r.PUT("/:id", co.UpdateCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// CategoryQueryFilter contains the filters for the category list.
type CategoryQueryFilter struct {
	UserID uint `form:"userId" binding:"omitempty,min=1"`
}

// CategoryEditable are the fields of a category that can be set by the client.
type CategoryEditable struct {
	Name string `json:"name" example:"Pets"`
	Icon string `json:"icon" example:"pets"`
}

// @Summary		List categories
// @Description	Returns the global categories and the categories of the user
// @Tags			Categories
// @Produce		json
// @Success		200		{array}		models.Category
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			userId	query		uint	false	"Only the effective user's own categories are ever returned"
// @Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if !bindQuery(c, &filter) {
		return
	}

	categories, err := co.Store.ListCategories(c.Request.Context(), storage.CategoryFilter{UserID: &co.UserID})
	if err != nil {
		writeError(c, err)
		return
	}

	// Categories of other users are never visible
	if filter.UserID != 0 && filter.UserID != co.UserID {
		globals := make([]models.Category, 0, len(categories))
		for _, category := range categories {
			if category.IsGlobal() {
				globals = append(globals, category)
			}
		}
		categories = globals
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	models.Category
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	category, err := co.Store.GetCategory(c.Request.Context(), id)
	if err == nil && !category.VisibleTo(co.UserID) {
		err = models.NotFound("category")
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Create category
// @Description	Creates a category owned by the user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	validationError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	p, err := httputil.Payload(c, validation.CategoryCreate)
	if err != nil {
		writeError(c, err)
		return
	}

	userID := co.UserID
	create := models.CategoryCreate{
		Name:   p.String("name"),
		Icon:   p.String("icon"),
		UserID: &userID,
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	category, err := co.Store.CreateCategory(c.Request.Context(), create)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ownedCategory returns the category if it belongs to the user.
// Global categories are read only.
func (co Controller) ownedCategory(c *gin.Context, id uint) (models.Category, error) {
	category, err := co.Store.GetCategory(c.Request.Context(), id)
	if err != nil {
		return models.Category{}, err
	}

	if !category.OwnedBy(co.UserID) {
		return models.Category{}, models.NotFound("category")
	}
	return category, nil
}

// @Summary		Update category
// @Description	Updates a category of the user. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{object}	validationError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		uint				true	"ID formatted as integer"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	p, err := httputil.Payload(c, validation.CategoryPatch)
	if err != nil {
		writeError(c, err)
		return
	}

	patch := models.CategoryPatch{
		Name: p.OptionalString("name"),
		Icon: p.OptionalString("icon"),
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	if _, err := co.ownedCategory(c, id); err != nil {
		writeError(c, err)
		return
	}

	category, err := co.Store.UpdateCategory(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Delete category
// @Description	Deletes a category of the user. Its expenses become uncategorized, its budgets are deleted.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.ownedCategory(c, id); err != nil {
		writeError(c, err)
		return
	}

	deleted, err := co.Store.DeleteCategory(c.Request.Context(), id)
	if err == nil && !deleted {
		err = models.NotFound("category")
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
