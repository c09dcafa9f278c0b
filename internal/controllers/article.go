package controllers

import (
	"fmt"
	"net/http"

	"github.com/fi-rise/backend/internal/cache"
	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes registers the routes for articles with
// the RouterGroup that is passed.
func (co Controller) RegisterArticleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetArticles)

	r.OPTIONS("/:id", httputil.OptionsGet)
	r.GET("/:id", co.GetArticle)
}

// ArticleQueryFilter contains the filters for the article list.
type ArticleQueryFilter struct {
	Category models.ArticleCategory `form:"category" binding:"omitempty,oneof=budgeting credit saving debt banking career taxes"`
}

// @Summary		List articles
// @Description	Returns the financial literacy articles
// @Tags			Articles
// @Produce		json
// @Success		200			{array}		models.Article
// @Failure		400			{object}	validationError
// @Failure		500			{object}	httpError
// @Param			category	query		string	false	"Filter by category"
// @Router			/articles [get]
func (co Controller) GetArticles(c *gin.Context) {
	var query ArticleQueryFilter
	if !bindQuery(c, &query) {
		return
	}

	var filter storage.ArticleFilter
	if query.Category != "" {
		filter.Category = &query.Category
	}

	ctx := c.Request.Context()
	articles, err := cache.Load(ctx, co.cache(), fmt.Sprintf("articles:list:%s", query.Category), func() ([]models.Article, error) {
		return co.Store.ListArticles(ctx, filter)
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

// @Summary		Get article
// @Description	Returns a specific article
// @Tags			Articles
// @Produce		json
// @Success		200	{object}	models.Article
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/articles/{id} [get]
func (co Controller) GetArticle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	article, err := cache.Load(ctx, co.cache(), fmt.Sprintf("articles:%d", id), func() (models.Article, error) {
		return co.Store.GetArticle(ctx, id)
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}
