package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fi-rise/backend/internal/cache"
	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Prefix of all cache keys for resources.
const resourceCachePrefix = "resources:"

// RegisterResourceRoutes registers the routes for resources with
// the RouterGroup that is passed.
func (co Controller) RegisterResourceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetResources)

	r.OPTIONS("/:id", httputil.OptionsGet)
	r.GET("/:id", co.GetResource)

	r.OPTIONS("/:id/bookmark", httputil.OptionsPost)
	r.POST("/:id/bookmark", co.ToggleBookmark)
}

// ResourceQueryFilter contains the filters for the resource list.
type ResourceQueryFilter struct {
	Type       models.ResourceType `form:"type" binding:"omitempty,oneof=employment housing financial education health legal community"`
	Bookmarked *bool               `form:"bookmarked"`
	Name       string              `form:"name" binding:"max=100"`
}

func (f ResourceQueryFilter) model() storage.ResourceFilter {
	filter := storage.ResourceFilter{
		Bookmarked: f.Bookmarked,
		Name:       f.Name,
	}
	if f.Type != "" {
		filter.Type = &f.Type
	}
	return filter
}

func (f ResourceQueryFilter) cacheKey() string {
	bookmarked := "any"
	if f.Bookmarked != nil {
		bookmarked = strconv.FormatBool(*f.Bookmarked)
	}
	return fmt.Sprintf("list:%s:%s:%s", f.Type, bookmarked, f.Name)
}

// @Summary		List resources
// @Description	Returns the local support resources
// @Tags			Resources
// @Produce		json
// @Success		200			{array}		models.Resource
// @Failure		400			{object}	validationError
// @Failure		500			{object}	httpError
// @Param			type		query		string	false	"Filter by type"
// @Param			bookmarked	query		bool	false	"Filter by bookmark"
// @Param			name		query		string	false	"Filter by name. Supports * wildcards, e.g. *training*"
// @Router			/resources [get]
func (co Controller) GetResources(c *gin.Context) {
	var query ResourceQueryFilter
	if !bindQuery(c, &query) {
		return
	}

	ctx := c.Request.Context()
	resources, err := cache.LoadVersioned(ctx, co.cache(), resourceCachePrefix, query.cacheKey(), func() ([]models.Resource, error) {
		return co.Store.ListResources(ctx, query.model())
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resources)
}

// @Summary		Get resource
// @Description	Returns a specific resource
// @Tags			Resources
// @Produce		json
// @Success		200	{object}	models.Resource
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/resources/{id} [get]
func (co Controller) GetResource(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	resource, err := cache.LoadVersioned(ctx, co.cache(), resourceCachePrefix, strconv.FormatUint(uint64(id), 10), func() (models.Resource, error) {
		return co.Store.GetResource(ctx, id)
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resource)
}

// @Summary		Toggle bookmark
// @Description	Bookmarks the resource if it is not bookmarked, removes the bookmark otherwise
// @Tags			Resources
// @Produce		json
// @Success		200	{object}	models.Resource
// @Failure		400	{object}	validationError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as integer"
// @Router			/resources/{id}/bookmark [post]
func (co Controller) ToggleBookmark(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	resource, err := co.Store.ToggleBookmark(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}

	// Bumping the version retires lists that were loaded before the
	// toggle but are written to the cache after it.
	if _, err := co.cache().Bump(ctx, resourceCachePrefix); err != nil {
		log.Warn().Err(err).Msg("could not bump the resource cache version")
	}

	if err := co.cache().Invalidate(ctx, resourceCachePrefix); err != nil {
		log.Warn().Err(err).Msg("could not invalidate the resource cache")
	}

	c.JSON(http.StatusOK, resource)
}
