// Package controllers implements the HTTP handlers of the fi-rise API.
package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/fi-rise/backend/internal/aggregation"
	"github.com/fi-rise/backend/internal/cache"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Store storage.Store
	Cache cache.Cache

	// UserID is the effective user all requests are made for
	UserID uint

	Formatter aggregation.Formatter

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now != nil {
		return co.Now()
	}
	return time.Now()
}

func (co Controller) cache() cache.Cache {
	if co.Cache == nil {
		return cache.Noop{}
	}
	return co.Cache
}

// URIID is the ID of a resource in the path.
type URIID struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// bindID binds the id path parameter. On error, the response is written.
func bindID(c *gin.Context) (uint, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, validation.FromBinding(err))
		return 0, false
	}
	return uri.ID, true
}

// bindQuery binds the query string to the filter. On error, the response
// is written.
func bindQuery(c *gin.Context, filter any) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		writeError(c, validation.FromBinding(err))
		return false
	}
	return true
}

// checkCategory verifies that the category exists and is visible to the
// effective user.
func (co Controller) checkCategory(ctx context.Context, field string, id uint) error {
	category, err := co.Store.GetCategory(ctx, id)
	if errors.Is(err, models.ErrResourceNotFound) || (err == nil && !category.VisibleTo(co.UserID)) {
		return validation.Single(field, "there is no category with this ID")
	}
	return err
}
