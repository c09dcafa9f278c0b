package controllers

import (
	"net/http"

	"github.com/fi-rise/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetHealthz)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		503	{object}	httpError
// @Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	if err := co.Store.Ping(c.Request.Context()); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, httpError{Error: "the storage is not available"})
		return
	}

	c.Status(http.StatusNoContent)
}
