package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestURLMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	url, _ := url.Parse("https://fi-rise.example.com:8081")

	r.GET("/", func(ctx *gin.Context) {
		router.URLMiddleware(url)(c)
		c.String(http.StatusOK, c.GetString(string(models.ContextURL)))
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "https://fi-rise.example.com/", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "https://fi-rise.example.com:8081", w.Body.String())
}
