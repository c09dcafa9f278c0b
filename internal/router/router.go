package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/fi-rise/backend/api"
	"github.com/fi-rise/backend/internal/controllers"
	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/fi-rise/backend/internal/router.version=...".
var version = "0.0.0"

// Config sets up the engine with all middlewares. The returned function
// must be called when the engine is not used anymore.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "this HTTP method is not allowed for the endpoint you called"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "there is no endpoint at this path"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Query and URI validation errors use the parameter names
	validation.RegisterTagNames()

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Debug().Msg("Prometheus metrics were not registered")
		}
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, teardown, err
	}

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path + "/api"
	docs.SwaggerInfo.Title = "fi-rise"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for fi-rise, a personal finance tracker with budgets, savings goals and local support resources."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	co.RegisterHealthzRoutes(group.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := group.Group("/api")
	{
		api.GET("", GetAPI)
		api.OPTIONS("", OptionsRoot)
	}

	co.RegisterUserRoutes(api.Group("/users"))
	co.RegisterCategoryRoutes(api.Group("/categories"))
	co.RegisterExpenseRoutes(api.Group("/expenses"))
	co.RegisterGoalRoutes(api.Group("/goals"))
	co.RegisterBudgetRoutes(api.Group("/budgets"))
	co.RegisterMonthRoutes(api.Group("/months"))
	co.RegisterResourceRoutes(api.Group("/resources"))
	co.RegisterArticleRoutes(api.Group("/articles"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`       // Health check
	Version string `json:"version" example:"https://example.com/version"`       // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/metrics"`       // Prometheus metrics
	API     string `json:"api" example:"https://example.com/api"`               // List endpoint for all API resources
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			API:     url + "/api",
		},
	})
}

type APIResponse struct {
	Links APILinks `json:"links"`
}

type APILinks struct {
	Users      string `json:"users" example:"https://example.com/api/users"`
	Categories string `json:"categories" example:"https://example.com/api/categories"`
	Expenses   string `json:"expenses" example:"https://example.com/api/expenses"`
	Goals      string `json:"goals" example:"https://example.com/api/goals"`
	Budgets    string `json:"budgets" example:"https://example.com/api/budgets"`
	Months     string `json:"months" example:"https://example.com/api/months"`
	Resources  string `json:"resources" example:"https://example.com/api/resources"`
	Articles   string `json:"articles" example:"https://example.com/api/articles"`
}

// GetAPI returns the link list for all resources of the API
//
//	@Summary		API resources
//	@Description	Returns general information about the API
//	@Tags			General
//	@Success		200	{object}	APIResponse
//	@Router			/api [get]
func GetAPI(c *gin.Context) {
	url := c.GetString(string(models.ContextURL)) + "/api"

	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Users:      url + "/users",
			Categories: url + "/categories",
			Expenses:   url + "/expenses",
			Goals:      url + "/goals",
			Budgets:    url + "/budgets",
			Months:     url + "/months",
			Resources:  url + "/resources",
			Articles:   url + "/articles",
		},
	})
}

type VersionResponse struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the fi-rise backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Version: version,
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
