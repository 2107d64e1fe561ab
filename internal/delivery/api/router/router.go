// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estate/config"
	"estate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler     *handler.PageHandler
	PropertyHandler *handler.PropertyHandler
	Gatherer        prometheus.Gatherer
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler     *handler.PageHandler
	propertyHandler *handler.PropertyHandler
	gatherer        prometheus.Gatherer
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:     params.PageHandler,
		propertyHandler: params.PropertyHandler,
		gatherer:        params.Gatherer,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Listing pages
	e.GET("/", r.pageHandler.Index)
	e.POST("/filter_by_location", r.pageHandler.FilterByLocation)
	e.POST("/filter_by_price", r.pageHandler.FilterByPrice)
	e.POST("/filter_by_square_footage", r.pageHandler.FilterBySquareFootage)
	e.POST("/filter_by_property_type", r.pageHandler.FilterByPropertyType)
	e.POST("/sort", r.pageHandler.Sort)
	e.POST("/save_current_selection", r.pageHandler.SaveSelection)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	propertiesGroup := apiV1.Group("/properties")
	{
		propertiesGroup.GET("", r.propertyHandler.ListProperties)
		propertiesGroup.POST("/selection", r.propertyHandler.SaveSelection)
	}
}

// RegisterMetricsRoute exposes the Prometheus endpoint when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
}
