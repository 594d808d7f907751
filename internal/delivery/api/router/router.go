// Package router wires the address book API routes onto echo.
package router

import (
	"addressbook/config"
	"addressbook/internal/delivery/api/middleware"
	"addressbook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	Gatherer       prometheus.Gatherer `optional:"true"`
}

type router struct {
	addressHandler *handler.AddressHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
	gatherer       prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
		gatherer:       params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	addressesGroup := apiV1.Group("/addresses")
	{
		addressesGroup.GET("", r.addressHandler.SearchAddresses)
		addressesGroup.POST("/refresh", r.addressHandler.RefreshAddresses)
		addressesGroup.PUT("", r.addressHandler.ReplaceAddresses)
		addressesGroup.POST("", r.addressHandler.AddAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.gatherer == nil {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = config.DefaultMetricsPath
	}

	e.GET(path, echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
}
