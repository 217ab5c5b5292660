// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accountGroup := e.Group("/api/accounts")
	{
		accountGroup.POST("", r.accountHandler.Register)
		accountGroup.POST("/login", r.accountHandler.Login)

		// Ownership is proven per request by the bearer token; the usecase
		// owns that check, so no auth middleware sits on these routes.
		accountGroup.GET("/:id", r.accountHandler.GetAccount)
		accountGroup.PATCH("/:id", r.accountHandler.UpdateAccount)
	}
}
