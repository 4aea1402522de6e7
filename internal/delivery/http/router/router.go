// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"expensetracker/internal/delivery/http/middleware"
	"expensetracker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ExpenseHandler *handler.ExpenseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	expenseHandler *handler.ExpenseHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		expenseHandler: params.ExpenseHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, reachable without a token
	e.GET("/health/ping", handler.Ping)

	// Auth routes; register and login are on the bypass list, the rest
	// require a valid session
	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Expense routes, all owner-scoped and authenticated
	expenseGroup := e.Group("/expenses")
	expenseGroup.Use(r.authMiddleware.Authenticate)
	{
		expenseGroup.POST("", r.expenseHandler.Create)
		expenseGroup.GET("", r.expenseHandler.List)
		expenseGroup.GET("/:id", r.expenseHandler.Get)
		expenseGroup.PUT("/:id", r.expenseHandler.Update)
		expenseGroup.DELETE("/:id", r.expenseHandler.Delete)
	}
}
