// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"markethub/internal/delivery/http/middleware"
	"markethub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	DashboardHandler *handler.DashboardHandler
	CatalogHandler   *handler.CatalogHandler
	AssistantHandler *handler.AssistantHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	dashboardHandler *handler.DashboardHandler
	catalogHandler   *handler.CatalogHandler
	assistantHandler *handler.AssistantHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		dashboardHandler: params.DashboardHandler,
		catalogHandler:   params.CatalogHandler,
		assistantHandler: params.AssistantHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Public site endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/", handler.Index)
	e.GET("/about", handler.About)
	e.GET("/ai-chat", handler.AIChat)

	// Account routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/login", r.accountHandler.Login)
		userGroup.POST("/refresh", r.accountHandler.Refresh)
	}

	// Account routes that require authentication
	authedUserGroup := userGroup.Group("")
	authedUserGroup.Use(r.authMiddleware.Authenticate)
	{
		authedUserGroup.GET("/profile", r.accountHandler.GetProfile)
		authedUserGroup.PUT("/profile", r.accountHandler.UpdateProfile)
		authedUserGroup.POST("/deactivate", r.accountHandler.Deactivate)
		authedUserGroup.POST("/logout", r.accountHandler.Logout)

		authedUserGroup.GET("/dashboard", r.dashboardHandler.Overview)
		authedUserGroup.GET("/api/metrics", r.dashboardHandler.Metrics)
		authedUserGroup.GET("/api/charts/roles", r.dashboardHandler.RoleChart)
		authedUserGroup.GET("/api/recent-users", r.dashboardHandler.RecentUsers)
		authedUserGroup.POST("/api/chat-analyze", r.dashboardHandler.ChatAnalyze)
	}

	// Catalog routes: reads for any authenticated account, writes for merchants
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("/search", r.catalogHandler.Search)
		productGroup.GET("/reports/valuation", r.catalogHandler.Valuation)
		productGroup.GET("/reports/idle-stock", r.catalogHandler.IdleStock)
		productGroup.GET("/:id", r.catalogHandler.Get)
	}

	merchantProductGroup := productGroup.Group("")
	merchantProductGroup.Use(r.authMiddleware.RequireRole("merchant"))
	{
		merchantProductGroup.POST("", r.catalogHandler.Create)
		merchantProductGroup.PUT("/:id", r.catalogHandler.Update)
		merchantProductGroup.POST("/:id/archive", r.catalogHandler.Archive)
	}

	// Assistant routes
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.POST("/chat", r.assistantHandler.Chat)
		apiGroup.POST("/query", r.assistantHandler.Query)
		apiGroup.GET("/db-info", r.assistantHandler.DBInfo)
	}
}
