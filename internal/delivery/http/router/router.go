// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"keyhub/internal/delivery/http/middleware"
	"keyhub/internal/delivery/http/router/handler"
	"keyhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	GameHandler         *handler.GameHandler
	CollectionHandler   *handler.CollectionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	gameHandler         *handler.GameHandler
	collectionHandler   *handler.CollectionHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		gameHandler:         params.GameHandler,
		collectionHandler:   params.CollectionHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/customer", r.userHandler.RegisterCustomer)
		authGroup.POST("/register/developer", r.userHandler.RegisterDeveloper)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public catalog browsing
	e.GET("/games", r.gameHandler.ListGames)
	e.GET("/games/:id", r.gameHandler.GetGame)

	// Developer routes: authenticated, developer role required
	developerGroup := e.Group("/developer/games")
	developerGroup.Use(r.authMiddleware.Authenticate)
	developerGroup.Use(r.authMiddleware.RequireRole(entity.RoleDeveloper))
	{
		developerGroup.POST("", r.gameHandler.CreateGame)
		developerGroup.PUT("/:id", r.gameHandler.UpdateGame)
		developerGroup.POST("/:id/keys", r.gameHandler.AddKeys)
		developerGroup.POST("/:id/out-of-stock", r.gameHandler.MarkOutOfStock)
		developerGroup.DELETE("/:id", r.gameHandler.DeleteGame)
	}

	// Customer routes: authenticated, customer role required
	customerGroup := e.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.GET("/wishlist", r.collectionHandler.ListWishlist)
		customerGroup.POST("/wishlist/:gameID", r.collectionHandler.AddToWishlist)
		customerGroup.DELETE("/wishlist/:gameID", r.collectionHandler.RemoveFromWishlist)
		customerGroup.DELETE("/wishlist", r.collectionHandler.ClearWishlist)
		customerGroup.POST("/wishlist/:gameID/move-to-cart", r.collectionHandler.MoveToCart)
		customerGroup.POST("/wishlist/move-all-to-cart", r.collectionHandler.MoveAllToCart)

		customerGroup.GET("/cart", r.collectionHandler.ListCart)
		customerGroup.POST("/cart/:gameID", r.collectionHandler.AddToCart)
		customerGroup.DELETE("/cart/:gameID", r.collectionHandler.RemoveFromCart)
		customerGroup.DELETE("/cart", r.collectionHandler.ClearCart)
		customerGroup.POST("/cart/checkout", r.collectionHandler.Checkout)

		customerGroup.GET("/library", r.collectionHandler.ListLibrary)
	}
}
