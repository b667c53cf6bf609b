// Package router contains routing for the API delivery.
package router

import (
	"bizcard/internal/delivery/api/middleware"
	"bizcard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CardHandler       *handler.CardHandler
	PublicCardHandler *handler.PublicCardHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	cardHandler       *handler.CardHandler
	publicCardHandler *handler.PublicCardHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		cardHandler:       params.CardHandler,
		publicCardHandler: params.PublicCardHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.sessionHandler.SignIn)
	}

	// Public card pages, no authentication
	publicGroup := e.Group("/card")
	{
		publicGroup.GET("/:slug", r.publicCardHandler.GetCard)
		publicGroup.GET("/:slug/vcard", r.publicCardHandler.DownloadVCard)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	cardsGroup := apiV1.Group("/cards")
	{
		cardsGroup.POST("", r.cardHandler.CreateCard)
		cardsGroup.GET("", r.cardHandler.ListCards)
		cardsGroup.GET("/:id", r.cardHandler.GetCard)
		cardsGroup.PUT("/:id", r.cardHandler.UpdateCard)
		cardsGroup.GET("/:id/qr", r.cardHandler.GetShareQR)
	}
}
