// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/router/handler"
	"stampcard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeoPushHandler    *handler.GeoPushHandler
	SessionHandler    *handler.SessionHandler
	RestaurantHandler *handler.RestaurantHandler
	LoyaltyHandler    *handler.LoyaltyHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	geoPushHandler    *handler.GeoPushHandler
	sessionHandler    *handler.SessionHandler
	restaurantHandler *handler.RestaurantHandler
	loyaltyHandler    *handler.LoyaltyHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		geoPushHandler:    params.GeoPushHandler,
		sessionHandler:    params.SessionHandler,
		restaurantHandler: params.RestaurantHandler,
		loyaltyHandler:    params.LoyaltyHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Geo trigger accepts anonymous positions, identity is attached when a
	// valid token is present.
	geoGroup := e.Group("/geo")
	{
		geoGroup.POST("/trigger", r.geoPushHandler.TriggerGeoPush, r.authMiddleware.WithIdentity)
		geoGroup.GET("/history", r.geoPushHandler.GetTriggerHistory, r.authMiddleware.Authenticate)
	}

	// Session routes resolve the caller's role and permissions.
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/access", r.sessionHandler.GetAccess)
	}

	// Restaurant directory management requires the restaurant permission.
	restaurantGroup := e.Group("/restaurants")
	restaurantGroup.Use(r.authMiddleware.Authenticate)
	{
		canManage := r.authMiddleware.RequirePermission(func(p entity.Permissions) bool {
			return p.CanManageRestaurants
		})
		restaurantGroup.POST("", r.restaurantHandler.CreateRestaurant, canManage)
		restaurantGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantGroup.GET("/:id", r.restaurantHandler.GetRestaurant)
	}

	// Stamp card routes. Stamping and redemption require the stamping
	// permission held by every role tier.
	cardGroup := e.Group("/cards")
	cardGroup.Use(r.authMiddleware.Authenticate)
	{
		canStamp := r.authMiddleware.RequirePermission(func(p entity.Permissions) bool {
			return p.CanStampCards
		})
		cardGroup.POST("", r.loyaltyHandler.CreateCard, canStamp)
		cardGroup.GET("/:id", r.loyaltyHandler.GetCard)
		cardGroup.POST("/:id/stamps", r.loyaltyHandler.AddStamp, canStamp)
		cardGroup.POST("/stamps/collect", r.loyaltyHandler.CollectStamp, canStamp)
		cardGroup.POST("/:id/redeem", r.loyaltyHandler.RedeemReward, canStamp)
		cardGroup.GET("/:id/qr", r.loyaltyHandler.GetStampQR)
		cardGroup.GET("/:id/pass", r.loyaltyHandler.GetWalletPass)
	}
}
