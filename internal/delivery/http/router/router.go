// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locheck/internal/delivery/http/middleware"
	"locheck/internal/delivery/http/router/handler"
	"locheck/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	TelemetryHandler    *handler.TelemetryHandler
	NotificationHandler *handler.NotificationHandler
	WSHandler           *ws.Handler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	telemetryHandler    *handler.TelemetryHandler
	notificationHandler *handler.NotificationHandler
	wsHandler           *ws.Handler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		telemetryHandler:    params.TelemetryHandler,
		notificationHandler: params.NotificationHandler,
		wsHandler:           params.WSHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	deviceGroup := e.Group("/device")
	{
		// Registration is the one unauthenticated device route; it is
		// where a device obtains its credential in the first place.
		deviceGroup.POST("/register", r.deviceHandler.Register)

		authed := deviceGroup.Group("")
		authed.Use(r.authMiddleware.Authenticate)
		{
			authed.GET("/verify", r.deviceHandler.Verify)
			authed.POST("/info", r.telemetryHandler.UpdateInfo)
			authed.GET("/settings", r.telemetryHandler.GetSettings)
			authed.GET("/locations", r.telemetryHandler.ListLocations)
			authed.POST("/location-notification", r.notificationHandler.LocationNotification)
		}
	}

	// The websocket handler runs its own credential check before upgrading.
	e.GET("/ws", r.wsHandler.HandleConnection)
}
