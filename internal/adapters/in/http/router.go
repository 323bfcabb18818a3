package http

import (
	"net/http"

	"dispatch/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes mounts the API on the given Echo instance. The health check,
// the OpenAPI document and the login endpoint stay public; everything under
// /api/v1 besides login requires a bearer token.
func RegisterRoutes(e *echo.Echo, server *Server, authHandler AuthHandler, tokens *auth.TokenService, openapiJSON []byte) {
	e.Use(middleware.Recover())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, openapiJSON)
	})

	api := e.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", BearerAuth(tokens))

	protected.POST("/orders", server.CreateOrder)
	protected.GET("/orders", server.GetOrders)
	protected.GET("/orders/count", server.CountOrders)
	protected.GET("/orders/search", server.SearchOrders)
	protected.GET("/orders/status/:status", server.GetOrdersByStatus)
	protected.GET("/orders/:id", server.GetOrder)
	protected.PUT("/orders/:id", server.UpdateOrder)
	protected.DELETE("/orders/:id", server.DeleteOrder)

	protected.POST("/delivery-persons", server.CreateDeliveryPerson)
	protected.GET("/delivery-persons", server.GetDeliveryPersons)
	protected.GET("/delivery-persons/available", server.GetAvailableDeliveryPersons)
	protected.GET("/delivery-persons/count", server.CountDeliveryPersons)
	protected.PUT("/delivery-persons/:id", server.UpdateDeliveryPerson)
	protected.DELETE("/delivery-persons/:id", server.DeleteDeliveryPerson)

	protected.POST("/assignments", server.CreateAssignment)
	protected.GET("/assignments", server.GetAssignments)
	protected.GET("/assignments/count", server.CountAssignments)
	protected.GET("/assignments/status/:status", server.GetAssignmentsByStatus)
	protected.GET("/assignments/:id", server.GetAssignment)
	protected.PATCH("/assignments/:id/status", server.UpdateAssignmentStatus)
	protected.DELETE("/assignments/:id", server.DeleteAssignment)
}
