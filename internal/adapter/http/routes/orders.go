package routes

import (
	"tracker_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathTrack  = "/track"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.POST("/:id/payment/sync", orderHandler.SyncPayment)
	}

	// Public, unauthenticated: pseudonymous id only.
	track := rg.Group(PathTrack)
	{
		track.GET("/:pseudonymous_id", orderHandler.TrackOrder)
	}
}
