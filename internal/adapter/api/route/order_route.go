package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/controller"
)

// ConfigureOrderRoutes registra o download do PDF dos pedidos
func ConfigureOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController, limiter gin.HandlerFunc) {
	orders := router.Group("/pedido")
	if limiter != nil {
		orders.Use(limiter)
	}
	{
		orders.GET("/:id/pdf", orderController.DownloadPdf)
	}
}
