package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/controller"
)

// ConfigureChatRoutes registra a verificação de saúde e o endpoint de mensagens
func ConfigureChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, healthController *controller.HealthController, limiter gin.HandlerFunc) {
	router.GET("/", healthController.Check)

	handlers := []gin.HandlerFunc{chatController.SendMessage}
	if limiter != nil {
		handlers = append([]gin.HandlerFunc{limiter}, handlers...)
	}
	router.POST("/mensagem", handlers...)
}
