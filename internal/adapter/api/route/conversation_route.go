package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/controller"
	"github.com/hugohenrick/constru-ia/pkg/auth"
)

// ConfigureConversationRoutes registra as rotas do histórico. Sem jwtService
// as rotas ficam abertas.
func ConfigureConversationRoutes(router *gin.RouterGroup, conversationController *controller.ConversationController, jwtService *auth.JWTService) {
	conversations := router.Group("/conversas")
	conversations.Use(auth.JWTAuthMiddleware(jwtService), auth.ConversationOwnerMiddleware("user"))
	{
		conversations.GET("/:user/mensagens", conversationController.History)
		conversations.DELETE("/:user", conversationController.Delete)
	}
}
