package route

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/controller"
	"github.com/hugohenrick/constru-ia/pkg/auth"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/hugohenrick/constru-ia/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers agrupa os controllers expostos pelo router
type Controllers struct {
	Chat         *controller.ChatController
	Conversation *controller.ConversationController
	Health       *controller.HealthController
	Order        *controller.OrderController
}

// RouterConfig define os middlewares globais do router
type RouterConfig struct {
	AllowedOrigins []string
	RateLimiter    gin.HandlerFunc
	JWTService     *auth.JWTService
	Logger         logger.Logger
}

// NewRouter monta o router da aplicação
func NewRouter(cfg RouterConfig, controllers Controllers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Logger != nil {
		router.Use(middleware.RequestLogger(cfg.Logger, "/metrics", "/"))
	}
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := router.Group("")
	ConfigureChatRoutes(root, controllers.Chat, controllers.Health, cfg.RateLimiter)
	ConfigureConversationRoutes(root, controllers.Conversation, cfg.JWTService)
	ConfigureOrderRoutes(root, controllers.Order, cfg.RateLimiter)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
