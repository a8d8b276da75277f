package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/controller"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/route"
	"github.com/hugohenrick/constru-ia/internal/adapter/repository"
	"github.com/hugohenrick/constru-ia/internal/adapter/sienge"
	"github.com/hugohenrick/constru-ia/internal/config"
	"github.com/hugohenrick/constru-ia/internal/infrastructure/database"
	"github.com/hugohenrick/constru-ia/pkg/assistant"
	"github.com/hugohenrick/constru-ia/pkg/auth"
	"github.com/hugohenrick/constru-ia/pkg/chat"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/hugohenrick/constru-ia/pkg/ratelimit"
	"github.com/hugohenrick/constru-ia/pkg/session"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	logger logger.Logger
	router *gin.Engine
	server *http.Server
	db     *pgxpool.Pool
	redis  *redis.Client
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{config: cfg, logger: log}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("REDIS_URL inválida: %w", err)
		}
		app.redis = redis.NewClient(opts)
		if err := app.redis.Ping(ctx).Err(); err != nil {
			app.Close()
			return nil, fmt.Errorf("erro ao conectar no Redis: %w", err)
		}
	}

	sessions, locker := app.sessionStore()

	history, err := app.conversationStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	gateway, err := sienge.New(sienge.Config{
		BaseURL:            cfg.Sienge.BaseURL,
		User:               cfg.Sienge.User,
		Password:           cfg.Sienge.Password,
		Token:              cfg.Sienge.Token,
		Timeout:            cfg.Sienge.Timeout,
		ClientCert:         cfg.Sienge.ClientCert,
		ClientCertPassword: cfg.Sienge.ClientCertPassword,
		BreakerThreshold:   cfg.Sienge.BreakerThreshold,
		BreakerReset:       cfg.Sienge.BreakerReset,
	}, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("erro ao criar cliente do Sienge: %w", err)
	}

	service := assistant.NewService(assistant.NewDispatcher(gateway, log), sessions, locker, history, log)

	var jwtService *auth.JWTService
	if cfg.JWTSecretKey != "" {
		jwtService, err = auth.NewJWTService(cfg.JWTSecretKey, cfg.ServiceName, 24*time.Hour)
		if err != nil {
			app.Close()
			return nil, err
		}
	} else {
		log.Warn("JWT_SECRET_KEY não configurada, rotas de conversa sem autenticação")
	}

	app.router = route.NewRouter(route.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter: ratelimit.Middleware(ratelimit.New(ratelimit.Config{
			Rate:  cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		})),
		JWTService: jwtService,
		Logger:     log,
	}, route.Controllers{
		Chat:         controller.NewChatController(service, log),
		Conversation: controller.NewConversationController(service, log),
		Health:       controller.NewHealthController(cfg.ServiceName),
		Order:        controller.NewOrderController(gateway, log),
	})

	app.server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app, nil
}

func (a *App) sessionStore() (session.Store, session.Locker) {
	if a.config.SessionStore == "redis" {
		a.logger.Info("Usando Redis para o contexto das conversas")
		return session.NewRedisStore(a.redis, a.config.SessionTTL), session.NewRedisLocker(a.redis, a.config.Sienge.Timeout*2, a.logger)
	}
	return session.NewMemoryStore(a.config.SessionTTL), session.NewLocalLocker()
}

func (a *App) conversationStore(ctx context.Context) (chat.Repository, error) {
	switch a.config.ConversationStore {
	case "redis":
		a.logger.Info("Usando Redis para o histórico das conversas")
		return chat.NewRedisRepository(a.redis, a.config.ConversationTTL), nil
	case "postgres":
		version, err := database.RunMigrations(a.config.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.logger.Info("Migrações aplicadas", "version", version)

		db, err := database.NewPostgresDB(ctx, database.PostgresConfig{
			URL:            a.config.DatabaseURL,
			MaxConnections: a.config.DBMaxConnections,
			MinConnections: a.config.DBMinConnections,
		})
		if err != nil {
			return nil, err
		}
		a.db = db
		a.logger.Info("Usando PostgreSQL para o histórico das conversas")
		return repository.NewChatRepository(db), nil
	default:
		return chat.NewMemoryRepository(), nil
	}
}

// Run inicia o servidor e o encerra quando ctx é cancelado
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro ao encerrar servidor: %w", err)
	}
	return <-errCh
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Erro ao fechar conexão com o Redis", "error", err)
		}
	}
}
