package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/hugohenrick/constru-ia/docs"
	"github.com/hugohenrick/constru-ia/internal/config"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro de configuração: %v", err)
	}

	appLogger := logger.NewLogger(logger.Config{
		Level:   cfg.LogLevel,
		Service: cfg.ServiceName,
		Console: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Erro no servidor", "error", err)
		os.Exit(1)
	}
}
