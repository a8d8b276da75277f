// Package config carrega a configuração da aplicação a partir de variáveis de ambiente.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config agrupa todas as variáveis de ambiente da aplicação
type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8000"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"constru-ai-connect"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RateLimitRPS       float64  `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst     int      `envconfig:"RATE_LIMIT_BURST" default:"10"`

	SessionStore      string        `envconfig:"SESSION_STORE" default:"memory"`
	SessionTTL        time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	ConversationStore string        `envconfig:"CONVERSATION_STORE" default:"memory"`
	ConversationTTL   time.Duration `envconfig:"CONVERSATION_TTL" default:"720h"`
	RedisURL          string        `envconfig:"REDIS_URL"`

	DatabaseURL      string `envconfig:"DATABASE_URL"`
	DBMaxConnections int32  `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBMinConnections int32  `envconfig:"DB_MIN_CONNECTIONS" default:"2"`

	JWTSecretKey string `envconfig:"JWT_SECRET_KEY"`

	Sienge Sienge
}

// Sienge contém as credenciais e limites do cliente do ERP
type Sienge struct {
	BaseURL            string        `envconfig:"SIENGE_BASE_URL" required:"true"`
	User               string        `envconfig:"SIENGE_USER"`
	Password           string        `envconfig:"SIENGE_PASSWORD"`
	Token              string        `envconfig:"SIENGE_TOKEN"`
	Timeout            time.Duration `envconfig:"SIENGE_TIMEOUT" default:"15s"`
	ClientCert         string        `envconfig:"SIENGE_CLIENT_CERT"`
	ClientCertPassword string        `envconfig:"SIENGE_CLIENT_CERT_PASSWORD"`
	BreakerThreshold   int           `envconfig:"SIENGE_BREAKER_THRESHOLD" default:"5"`
	BreakerReset       time.Duration `envconfig:"SIENGE_BREAKER_RESET" default:"30s"`
}

// Load lê e valida a configuração
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate verifica combinações que o envconfig não consegue expressar
func (c *Config) Validate() error {
	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	c.ConversationStore = strings.ToLower(strings.TrimSpace(c.ConversationStore))

	switch c.SessionStore {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL é obrigatório quando SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("SESSION_STORE inválido: %q", c.SessionStore)
	}

	switch c.ConversationStore {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL é obrigatório quando CONVERSATION_STORE=redis")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL é obrigatório quando CONVERSATION_STORE=postgres")
		}
	default:
		return fmt.Errorf("CONVERSATION_STORE inválido: %q", c.ConversationStore)
	}

	if c.Sienge.User != "" && c.Sienge.Password == "" {
		return fmt.Errorf("SIENGE_PASSWORD é obrigatório quando SIENGE_USER é informado")
	}
	return nil
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
