// Package middleware reúne os middlewares HTTP comuns às rotas.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/pkg/logger"
)

// RequestLogger registra método, rota, status e duração de cada requisição
func RequestLogger(log logger.Logger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		if _, ok := skipped[route]; ok {
			return
		}

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("Requisição HTTP", fields...)
		case status >= 400:
			log.Warn("Requisição HTTP", fields...)
		default:
			log.Info("Requisição HTTP", fields...)
		}
	}
}
