package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/dto"
)

// HealthController responde à verificação de saúde
type HealthController struct {
	service string
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(service string) *HealthController {
	return &HealthController{service: service}
}

// Check godoc
// @Summary Verificar saúde
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		OK:      true,
		Service: c.service,
		Status:  "running",
	})
}
