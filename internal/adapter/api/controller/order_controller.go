package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/dto"
	"github.com/hugohenrick/constru-ia/internal/domain/erp"
	"github.com/hugohenrick/constru-ia/pkg/logger"
)

// OrderController entrega documentos dos pedidos de compra
type OrderController struct {
	gateway erp.Gateway
	logger  logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(gateway erp.Gateway, logger logger.Logger) *OrderController {
	return &OrderController{
		gateway: gateway,
		logger:  logger,
	}
}

// DownloadPdf godoc
// @Summary Baixar PDF do pedido
// @Description Baixa o PDF de análise de um pedido de compra
// @Tags pedidos
// @Produce application/pdf
// @Param id path int true "Número do pedido"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /pedido/{id}/pdf [get]
func (c *OrderController) DownloadPdf(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "número do pedido inválido", ctx.Param("id")))
		return
	}

	data, err := c.gateway.RenderOrderPdf(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, erp.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "PDF não gerado", fmt.Sprintf("pedido %d não encontrado", id)))
			return
		}
		c.logger.Error("Erro ao gerar PDF do pedido", "order_id", id, "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "PDF não gerado", ""))
		return
	}
	if len(data) == 0 {
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "PDF não gerado", "o ERP devolveu um documento vazio"))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pedido_%d.pdf", id))
	ctx.Data(http.StatusOK, "application/pdf", data)
}
