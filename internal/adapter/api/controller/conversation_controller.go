package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/dto"
	"github.com/hugohenrick/constru-ia/pkg/assistant"
	"github.com/hugohenrick/constru-ia/pkg/logger"
)

// ConversationController expõe o histórico das conversas
type ConversationController struct {
	service *assistant.Service
	logger  logger.Logger
}

// NewConversationController cria uma nova instância de ConversationController
func NewConversationController(service *assistant.Service, logger logger.Logger) *ConversationController {
	return &ConversationController{
		service: service,
		logger:  logger,
	}
}

// History godoc
// @Summary Histórico da conversa
// @Description Lista as mensagens de uma conversa da mais antiga para a mais recente
// @Tags conversas
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param user path string true "Usuário da conversa"
// @Param limit query int false "Quantidade máxima de mensagens (0 = todas)"
// @Param offset query int false "Deslocamento"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /conversas/{user}/mensagens [get]
func (c *ConversationController) History(ctx *gin.Context) {
	user := ctx.Param("user")

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro limit inválido", err.Error()))
		return
	}
	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro offset inválido", err.Error()))
		return
	}
	p := dto.GetPagination(limit, offset)

	messages, total, err := c.service.History(ctx.Request.Context(), user, p.Limit, p.Offset)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyUser) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "usuário inválido", err.Error()))
			return
		}
		c.logger.Error("Erro ao buscar histórico", "user", user, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar histórico", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewHistoryResponse(user, messages, total, p))
}

// Delete godoc
// @Summary Apagar conversa
// @Description Apaga o histórico e o contexto pendente de uma conversa
// @Tags conversas
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param user path string true "Usuário da conversa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /conversas/{user} [delete]
func (c *ConversationController) Delete(ctx *gin.Context) {
	user := ctx.Param("user")

	if err := c.service.Reset(ctx.Request.Context(), user); err != nil {
		if errors.Is(err, assistant.ErrEmptyUser) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "usuário inválido", err.Error()))
			return
		}
		c.logger.Error("Erro ao apagar conversa", "user", user, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao apagar conversa", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Conversa apagada", nil))
}
