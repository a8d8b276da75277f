package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/dto"
	"github.com/hugohenrick/constru-ia/pkg/assistant"
	"github.com/hugohenrick/constru-ia/pkg/logger"
)

// ChatController recebe as mensagens do chat
type ChatController struct {
	service *assistant.Service
	logger  logger.Logger
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(service *assistant.Service, logger logger.Logger) *ChatController {
	return &ChatController{
		service: service,
		logger:  logger,
	}
}

// SendMessage godoc
// @Summary Enviar mensagem
// @Description Classifica a mensagem, executa a ação no ERP e devolve a resposta do assistente
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.MessageRequest true "Mensagem do usuário"
// @Success 200 {object} dto.ReplyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mensagem [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	env, err := c.service.Handle(ctx.Request.Context(), assistant.Request{
		ConversationID: req.User,
		Text:           req.Text,
		RequestID:      req.RequestID,
	})
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyUser) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
			return
		}
		c.logger.Error("Erro ao processar mensagem", "user", req.User, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao processar mensagem", ""))
		return
	}

	ctx.JSON(http.StatusOK, env)
}
