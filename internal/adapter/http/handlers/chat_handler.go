package handlers

import (
	"errors"
	"net/http"

	request "gadget_garage/internal/adapter/http/dto/request"
	response "gadget_garage/internal/adapter/http/dto/response"
	"gadget_garage/internal/usecase"
	"gadget_garage/pkg"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the simulated direct-contact conversation.
type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// Start godoc
// @Summary      Open a conversation
// @Tags         chats
// @Produce      json
// @Success      201  {object}  response.ChatSessionResponse
// @Router       /chats [post]
func (h *ChatHandler) Start(c *gin.Context) {
	session, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromChatSession(session))
}

// Send godoc
// @Summary      Send a message
// @Description  The shop's reply is appended to the conversation after a short delay.
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Conversation id"
// @Param        request  body      request.ChatMessageRequest  true  "Message"
// @Success      201      {object}  response.MessageResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /chats/{id}/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var payload request.ChatMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	msg, err := h.usecase.Send(c.Request.Context(), c.Param("id"), payload.Text)
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMessage(msg))
}

// List godoc
// @Summary      Conversation log
// @Tags         chats
// @Produce      json
// @Param        id   path      string  true  "Conversation id"
// @Success      200  {object}  response.ChatSessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /chats/{id}/messages [get]
func (h *ChatHandler) List(c *gin.Context) {
	id := c.Param("id")
	msgs, err := h.usecase.Messages(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChatSession(usecase.ChatSession{ID: id, Messages: msgs}))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrChatSessionNotFound):
		return pkg.NewDomainErrorSimple("CHAT_NOT_FOUND", "Conversation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyChatMessage):
		return pkg.NewDomainErrorSimple("EMPTY_MESSAGE", "Please type a message", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
