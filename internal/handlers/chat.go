package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/lessence/internal/middleware"
	"github.com/example/lessence/internal/models"
	"github.com/example/lessence/internal/services"
	"github.com/example/lessence/internal/store"
)

// ChatHandler runs the scent concierge: it appends user messages to
// the session transcript and obtains replies from the recommendation
// service.
type ChatHandler struct {
	chats  *store.ChatStore
	gemini *services.GeminiService
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(chats *store.ChatStore, gemini *services.GeminiService) *ChatHandler {
	return &ChatHandler{chats: chats, gemini: gemini}
}

// GetTranscript returns the session's chat history, greeting included.
func (h *ChatHandler) GetTranscript(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.chats.Messages(sessionID.String()),
	})
}

type chatRequest struct {
	Text string `json:"text"`
}

// Send submits a mood description and returns the concierge reply.
// While a previous submission is still awaiting its reply the request
// is rejected rather than raced or queued.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message text is required")
	}

	token, err := h.chats.Begin(sessionID.String(), text)
	if err != nil {
		if errors.Is(err, store.ErrRecommendationPending) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}

	reply := h.gemini.Recommend(c.UserContext(), text)

	// A false result means the request is no longer active and the
	// reply is discarded.
	h.chats.Complete(sessionID.String(), token, reply)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.ChatMessage{Role: models.RoleModel, Text: reply},
	})
}
