package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/lessence/internal/config"
	"github.com/example/lessence/internal/utils"
)

// SessionHandler issues guest session tokens. Carts, wishlists and
// chat transcripts are keyed by the session ID embedded in the token.
type SessionHandler struct {
	cfg *config.Config
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(cfg *config.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Create mints a new guest session.
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	sessionID := uuid.New()

	token, err := utils.GenerateSessionToken(h.cfg.JWTSecret, sessionID, h.cfg.SessionTTL)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"session_id": sessionID,
			"token":      token,
		},
	})
}
