package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/lessence/internal/middleware"
	"github.com/example/lessence/internal/store"
)

// WishlistHandler manages the session wishlist.
type WishlistHandler struct {
	catalog  *store.Catalog
	wishlist *store.WishlistStore
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(catalog *store.Catalog, wishlist *store.WishlistStore) *WishlistHandler {
	return &WishlistHandler{catalog: catalog, wishlist: wishlist}
}

// GetWishlist returns the session's wishlisted perfume IDs.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"ids": h.wishlist.IDs(sessionID.String())},
	})
}

type toggleRequest struct {
	PerfumeID string `json:"perfume_id"`
}

// Toggle flips wishlist membership for a perfume and reports the new
// state.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if _, found := h.catalog.Get(req.PerfumeID); !found {
		return fiber.NewError(fiber.StatusNotFound, "perfume not found")
	}

	wishlisted := h.wishlist.Toggle(sessionID.String(), req.PerfumeID)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"perfume_id": req.PerfumeID,
			"wishlisted": wishlisted,
			"ids":        h.wishlist.IDs(sessionID.String()),
		},
	})
}
