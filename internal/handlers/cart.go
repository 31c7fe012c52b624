package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/lessence/internal/middleware"
	"github.com/example/lessence/internal/models"
	"github.com/example/lessence/internal/store"
)

// CartHandler manages the session shopping cart.
type CartHandler struct {
	catalog *store.Catalog
	carts   *store.CartStore
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(catalog *store.Catalog, carts *store.CartStore) *CartHandler {
	return &CartHandler{catalog: catalog, carts: carts}
}

type cartItemView struct {
	Perfume   models.Perfume `json:"perfume"`
	Quantity  int            `json:"quantity"`
	LineTotal int            `json:"line_total"`
}

func (h *CartHandler) cartView(sessionID string) fiber.Map {
	lines := h.carts.Lines(sessionID)
	items := make([]cartItemView, 0, len(lines))
	for _, line := range lines {
		perfume, ok := h.catalog.Get(line.PerfumeID)
		if !ok {
			continue
		}
		items = append(items, cartItemView{
			Perfume:   perfume,
			Quantity:  line.Quantity,
			LineTotal: perfume.Price * line.Quantity,
		})
	}

	return fiber.Map{
		"items":       items,
		"total_count": h.carts.TotalCount(sessionID),
		"subtotal":    h.carts.Subtotal(sessionID),
	}
}

// GetCart returns the session's cart with derived totals.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	return c.JSON(fiber.Map{"success": true, "data": h.cartView(sessionID.String())})
}

type addItemRequest struct {
	PerfumeID string `json:"perfume_id"`
}

// AddItem puts one unit of a perfume into the cart, merging into an
// existing line when present.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if _, found := h.catalog.Get(req.PerfumeID); !found {
		return fiber.NewError(fiber.StatusNotFound, "perfume not found")
	}

	h.carts.Add(sessionID.String(), req.PerfumeID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": h.cartView(sessionID.String())})
}

type updateItemRequest struct {
	Delta int `json:"delta"`
}

// UpdateItem adjusts a line's quantity by delta, never below 1. An
// absent line is left untouched.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	var req updateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	h.carts.UpdateQuantity(sessionID.String(), c.Params("id"), req.Delta)

	return c.JSON(fiber.Map{"success": true, "data": h.cartView(sessionID.String())})
}

// RemoveItem deletes a cart line regardless of its quantity. Removing
// an absent line is a no-op.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	h.carts.Remove(sessionID.String(), c.Params("id"))

	return c.JSON(fiber.Map{"success": true, "data": h.cartView(sessionID.String())})
}
