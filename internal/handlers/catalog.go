package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/lessence/internal/store"
	"github.com/example/lessence/internal/utils"
)

// CatalogHandler serves the perfume collection and its note tags.
type CatalogHandler struct {
	catalog *store.Catalog
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *store.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListPerfumes returns the catalogue filtered by note tags and search
// query, in catalogue order.
func (h *CatalogHandler) ListPerfumes(c *fiber.Ctx) error {
	var selectedNotes []string
	if raw := c.Query("notes"); raw != "" {
		for _, note := range strings.Split(raw, ",") {
			if note = strings.TrimSpace(note); note != "" {
				selectedNotes = append(selectedNotes, note)
			}
		}
	}

	filtered := store.Filter(h.catalog.All(), selectedNotes, c.Query("search"))

	pg := utils.ParsePagination(c)
	start, end := pg.Bounds(len(filtered))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    filtered[start:end],
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    len(filtered),
		},
	})
}

// GetPerfume returns a single perfume by ID.
func (h *CatalogHandler) GetPerfume(c *fiber.Ctx) error {
	perfume, ok := h.catalog.Get(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "perfume not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": perfume})
}

// ListNotes returns the distinct note tags across the catalogue.
func (h *CatalogHandler) ListNotes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.catalog.Notes()})
}
