package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/lessence/internal/config"
	"github.com/example/lessence/internal/handlers"
	"github.com/example/lessence/internal/middleware"
	"github.com/example/lessence/internal/services"
	"github.com/example/lessence/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, cfg *config.Config, catalog *store.Catalog, carts *store.CartStore, wishlist *store.WishlistStore, chats *store.ChatStore) {
	geminiService := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)

	sessionHandler := handlers.NewSessionHandler(cfg)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	cartHandler := handlers.NewCartHandler(catalog, carts)
	wishlistHandler := handlers.NewWishlistHandler(catalog, wishlist)
	chatHandler := handlers.NewChatHandler(chats, geminiService)

	api := app.Group("/api")

	api.Post("/session", sessionHandler.Create)

	perfumes := api.Group("/perfumes")
	perfumes.Get("/", catalogHandler.ListPerfumes)
	perfumes.Get("/:id", catalogHandler.GetPerfume)

	api.Get("/notes", catalogHandler.ListNotes)

	// Session-scoped routes
	protected := api.Group("", middleware.SessionMiddleware(cfg))

	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart/items", cartHandler.AddItem)
	protected.Patch("/cart/items/:id", cartHandler.UpdateItem)
	protected.Delete("/cart/items/:id", cartHandler.RemoveItem)

	protected.Get("/wishlist", wishlistHandler.GetWishlist)
	protected.Post("/wishlist/toggle", wishlistHandler.Toggle)

	protected.Get("/chat", chatHandler.GetTranscript)
	protected.Post("/chat", chatHandler.Send)
}
