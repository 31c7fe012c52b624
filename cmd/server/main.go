package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/lessence/internal/config"
	"github.com/example/lessence/internal/database"
	"github.com/example/lessence/internal/routes"
	"github.com/example/lessence/internal/store"
)

func main() {
	cfg := config.Load()

	perfumes := store.SignatureCollection()
	if cfg.CatalogSource == "postgres" {
		db := database.Connect(cfg.DatabaseURL)
		loaded, err := database.LoadCatalog(db)
		if err != nil {
			log.Fatalf("failed to load catalogue: %v", err)
		}
		perfumes = loaded
	}
	catalog := store.NewCatalog(perfumes)

	var storage store.WishlistStorage
	if bolt, err := store.OpenBoltStorage(cfg.WishlistDBPath); err != nil {
		log.Printf("wishlist storage unavailable, keeping wishlists in memory: %v", err)
		storage = store.NewMemoryStorage()
	} else {
		defer bolt.Close()
		storage = bolt
	}

	carts := store.NewCartStore(catalog)
	wishlist := store.NewWishlistStore(storage)
	chats := store.NewChatStore()

	app := fiber.New(fiber.Config{
		AppName: "L'Essence Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, cfg, catalog, carts, wishlist, chats)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
