package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bookery_back_end/internal/config"
	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/models"
	"bookery_back_end/internal/routes"
	"bookery_back_end/internal/store"
)

func main() {
	config.Load()

	store.Init()
	seedCatalog()
	seedDemoUser()

	middleware.InitSessionStore(config.SessionSecret())

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	routes.RegisterRoutes(r)

	log.Println("🚀 Bookery server listening on port", config.Port())
	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

func seedCatalog() {
	store.Catalog.Seed(
		models.Book{Title: "The Great Gatsby", Category: "Fiction", Price: decimal.RequireFromString("10.99"), Image: "/images/books/the_great_gatsby.jpg"},
		models.Book{Title: "1984", Category: "Dystopia", Price: decimal.RequireFromString("8.99"), Image: "/images/books/1984.jpg"},
		models.Book{Title: "I Ching", Category: "Traditional", Price: decimal.RequireFromString("18.99"), Image: "/images/books/I-Ching.jpg"},
		models.Book{Title: "Moby Dick", Category: "Adventure", Price: decimal.RequireFromString("12.49"), Image: "/images/books/moby_dick.jpg"},
	)
	log.Printf("✅ Catalog seeded with %d books", store.Catalog.Len())
}

func seedDemoUser() {
	demo := &models.User{
		Email:    "demo@bookstore.com",
		Password: "demo123",
		Name:     "Demo User",
		Address:  "123 Demo Street, Demo City, DC 12345",
	}
	if err := store.Users.Create(demo); err != nil {
		log.Println("⚠️ Demo user already present:", err)
		return
	}
	log.Println("✅ Demo user created:", demo.Email)
}
