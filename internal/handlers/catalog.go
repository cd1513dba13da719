package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/store"
)

// Index renders the catalog with the cart summary.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Books":       store.Catalog.All(),
		"Cart":        store.Cart,
		"CurrentUser": middleware.CurrentUser(c),
		"Flashes":     middleware.TakeFlashes(c),
	})
}
