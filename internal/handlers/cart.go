package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/store"
)

func ViewCart(c *gin.Context) {
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Cart":        store.Cart,
		"CurrentUser": middleware.CurrentUser(c),
		"Flashes":     middleware.TakeFlashes(c),
	})
}

// AddToCart handles POST /add-to-cart and redirects back to the
// catalog.
func AddToCart(c *gin.Context) {
	title := c.PostForm("title")
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil {
		middleware.AddFlash(c, "error", "Invalid quantity")
		c.Redirect(http.StatusFound, "/")
		return
	}

	book, ok := store.Catalog.GetByTitle(title)
	if !ok {
		middleware.AddFlash(c, "error", "Book not found!")
		c.Redirect(http.StatusFound, "/")
		return
	}

	store.Cart.Add(book, quantity)
	middleware.AddFlash(c, "success", fmt.Sprintf("Added %d %q to cart!", quantity, book.Title))
	c.Redirect(http.StatusFound, "/")
}

func RemoveFromCart(c *gin.Context) {
	title := c.PostForm("title")
	store.Cart.Remove(title)
	middleware.AddFlash(c, "success", fmt.Sprintf("Removed %q from cart!", title))
	c.Redirect(http.StatusFound, "/cart")
}

// UpdateCart sets the quantity verbatim. A zero quantity keeps a
// zero-quantity entry in the cart even though the flash claims removal.
func UpdateCart(c *gin.Context) {
	title := c.PostForm("title")
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil {
		middleware.AddFlash(c, "error", "Invalid quantity")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	store.Cart.Update(title, quantity)

	if quantity <= 0 {
		middleware.AddFlash(c, "success", fmt.Sprintf("Removed %q from cart!", title))
	} else {
		middleware.AddFlash(c, "success", fmt.Sprintf("Updated %q quantity to %d!", title, quantity))
	}
	c.Redirect(http.StatusFound, "/cart")
}

func ClearCart(c *gin.Context) {
	store.Cart.Clear()
	middleware.AddFlash(c, "success", "Cart cleared!")
	c.Redirect(http.StatusFound, "/cart")
}
