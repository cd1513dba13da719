package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"bookery_back_end/internal/config"
	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/store"
)

func OrderConfirmation(c *gin.Context) {
	orderID := c.Param("id")

	order, ok := store.Orders.Get(orderID)
	if !ok {
		middleware.AddFlash(c, "error", "Order not found")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "order_confirmation.html", gin.H{
		"Order":       order,
		"Cart":        store.Cart,
		"CurrentUser": middleware.CurrentUser(c),
		"Flashes":     middleware.TakeFlashes(c),
	})
}

// OrderQR serves a PNG QR code pointing back at the confirmation page.
func OrderQR(c *gin.Context) {
	orderID := c.Param("id")

	if _, ok := store.Orders.Get(orderID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	png, err := qrcode.Encode(config.BaseURL()+"/order-confirmation/"+orderID, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
