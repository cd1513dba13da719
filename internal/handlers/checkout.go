package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookery_back_end/internal/mailer"
	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/models"
	"bookery_back_end/internal/payment"
	"bookery_back_end/internal/store"
)

// shippingFields in form order, so the first missing one is flashed.
var shippingFields = []string{"name", "email", "address", "city", "zip_code"}

// CheckoutPage renders the checkout form, or bounces home when the cart
// is empty.
func CheckoutPage(c *gin.Context) {
	if store.Cart.IsEmpty() {
		middleware.AddFlash(c, "error", "Your cart is empty!")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Cart":        store.Cart,
		"TotalPrice":  store.Cart.TotalPrice(),
		"CurrentUser": middleware.CurrentUser(c),
		"Flashes":     middleware.TakeFlashes(c),
	})
}

// ProcessCheckout runs the checkout pipeline: empty-cart guard,
// shipping validation, card validation, discount, mock gateway, order
// creation. Each step short-circuits back to the form on failure.
func ProcessCheckout(c *gin.Context) {
	if store.Cart.IsEmpty() {
		middleware.AddFlash(c, "error", "Your cart is empty!")
		c.Redirect(http.StatusFound, "/")
		return
	}

	shipping := models.ShippingInfo{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Address: c.PostForm("address"),
		City:    c.PostForm("city"),
		ZipCode: c.PostForm("zip_code"),
	}

	for _, field := range shippingFields {
		if c.PostForm(field) == "" {
			label := strings.ReplaceAll(field, "_", " ")
			middleware.AddFlash(c, "error", fmt.Sprintf("Please fill in the %s field", label))
			c.Redirect(http.StatusFound, "/checkout")
			return
		}
	}

	paymentInfo := models.PaymentInfo{
		Method:     c.PostForm("payment_method"),
		CardNumber: c.PostForm("card_number"),
		ExpiryDate: c.PostForm("expiry_date"),
		CVV:        c.PostForm("cvv"),
	}

	if paymentInfo.Method == "credit_card" {
		if paymentInfo.CardNumber == "" || paymentInfo.ExpiryDate == "" || paymentInfo.CVV == "" {
			middleware.AddFlash(c, "error", "Please fill in all credit card details")
			c.Redirect(http.StatusFound, "/checkout")
			return
		}
	}

	totalAmount := store.Cart.TotalPrice()

	// An invalid code is flashed but does not abort the checkout.
	discountCode := c.PostForm("discount_code")
	var appliedCode string
	validation := validateDiscount(discountCode, totalAmount)
	switch {
	case validation.IsValid:
		totalAmount = totalAmount.Sub(validation.Amount)
		appliedCode = validation.Code
		middleware.AddFlash(c, "success",
			fmt.Sprintf("Discount applied! You saved $%s", validation.Amount.StringFixed(2)))
	case discountCode != "":
		middleware.AddFlash(c, "error", validation.ErrorMessage)
	}

	result := payment.ProcessPayment(paymentInfo)
	if !result.Success {
		log.Printf("❌ Payment declined for %s: %s", shipping.Email, result.Message)
		middleware.AddFlash(c, "error", result.Message)
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	order := &models.Order{
		ID:        newOrderID(),
		UserEmail: shipping.Email,
		Items:     store.Cart.Items(),
		Shipping:  shipping,
		Payment: models.PaymentRecord{
			Method:        paymentInfo.Method,
			TransactionID: result.TransactionID,
		},
		DiscountCode:   appliedCode,
		DiscountAmount: validation.Amount,
		TotalAmount:    totalAmount,
		CreatedAt:      time.Now(),
		Status:         "Confirmed",
	}

	store.Orders.Put(order)

	if user := middleware.CurrentUser(c); user != nil {
		user.AddOrder(order)
	}

	if err := mailer.SendOrderConfirmation(order); err != nil {
		log.Printf("⚠️ Could not emit confirmation email for order %s: %v", order.ID, err)
	}

	store.Cart.Clear()
	middleware.SetLastOrderID(c, order.ID)

	log.Printf("✅ Order %s confirmed for %s ($%s)", order.ID, shipping.Email, totalAmount.StringFixed(2))
	middleware.AddFlash(c, "success", "Payment successful! Your order has been confirmed.")
	c.Redirect(http.StatusFound, "/order-confirmation/"+order.ID)
}

// newOrderID is a short human-readable identifier: the uppercased first
// 8 characters of a UUID. Collisions are theoretically possible and
// ignored, as in the original demo.
func newOrderID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
