package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookery_back_end/internal/handlers"
	"bookery_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.Default())
	r.Use(middleware.RememberMe())

	r.Static("/static", "./web/static")
	r.Static("/images", "./web/static/images")

	// Catalog & cart
	r.GET("/", handlers.Index)
	r.GET("/cart", handlers.ViewCart)
	r.POST("/add-to-cart", handlers.AddToCart)
	r.POST("/remove-from-cart", handlers.RemoveFromCart)
	r.POST("/update-cart", handlers.UpdateCart)
	r.POST("/clear-cart", handlers.ClearCart)

	// Checkout
	r.GET("/checkout", handlers.CheckoutPage)
	r.POST("/process-checkout", handlers.ProcessCheckout)
	r.GET("/order-confirmation/:id", handlers.OrderConfirmation)
	r.GET("/order-confirmation/:id/qr", handlers.OrderQR)

	// Accounts
	r.GET("/register", handlers.RegisterPage)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.LoginPage)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	authed := r.Group("/", middleware.LoginRequired())
	authed.GET("/account", handlers.Account)
	authed.POST("/update-profile", handlers.UpdateProfile)
}
