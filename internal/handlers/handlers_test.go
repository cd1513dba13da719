package handlers

// Test router mirrors the production route table without importing the
// routes package, which would be an import cycle from here.

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bookery_back_end/internal/mailer"
	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/models"
	"bookery_back_end/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store.Init()
	store.Catalog.Seed(
		models.Book{Title: "The Great Gatsby", Category: "Fiction", Price: decimal.RequireFromString("10.99"), Image: "/images/books/the_great_gatsby.jpg"},
		models.Book{Title: "1984", Category: "Dystopia", Price: decimal.RequireFromString("8.99"), Image: "/images/books/1984.jpg"},
	)
	if err := store.Users.Create(&models.User{
		Email:    "demo@bookstore.com",
		Password: "demo123",
		Name:     "Demo User",
		Address:  "123 Demo Street, Demo City, DC 12345",
	}); err != nil {
		t.Fatalf("seed demo user: %v", err)
	}

	middleware.InitSessionStore("test-session-secret")

	mailer.Out = io.Discard
	t.Cleanup(func() { mailer.Out = os.Stdout })

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	r.Use(middleware.RememberMe())

	r.GET("/", Index)
	r.GET("/cart", ViewCart)
	r.POST("/add-to-cart", AddToCart)
	r.POST("/remove-from-cart", RemoveFromCart)
	r.POST("/update-cart", UpdateCart)
	r.POST("/clear-cart", ClearCart)

	r.GET("/checkout", CheckoutPage)
	r.POST("/process-checkout", ProcessCheckout)
	r.GET("/order-confirmation/:id", OrderConfirmation)
	r.GET("/order-confirmation/:id/qr", OrderQR)

	r.GET("/register", RegisterPage)
	r.POST("/register", Register)
	r.GET("/login", LoginPage)
	r.POST("/login", Login)
	r.GET("/logout", Logout)

	authed := r.Group("/", middleware.LoginRequired())
	authed.GET("/account", Account)
	authed.POST("/update-profile", UpdateProfile)

	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAs performs a form login and returns the resulting cookies.
func loginAs(t *testing.T, r *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("login failed: status %d", w.Code)
	}
	return w.Result().Cookies()
}

// validCheckoutForm fills every required field with accepted values.
func validCheckoutForm() url.Values {
	return url.Values{
		"name":           {"Demo User"},
		"email":          {"demo@bookstore.com"},
		"address":        {"123 Demo Street"},
		"city":           {"Demo City"},
		"zip_code":       {"12345"},
		"payment_method": {"credit_card"},
		"card_number":    {"4242424242424242"},
		"expiry_date":    {"12/28"},
		"cvv":            {"123"},
	}
}

func addToCart(t *testing.T, r *gin.Engine, title, quantity string) {
	t.Helper()
	w := postForm(r, "/add-to-cart", url.Values{
		"title":    {title},
		"quantity": {quantity},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("add to cart failed: status %d", w.Code)
	}
}
