package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/models"
	"bookery_back_end/internal/store"
)

func RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Cart":        store.Cart,
		"CurrentUser": middleware.CurrentUser(c),
		"Flashes":     middleware.TakeFlashes(c),
	})
}

// Register creates an account and logs the user in. Only an exact-case
// duplicate email is rejected: "a@b.com" and "A@b.com" coexist.
func Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	name := c.PostForm("name")
	address := c.PostForm("address")

	if email == "" || password == "" || name == "" {
		middleware.AddFlash(c, "error", "Please fill in all required fields")
		RegisterPage(c)
		return
	}

	user := &models.User{
		Email:    email,
		Password: password,
		Name:     name,
		Address:  address,
	}

	if err := store.Users.Create(user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			middleware.AddFlash(c, "error", "An account with this email already exists")
		} else {
			middleware.AddFlash(c, "error", "Could not create account")
		}
		RegisterPage(c)
		return
	}

	middleware.SetSessionUser(c, email)
	middleware.SetRememberCookie(c, email)
	middleware.AddFlash(c, "success", "Account created successfully! You are now logged in.")
	c.Redirect(http.StatusFound, "/")
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Cart":        store.Cart,
		"CurrentUser": middleware.CurrentUser(c),
		"Flashes":     middleware.TakeFlashes(c),
	})
}

// Login compares email and plaintext password, both case-sensitively.
func Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, ok := store.Users.Get(email)
	if !ok || user.Password != password {
		middleware.AddFlash(c, "error", "Invalid email or password")
		LoginPage(c)
		return
	}

	middleware.SetSessionUser(c, email)
	middleware.SetRememberCookie(c, email)
	middleware.AddFlash(c, "success", "Logged in successfully!")
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	middleware.ClearSessionUser(c)
	middleware.ClearRememberCookie(c)
	middleware.AddFlash(c, "success", "Logged out successfully!")
	c.Redirect(http.StatusFound, "/")
}
