package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookery_back_end/internal/middleware"
	"bookery_back_end/internal/store"
)

func Account(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		middleware.AddFlash(c, "error", "Please log in to access this page.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "account.html", gin.H{
		"Cart":        store.Cart,
		"CurrentUser": user,
		"Orders":      user.OrderHistory(),
		"Flashes":     middleware.TakeFlashes(c),
	})
}

// UpdateProfile changes name, address and optionally the password.
// Absent form fields keep their current value.
func UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		middleware.AddFlash(c, "error", "Please log in to access this page.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user.Name = c.DefaultPostForm("name", user.Name)
	user.Address = c.DefaultPostForm("address", user.Address)

	if newPassword := c.PostForm("new_password"); newPassword != "" {
		user.Password = newPassword
		middleware.AddFlash(c, "success", "Password updated successfully!")
	} else {
		middleware.AddFlash(c, "success", "Profile updated successfully!")
	}

	c.Redirect(http.StatusFound, "/account")
}
