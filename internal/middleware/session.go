package middleware

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"bookery_back_end/internal/models"
	"bookery_back_end/internal/store"
)

const (
	sessionName         = "bookery_session"
	sessionUserKey      = "user_email"
	sessionLastOrderKey = "last_order_id"
)

// Flash is a one-shot message rendered by the next page view.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

var sessionStore *sessions.CookieStore

func InitSessionStore(secret string) {
	sessionStore = sessions.NewCookieStore([]byte(secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false, // false in dev, true behind TLS
		SameSite: http.SameSiteLaxMode,
	}
}

func Session(c *gin.Context) *sessions.Session {
	s, _ := sessionStore.Get(c.Request, sessionName)
	return s
}

func SetSessionUser(c *gin.Context, email string) {
	s := Session(c)
	s.Values[sessionUserKey] = email
	_ = s.Save(c.Request, c.Writer)
}

func ClearSessionUser(c *gin.Context) {
	s := Session(c)
	delete(s.Values, sessionUserKey)
	_ = s.Save(c.Request, c.Writer)
}

func SetLastOrderID(c *gin.Context, orderID string) {
	s := Session(c)
	s.Values[sessionLastOrderKey] = orderID
	_ = s.Save(c.Request, c.Writer)
}

// CurrentUser resolves the session email against the user store.
// Returns nil when nobody is logged in.
func CurrentUser(c *gin.Context) *models.User {
	s := Session(c)
	email, ok := s.Values[sessionUserKey].(string)
	if !ok {
		return nil
	}
	user, ok := store.Users.Get(email)
	if !ok {
		return nil
	}
	return user
}

func AddFlash(c *gin.Context, category, message string) {
	s := Session(c)
	s.AddFlash(Flash{Category: category, Message: message})
	_ = s.Save(c.Request, c.Writer)
}

// TakeFlashes drains the pending flash messages.
func TakeFlashes(c *gin.Context) []Flash {
	s := Session(c)
	raw := s.Flashes()
	_ = s.Save(c.Request, c.Writer)

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

// LoginRequired redirects anonymous requests to the login page.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := Session(c)
		if _, ok := s.Values[sessionUserKey].(string); !ok {
			AddFlash(c, "error", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
