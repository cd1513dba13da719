package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"bookery_back_end/internal/config"
	"bookery_back_end/internal/store"
)

const (
	rememberCookie = "remember_token"
	rememberMaxAge = 30 * 24 * time.Hour
)

// SetRememberCookie issues a signed token that can re-establish the
// session after the session cookie expires.
func SetRememberCookie(c *gin.Context, email string) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(rememberMaxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return
	}
	c.SetCookie(rememberCookie, signed, int(rememberMaxAge.Seconds()), "/", "", false, true)
}

func ClearRememberCookie(c *gin.Context) {
	c.SetCookie(rememberCookie, "", -1, "/", "", false, true)
}

// ParseRememberToken validates a remember token and returns the email
// claim.
func ParseRememberToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return config.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid remember token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid remember token claims")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("remember token missing email claim")
	}
	return email, nil
}

// RememberMe restores the session user from a valid remember token when
// the session itself carries none.
func RememberMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := Session(c)
		if _, ok := s.Values[sessionUserKey].(string); ok {
			c.Next()
			return
		}

		raw, err := c.Cookie(rememberCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		email, err := ParseRememberToken(raw)
		if err != nil {
			c.Next()
			return
		}
		if _, exists := store.Users.Get(email); !exists {
			c.Next()
			return
		}

		s.Values[sessionUserKey] = email
		_ = s.Save(c.Request, c.Writer)
		c.Next()
	}
}
