package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"herdbook/pkg/auth/session"
)

// RequireLogin guards routes behind the session cookie. On a missing or
// invalid token the browser is sent to the login page.
func RequireLogin(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(session.CookieName)
			if err != nil || ck.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			claims, err := session.ParseToken(secret, ck.Value)
			if err != nil {
				session.ClearCookie(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set("uid", claims.UserID)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}
