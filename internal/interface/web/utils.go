package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-service/internal/application/common"
)

const (
	SessionCookieName = "session"
	userContextKey    = "currentUser"
)

func (app *App) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(app.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   app.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *App) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func currentUser(c echo.Context) *common.UserResult {
	user, _ := c.Get(userContextKey).(*common.UserResult)
	return user
}

func isAuthenticated(c echo.Context) bool {
	return currentUser(c) != nil
}

func noStore(c echo.Context) {
	h := c.Response().Header()
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}
