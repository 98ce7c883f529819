package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	flashCookieName = "flash"
	flashContextKey = "flashes"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func encodeFlashes(flashes []Flash) (string, error) {
	data, err := json.Marshal(flashes)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// decodeFlashes ignores malformed cookies.
func decodeFlashes(value string) []Flash {
	if value == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}

// loadFlashes makes flashes left by the previous response available to this one.
func (app *App) loadFlashes(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(flashCookieName); err == nil {
			c.Set(flashContextKey, decodeFlashes(cookie.Value))
		}
		return next(c)
	}
}

func pendingFlashes(c echo.Context) []Flash {
	flashes, _ := c.Get(flashContextKey).([]Flash)
	return flashes
}

// addFlash queues a notice for the next rendered page.
func (app *App) addFlash(c echo.Context, category, message string) {
	flashes := append(pendingFlashes(c), Flash{Category: category, Message: message})
	c.Set(flashContextKey, flashes)

	value, err := encodeFlashes(flashes)
	if err != nil {
		app.errorLog.Printf("encode flashes: %v", err)
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   app.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns queued notices and expires the cookie carrying them.
func (app *App) popFlashes(c echo.Context) []Flash {
	flashes := pendingFlashes(c)
	if len(flashes) == 0 {
		return nil
	}
	c.Set(flashContextKey, nil)
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return flashes
}
