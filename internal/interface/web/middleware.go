package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-service/internal/domain"
)

const loginRequiredMessage = "Please log in to access this page."

// loadSession resolves the session cookie into the current user and
// stores the user's id on the request context for the services.
func (app *App) loadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if token == "" {
			return next(c)
		}

		result, err := app.authService.Authenticate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				app.clearSessionCookie(c)
				return next(c)
			}
			return err
		}

		c.Set(userContextKey, result.Result)
		req := c.Request()
		c.SetRequest(req.WithContext(domain.WithUserID(req.Context(), result.Result.Id)))
		return next(c)
	}
}

func (app *App) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		noStore(c)
		if !isAuthenticated(c) {
			return app.redirectToLogin(c)
		}
		return next(c)
	}
}

func (app *App) requireGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		noStore(c)
		if isAuthenticated(c) {
			return c.Redirect(http.StatusFound, "/all_tasks")
		}
		return next(c)
	}
}

func (app *App) redirectToLogin(c echo.Context) error {
	app.addFlash(c, "info", loginRequiredMessage)
	return c.Redirect(http.StatusFound, "/login")
}
