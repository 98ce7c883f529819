package web

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"todo-service/internal/domain"
)

// serviceError turns a service failure into the response the route layer shows.
func (app *App) serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		return echo.ErrNotFound
	case errors.Is(err, domain.ErrUnauthenticated):
		return app.redirectToLogin(c)
	}
	return err
}

func (app *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code >= http.StatusInternalServerError {
		app.errorLog.Output(2, fmt.Sprintf("%s %s: %v\n%s", c.Request().Method, c.Request().URL.Path, err, debug.Stack()))
	}

	if c.Request().Method == http.MethodHead {
		if nerr := c.NoContent(code); nerr != nil {
			app.errorLog.Println(nerr)
		}
		return
	}

	data := &HTMLData{
		Title:   http.StatusText(code),
		Status:  code,
		Message: http.StatusText(code),
	}
	if rerr := app.render(c, code, "error", data); rerr != nil {
		app.errorLog.Printf("render error page: %v", rerr)
		if serr := c.String(code, http.StatusText(code)); serr != nil {
			app.errorLog.Println(serr)
		}
	}
}
