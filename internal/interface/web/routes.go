package web

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Routes builds the echo instance serving every page of the application.
func (app *App) Routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = app.renderer
	e.HTTPErrorHandler = app.httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${remote_ip} ${method} ${uri} ${status} ${latency_human}\n",
		Output: app.infoLog.Writer(),
	}))
	e.Use(app.loadFlashes)
	e.Use(app.loadSession)

	e.GET("/", app.home)
	e.GET("/home", app.home)
	e.GET("/healthz", app.healthz)

	// Guest-only pages. Middleware is attached per route: a group with an
	// empty prefix would also swallow unknown paths.
	e.GET("/register", app.registerForm, app.requireGuest)
	e.POST("/register", app.register, app.requireGuest)
	e.GET("/login", app.loginForm, app.requireGuest)
	e.POST("/login", app.login, app.requireGuest)

	e.GET("/logout", app.logout)

	e.GET("/all_tasks", app.allTasks, app.requireAuth)
	e.GET("/add_task", app.addTaskForm, app.requireAuth)
	e.POST("/add_task", app.addTask, app.requireAuth)
	e.GET("/all_tasks/:id/update_task", app.updateTaskForm, app.requireAuth)
	e.POST("/all_tasks/:id/update_task", app.updateTask, app.requireAuth)
	e.GET("/all_tasks/:id/delete_task", app.deleteTask, app.requireAuth)
	e.GET("/account", app.account, app.requireAuth)
	e.POST("/account", app.updateAccount, app.requireAuth)

	return e
}
