package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"todo-service/internal/application/command"
	"todo-service/internal/domain"
)

func (app *App) home(c echo.Context) error {
	return app.render(c, http.StatusOK, "home", &HTMLData{Title: "Home"})
}

func (app *App) healthz(c echo.Context) error {
	if app.healthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := app.healthCheck(ctx); err != nil {
			app.errorLog.Printf("health check failed: %v", err)
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (app *App) registerForm(c echo.Context) error {
	return app.render(c, http.StatusOK, "register", &HTMLData{Title: "Register"})
}

func (app *App) register(c echo.Context) error {
	registerCommand := &command.RegisterUserCommand{
		Username:        c.FormValue("username"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
	}

	result, err := app.authService.Register(c.Request().Context(), registerCommand)
	if err != nil {
		if verr, ok := domain.AsValidation(err); ok {
			return app.render(c, http.StatusOK, "register", &HTMLData{
				Title:  "Register",
				Errors: verr.Fields,
				Form:   map[string]string{"username": registerCommand.Username},
			})
		}
		return err
	}

	app.infoLog.Printf("account created for %s", result.Result.Username)
	app.addFlash(c, "success", "Account Created For "+result.Result.Username)
	return c.Redirect(http.StatusFound, "/login")
}

func (app *App) loginForm(c echo.Context) error {
	return app.render(c, http.StatusOK, "login", &HTMLData{Title: "Login"})
}

func (app *App) login(c echo.Context) error {
	loginCommand := &command.LoginUserCommand{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	result, err := app.authService.Login(c.Request().Context(), loginCommand)
	if err != nil {
		data := &HTMLData{
			Title: "Login",
			Form:  map[string]string{"username": loginCommand.Username},
		}
		if verr, ok := domain.AsValidation(err); ok {
			data.Errors = verr.Fields
			return app.render(c, http.StatusOK, "login", data)
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			app.addFlash(c, "danger", domain.ErrInvalidCredentials.Error())
			return app.render(c, http.StatusOK, "login", data)
		}
		return err
	}

	app.setSessionCookie(c, result.Token)
	app.addFlash(c, "success", "Login Successfull.")
	return c.Redirect(http.StatusFound, "/all_tasks")
}

func (app *App) logout(c echo.Context) error {
	if err := app.authService.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return err
	}
	app.clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/login")
}

func (app *App) allTasks(c echo.Context) error {
	result, err := app.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return app.serviceError(c, err)
	}
	return app.render(c, http.StatusOK, "all_tasks", &HTMLData{
		Title: "All Tasks",
		Tasks: result.Result,
	})
}

func (app *App) addTaskForm(c echo.Context) error {
	return app.render(c, http.StatusOK, "add_task", &HTMLData{Title: "Add Task"})
}

func (app *App) addTask(c echo.Context) error {
	createCommand := &command.CreateTaskCommand{Content: c.FormValue("task_name")}

	if _, err := app.taskService.CreateTask(c.Request().Context(), createCommand); err != nil {
		if verr, ok := domain.AsValidation(err); ok {
			return app.render(c, http.StatusOK, "add_task", &HTMLData{
				Title:  "Add Task",
				Errors: verr.Fields,
				Form:   map[string]string{"task_name": createCommand.Content},
			})
		}
		return app.serviceError(c, err)
	}

	app.addFlash(c, "success", "Task Created")
	return c.Redirect(http.StatusFound, "/all_tasks")
}

func (app *App) updateTaskForm(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	result, err := app.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return app.serviceError(c, err)
	}
	return app.render(c, http.StatusOK, "update_task", &HTMLData{
		Title: "Update Task",
		Task:  result.Result,
		Form:  map[string]string{"task_name": result.Result.Content},
	})
}

func (app *App) updateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	updateCommand := &command.UpdateTaskCommand{Id: id, Content: c.FormValue("task_name")}
	if _, err := app.taskService.UpdateTask(c.Request().Context(), updateCommand); err != nil {
		if verr, ok := domain.AsValidation(err); ok {
			current, gerr := app.taskService.GetTask(c.Request().Context(), id)
			if gerr != nil {
				return app.serviceError(c, gerr)
			}
			return app.render(c, http.StatusOK, "update_task", &HTMLData{
				Title:  "Update Task",
				Task:   current.Result,
				Errors: verr.Fields,
				Form:   map[string]string{"task_name": updateCommand.Content},
			})
		}
		return app.serviceError(c, err)
	}

	app.addFlash(c, "success", "Task Updated")
	return c.Redirect(http.StatusFound, "/all_tasks")
}

func (app *App) deleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := app.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return app.serviceError(c, err)
	}

	app.addFlash(c, "success", "Task Deleted")
	return c.Redirect(http.StatusFound, "/all_tasks")
}

func (app *App) account(c echo.Context) error {
	result, err := app.authService.CurrentUser(c.Request().Context())
	if err != nil {
		return app.serviceError(c, err)
	}
	return app.render(c, http.StatusOK, "account", &HTMLData{
		Title:       "Account",
		CurrentUser: result.Result,
		Form:        map[string]string{"username": result.Result.Username},
	})
}

func (app *App) updateAccount(c echo.Context) error {
	updateCommand := &command.UpdateAccountCommand{Username: c.FormValue("username")}

	if _, err := app.authService.UpdateUsername(c.Request().Context(), updateCommand); err != nil {
		if verr, ok := domain.AsValidation(err); ok {
			return app.render(c, http.StatusOK, "account", &HTMLData{
				Title:  "Account",
				Errors: verr.Fields,
				Form:   map[string]string{"username": updateCommand.Username},
			})
		}
		return app.serviceError(c, err)
	}

	app.addFlash(c, "success", "Username Updated Successfully")
	return c.Redirect(http.StatusFound, "/account")
}

// taskID parses the :id path segment; anything but a positive integer is a 404.
func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.ErrNotFound
	}
	return uint(id), nil
}
