package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carepoint/clinic-backend/controllers"
)

// SetupUserRoutes configures registration, login and user directory routes
func SetupUserRoutes(app *fiber.App, ctl *controllers.UserController) {
	user := app.Group("/user")
	user.Post("/register", ctl.Register)
	user.Post("/login", ctl.Login)
	user.Get("/", ctl.GetAllUsers)
	user.Delete("/:id", ctl.DeleteUser)
}
