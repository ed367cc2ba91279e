package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carepoint/clinic-backend/controllers"
)

// SetupDoctorRoutes configures all doctor directory routes
func SetupDoctorRoutes(app *fiber.App, ctl *controllers.DoctorController) {
	doctor := app.Group("/doctor")
	doctor.Post("/", ctl.AddDoctor)
	doctor.Get("/", ctl.GetAllDoctors)
	doctor.Get("/:id", ctl.GetDoctor)
	doctor.Put("/:id", ctl.UpdateDoctor)
	doctor.Delete("/:id", ctl.DeleteDoctor)
}
