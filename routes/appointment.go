package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carepoint/clinic-backend/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctl *controllers.AppointmentController) {
	appointment := app.Group("/appointment")
	appointment.Post("/book", ctl.BookAppointment)
	appointment.Get("/", ctl.GetAllAppointments)
	appointment.Get("/user/:userId", ctl.GetByUser)
	appointment.Get("/doctor/:doctorId", ctl.GetByDoctor)
	appointment.Put("/approve/:id", ctl.ApproveAppointment)
	appointment.Put("/reject/:id", ctl.RejectAppointment)
	appointment.Delete("/:id", ctl.DeleteAppointment)
}
