package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/carepoint/clinic-backend/controllers"
	"github.com/carepoint/clinic-backend/db"
	"github.com/carepoint/clinic-backend/routes"
	"github.com/carepoint/clinic-backend/services"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	userService := services.NewUserService(db.DB)
	doctorService := services.NewDoctorService(db.DB)
	appointmentService := services.NewAppointmentService(db.DB)

	routes.SetupUserRoutes(app, controllers.NewUserController(userService))
	routes.SetupDoctorRoutes(app, controllers.NewDoctorController(doctorService))
	routes.SetupAppointmentRoutes(app, controllers.NewAppointmentController(appointmentService))

	app.Listen(":8000")
}
