package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/carepoint/clinic-backend/models"
	"github.com/carepoint/clinic-backend/services"
)

type AppointmentController struct {
	appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

// BookAppointment books a PENDING appointment for a patient with a
// doctor. Date and time are validated here so the core only ever sees
// well-formed values.
func (ctl *AppointmentController) BookAppointment(c *fiber.Ctx) error {
	type BookInput struct {
		UserID   uint   `json:"userId"`
		DoctorID uint   `json:"doctorId"`
		Date     string `json:"date"`
		Time     string `json:"time"`
	}

	input := new(BookInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}
	timeOfDay, err := parseTimeOfDay(input.Time)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid time, expected HH:MM or HH:MM:SS",
		})
	}

	appointment, err := ctl.appointments.Book(input.UserID, input.DoctorID, input.Date, timeOfDay)
	if err != nil {
		return fail(c, "Failed to book appointment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAllAppointments returns every appointment in the store.
func (ctl *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	appointments, err := ctl.appointments.All()
	if err != nil {
		return fail(c, "Failed to fetch appointments", err)
	}
	return c.JSON(appointments)
}

// GetByUser returns the appointments booked by one patient.
func (ctl *AppointmentController) GetByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	appointments, err := ctl.appointments.ByUser(uint(userID))
	if err != nil {
		return fail(c, "Failed to fetch appointments", err)
	}
	return c.JSON(appointments)
}

// GetByDoctor returns the appointments referencing one doctor.
func (ctl *AppointmentController) GetByDoctor(c *fiber.Ctx) error {
	doctorID, err := c.ParamsInt("doctorId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	appointments, err := ctl.appointments.ByDoctor(uint(doctorID))
	if err != nil {
		return fail(c, "Failed to fetch appointments", err)
	}
	return c.JSON(appointments)
}

// ApproveAppointment marks an appointment APPROVED.
func (ctl *AppointmentController) ApproveAppointment(c *fiber.Ctx) error {
	return ctl.decide(c, ctl.appointments.Approve)
}

// RejectAppointment marks an appointment REJECTED.
func (ctl *AppointmentController) RejectAppointment(c *fiber.Ctx) error {
	return ctl.decide(c, ctl.appointments.Reject)
}

func (ctl *AppointmentController) decide(c *fiber.Ctx, decision func(uint) (models.Appointment, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	appointment, err := decision(uint(id))
	if err != nil {
		return fail(c, "Failed to update appointment", err)
	}
	return c.JSON(appointment)
}

// DeleteAppointment removes an appointment; unknown ids are a no-op.
func (ctl *AppointmentController) DeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	if err := ctl.appointments.Delete(uint(id)); err != nil {
		return fail(c, "Failed to delete appointment", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseTimeOfDay(value string) (string, error) {
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t.Format(models.TimeLayout), nil
	}
	t, err := time.Parse(models.TimeLayout, value)
	if err != nil {
		return "", err
	}
	return t.Format(models.TimeLayout), nil
}
