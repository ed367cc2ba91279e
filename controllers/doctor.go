package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carepoint/clinic-backend/services"
)

type DoctorController struct {
	doctors *services.DoctorService
}

func NewDoctorController(doctors *services.DoctorService) *DoctorController {
	return &DoctorController{doctors: doctors}
}

// AddDoctor creates a doctor record.
func (ctl *DoctorController) AddDoctor(c *fiber.Ctx) error {
	input := new(services.DoctorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	doctor, err := ctl.doctors.Add(*input)
	if err != nil {
		return fail(c, "Failed to add doctor", err)
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// GetAllDoctors lists every doctor.
func (ctl *DoctorController) GetAllDoctors(c *fiber.Ctx) error {
	doctors, err := ctl.doctors.GetAll()
	if err != nil {
		return fail(c, "Failed to fetch doctors", err)
	}
	return c.JSON(doctors)
}

// GetDoctor returns one doctor by id.
func (ctl *DoctorController) GetDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	doctor, err := ctl.doctors.GetByID(uint(id))
	if err != nil {
		return fail(c, "Failed to fetch doctor", err)
	}
	return c.JSON(doctor)
}

// UpdateDoctor overwrites a doctor's fields.
func (ctl *DoctorController) UpdateDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	input := new(services.DoctorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	doctor, err := ctl.doctors.Update(uint(id), *input)
	if err != nil {
		return fail(c, "Failed to update doctor", err)
	}
	return c.JSON(doctor)
}

// DeleteDoctor removes a doctor by id.
func (ctl *DoctorController) DeleteDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}

	if err := ctl.doctors.Delete(uint(id)); err != nil {
		return fail(c, "Failed to delete doctor", err)
	}
	return c.JSON(fiber.Map{
		"message": "Doctor deleted successfully",
	})
}
