package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carepoint/clinic-backend/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Register handles user registration
func (ctl *UserController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Validate input
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	user, err := ctl.users.Register(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		return fail(c, "Failed to register user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user authentication
func (ctl *UserController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	result, err := ctl.users.Login(input.Email, input.Password)
	if err != nil {
		return fail(c, "Login failed", err)
	}

	return c.JSON(result)
}

// GetAllUsers lists every user as a public projection.
func (ctl *UserController) GetAllUsers(c *fiber.Ctx) error {
	users, err := ctl.users.List()
	if err != nil {
		return fail(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// DeleteUser removes a user by id.
func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := ctl.users.Delete(uint(id)); err != nil {
		return fail(c, "Failed to delete user", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
