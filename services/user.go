package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/carepoint/clinic-backend/apperr"
	"github.com/carepoint/clinic-backend/models"
)

// UserService owns registration, login and the admin-side user
// directory. It takes its DB handle at construction.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a user account. Role comes from the caller as
// USER or DOCTOR; ADMIN is rejected in any letter case.
func (s *UserService) Register(name, email, password, role string) (models.UserResponse, error) {
	var existing models.User
	if s.db.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return models.UserResponse{}, apperr.New(apperr.DuplicateEmail, "user with email %s already exists", email)
	}

	if strings.EqualFold(role, models.RoleAdmin) {
		return models.UserResponse{}, apperr.New(apperr.ForbiddenRole, "admin registration is not allowed through this endpoint")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserResponse{}, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return models.UserResponse{}, err
	}

	return user.Public(), nil
}

// Login checks the supplied credentials and returns the user's id and
// role. The stored credential is a bcrypt hash.
func (s *UserService) Login(email, password string) (models.LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LoginResponse{}, apperr.New(apperr.NotFound, "user not found")
		}
		return models.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.LoginResponse{}, apperr.New(apperr.InvalidCredential, "invalid password")
	}

	return models.LoginResponse{UserID: user.ID, Role: user.Role}, nil
}

// GetByEmail looks a user up by email.
func (s *UserService) GetByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.New(apperr.NotFound, "user not found")
		}
		return models.User{}, err
	}
	return user, nil
}

// List returns the public projection of every user, in store order.
func (s *UserService) List() ([]models.UserResponse, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// Delete removes a user by id. Unlike appointment deletion this is an
// admin action against a named record, so a missing id is an error.
func (s *UserService) Delete(id uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.New(apperr.NotFound, "user not found with id: %d", id)
	}
	return s.db.Delete(&models.User{}, id).Error
}
