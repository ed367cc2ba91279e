package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/carepoint/clinic-backend/apperr"
	"github.com/carepoint/clinic-backend/models"
)

// DoctorService manages the doctor directory.
type DoctorService struct {
	db *gorm.DB
}

func NewDoctorService(db *gorm.DB) *DoctorService {
	return &DoctorService{db: db}
}

// DoctorInput carries the writable doctor fields for create and update.
type DoctorInput struct {
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Phone          *string `json:"phone"`
	Email          string  `json:"email"`
}

// Add creates a doctor. A phone that is present but blank is stored as
// absent.
func (s *DoctorService) Add(in DoctorInput) (models.Doctor, error) {
	var existing models.Doctor
	if s.db.Where("email = ?", in.Email).First(&existing).RowsAffected > 0 {
		return models.Doctor{}, apperr.New(apperr.DuplicateEmail, "doctor with email %s already exists", in.Email)
	}

	doctor := models.Doctor{
		Name:           in.Name,
		Specialization: in.Specialization,
		Phone:          normalizePhone(in.Phone),
		Email:          in.Email,
	}
	if err := s.db.Create(&doctor).Error; err != nil {
		return models.Doctor{}, err
	}
	return doctor, nil
}

func (s *DoctorService) GetAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorService) GetByID(id uint) (models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Doctor{}, apperr.New(apperr.NotFound, "doctor not found with id: %d", id)
		}
		return models.Doctor{}, err
	}
	return doctor, nil
}

// Update overwrites name, specialization, phone and email as given.
// Email uniqueness is not re-checked on update, matching create-only
// enforcement in the directory.
func (s *DoctorService) Update(id uint, in DoctorInput) (models.Doctor, error) {
	doctor, err := s.GetByID(id)
	if err != nil {
		return models.Doctor{}, err
	}

	doctor.Name = in.Name
	doctor.Specialization = in.Specialization
	doctor.Phone = in.Phone
	doctor.Email = in.Email

	if err := s.db.Save(&doctor).Error; err != nil {
		return models.Doctor{}, err
	}
	return doctor, nil
}

// Delete removes a doctor by id. Deleting an unknown id is a no-op,
// matching the underlying delete-by-id semantics.
func (s *DoctorService) Delete(id uint) error {
	return s.db.Delete(&models.Doctor{}, id).Error
}

func normalizePhone(phone *string) *string {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return nil
	}
	return phone
}
