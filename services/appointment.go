package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/carepoint/clinic-backend/apperr"
	"github.com/carepoint/clinic-backend/models"
)

// AppointmentService owns the appointment lifecycle: booking against
// the user and doctor directories, the approve/reject status machine,
// and the read-side queries.
type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

// Book creates a PENDING appointment. Both references must resolve;
// the user is checked before the doctor. Nothing guards against a
// second booking for the same doctor and slot — overlapping
// appointments are accepted.
func (s *AppointmentService) Book(userID, doctorID uint, date, timeOfDay string) (models.Appointment, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Appointment{}, apperr.New(apperr.NotFound, "user not found with id: %d", userID)
		}
		return models.Appointment{}, err
	}

	var doctor models.Doctor
	if err := s.db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Appointment{}, apperr.New(apperr.NotFound, "doctor not found with id: %d", doctorID)
		}
		return models.Appointment{}, err
	}

	appointment := models.Appointment{
		UserID:          user.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Status:          models.StatusPending,
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		return models.Appointment{}, err
	}

	appointment.User = user
	appointment.Doctor = doctor
	return appointment, nil
}

// Approve marks the appointment APPROVED.
func (s *AppointmentService) Approve(id uint) (models.Appointment, error) {
	return s.setStatus(id, models.StatusApproved)
}

// Reject marks the appointment REJECTED.
func (s *AppointmentService) Reject(id uint) (models.Appointment, error) {
	return s.setStatus(id, models.StatusRejected)
}

// setStatus applies a decision from any current status; the machine is
// deliberately permissive and the last decision wins. The
// read-modify-write runs in one transaction so concurrent decisions on
// the same record don't lose updates.
func (s *AppointmentService) setStatus(id uint, status models.AppointmentStatus) (models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").Preload("Doctor").First(&appointment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "appointment not found with id: %d", id)
			}
			return err
		}
		appointment.Status = status
		return tx.Save(&appointment).Error
	})
	if err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// Delete removes an appointment by id. Deleting an unknown id is a
// quiet no-op.
func (s *AppointmentService) Delete(id uint) error {
	return s.db.Delete(&models.Appointment{}, id).Error
}

// ByUser returns every appointment booked by the given patient.
func (s *AppointmentService) ByUser(userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Preload("User").Preload("Doctor").
		Where("user_id = ?", userID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ByDoctor returns every appointment referencing the given doctor.
func (s *AppointmentService) ByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Preload("User").Preload("Doctor").
		Where("doctor_id = ?", doctorID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// All returns every appointment in the store.
func (s *AppointmentService) All() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Preload("User").Preload("Doctor").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
