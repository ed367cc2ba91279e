package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "PENDING"
	StatusApproved AppointmentStatus = "APPROVED"
	StatusRejected AppointmentStatus = "REJECTED"
)

// Layouts for the booking date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment links a patient to a doctor for a given calendar date and
// time of day. Every appointment starts out PENDING; only an explicit
// approve or reject decision moves it off that status.
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	UserID          uint              `json:"user_id"`
	User            User              `json:"user" gorm:"foreignKey:UserID"`
	DoctorID        uint              `json:"doctor_id"`
	Doctor          Doctor            `json:"doctor" gorm:"foreignKey:DoctorID"`
	AppointmentDate string            `json:"appointment_date"` // "2006-01-02"
	AppointmentTime string            `json:"appointment_time"` // "15:04"
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
