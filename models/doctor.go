package models

import (
	"time"
)

// Doctor is a bookable practitioner. Doctors are managed independently
// of User accounts; a doctor does not need a login to be bookable.
type Doctor struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Phone          *string   `json:"phone,omitempty"`
	Email          string    `json:"email" gorm:"unique"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
