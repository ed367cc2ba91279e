package services_test

import (
	"testing"

	"github.com/carepoint/clinic-backend/apperr"
	"github.com/carepoint/clinic-backend/models"
	"github.com/carepoint/clinic-backend/services"
)

func TestBookAppointment(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	user := seedUser(t, db)
	doctor := seedDoctor(t, db)

	appointment, err := svc.Book(user.ID, doctor.ID, "2026-09-15", "10:30")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appointment.Status != models.StatusPending {
		t.Fatalf("expected PENDING, got %s", appointment.Status)
	}
	if appointment.UserID != user.ID || appointment.DoctorID != doctor.ID {
		t.Fatalf("references not preserved: %+v", appointment)
	}
	if appointment.AppointmentDate != "2026-09-15" || appointment.AppointmentTime != "10:30" {
		t.Fatalf("date/time not preserved: %+v", appointment)
	}
	if appointment.User.ID != user.ID || appointment.Doctor.ID != doctor.ID {
		t.Fatal("expected user and doctor resolved on the returned record")
	}
}

func TestBookUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	doctor := seedDoctor(t, db)

	_, err := svc.Book(999, doctor.ID, "2026-09-15", "10:30")
	if !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestBookUnknownDoctor(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	user := seedUser(t, db)

	_, err := svc.Book(user.ID, 999, "2026-09-15", "10:30")
	if !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

// Overlapping bookings for the same doctor and slot are accepted;
// the scheduler does not serialize them.
func TestBookSameSlotTwice(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	doctor := seedDoctor(t, db)
	first := seedUser(t, db)
	second := seedUser(t, db)

	if _, err := svc.Book(first.ID, doctor.ID, "2026-09-15", "10:30"); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Book(second.ID, doctor.ID, "2026-09-15", "10:30"); err != nil {
		t.Fatalf("second booking for the same slot: %v", err)
	}

	appointments, err := svc.ByDoctor(doctor.ID)
	if err != nil {
		t.Fatalf("by doctor: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("expected both bookings stored, got %d", len(appointments))
	}
}

func TestApprove(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	user := seedUser(t, db)
	doctor := seedDoctor(t, db)

	booked, err := svc.Book(user.ID, doctor.ID, "2026-09-15", "10:30")
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	approved, err := svc.Approve(booked.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != models.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", approved.Status)
	}
}

// The status machine has no transition guard: the last decision wins,
// even from a terminal state.
func TestApproveThenReject(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	user := seedUser(t, db)
	doctor := seedDoctor(t, db)

	booked, err := svc.Book(user.ID, doctor.ID, "2026-09-15", "10:30")
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if _, err := svc.Approve(booked.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	rejected, err := svc.Reject(booked.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != models.StatusRejected {
		t.Fatalf("expected REJECTED, got %s", rejected.Status)
	}

	// And back again.
	approved, err := svc.Approve(booked.ID)
	if err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if approved.Status != models.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", approved.Status)
	}
}

func TestDecideUnknownAppointment(t *testing.T) {
	svc := services.NewAppointmentService(setupDB(t))

	if _, err := svc.Approve(999); !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("approve: expected NotFound, got %v", err)
	}
	if _, err := svc.Reject(999); !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("reject: expected NotFound, got %v", err)
	}
}

func TestQueries(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	alice := seedUser(t, db)
	bob := seedUser(t, db)
	cardio := seedDoctor(t, db)
	neuro := seedDoctor(t, db)

	if _, err := svc.Book(alice.ID, cardio.ID, "2026-09-15", "09:00"); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := svc.Book(alice.ID, neuro.ID, "2026-09-16", "11:00"); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := svc.Book(bob.ID, cardio.ID, "2026-09-17", "14:00"); err != nil {
		t.Fatalf("book: %v", err)
	}

	byAlice, err := svc.ByUser(alice.ID)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byAlice) != 2 {
		t.Fatalf("expected 2 appointments for alice, got %d", len(byAlice))
	}

	byCardio, err := svc.ByDoctor(cardio.ID)
	if err != nil {
		t.Fatalf("by doctor: %v", err)
	}
	if len(byCardio) != 2 {
		t.Fatalf("expected 2 appointments for cardio, got %d", len(byCardio))
	}

	all, err := svc.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(all))
	}

	empty, err := svc.ByUser(999)
	if err != nil {
		t.Fatalf("by unknown user: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %d", len(empty))
	}
}

func TestDeleteAppointment(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAppointmentService(db)
	user := seedUser(t, db)
	doctor := seedDoctor(t, db)

	booked, err := svc.Book(user.ID, doctor.ID, "2026-09-15", "10:30")
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if err := svc.Delete(booked.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	byUser, err := svc.ByUser(user.ID)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byUser) != 0 {
		t.Fatalf("deleted appointment still visible by user: %d", len(byUser))
	}
	byDoctor, err := svc.ByDoctor(doctor.ID)
	if err != nil {
		t.Fatalf("by doctor: %v", err)
	}
	if len(byDoctor) != 0 {
		t.Fatalf("deleted appointment still visible by doctor: %d", len(byDoctor))
	}

	// Deleting an id that no longer exists is not an error.
	if err := svc.Delete(booked.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if err := svc.Delete(12345); err != nil {
		t.Fatalf("delete of unknown id: %v", err)
	}
}
