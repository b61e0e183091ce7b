package services

import (
	"CarePoint/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingServiceAt(store *fakeAppointmentStore, now time.Time) *BookingService {
	svc := NewBookingService(store)
	svc.now = func() time.Time { return now }
	return svc
}

func validBookingRequest() BookingRequest {
	return BookingRequest{
		HospitalID:  "hospital-a",
		ServiceID:   5,
		Date:        "2025-06-11",
		Time:        "10:00",
		PaymentType: "cash",
	}
}

func TestAttemptBookMissingField(t *testing.T) {
	svc := newBookingServiceAt(newFakeAppointmentStore(), time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))

	req := validBookingRequest()
	req.HospitalID = ""

	_, err := svc.AttemptBook(context.Background(), req, FloorTomorrow, StandardGrid)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestAttemptBookPatientFloorRejectsToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceAt(newFakeAppointmentStore(), now)

	req := validBookingRequest()
	req.Date = "2025-06-10"

	_, err := svc.AttemptBook(context.Background(), req, FloorTomorrow, StandardGrid)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestAttemptBookPatientFloorAcceptsTomorrow(t *testing.T) {
	now := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	svc := newBookingServiceAt(newFakeAppointmentStore(), now)

	params, err := svc.AttemptBook(context.Background(), validBookingRequest(), FloorTomorrow, StandardGrid)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", params.Date)
}

func TestAttemptBookAdminFloorRejectsYesterday(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceAt(newFakeAppointmentStore(), now)

	req := validBookingRequest()
	req.Date = "2025-06-09"

	_, err := svc.AttemptBook(context.Background(), req, FloorToday, ExtendedGrid)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestAttemptBookAdminFloorAcceptsToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceAt(newFakeAppointmentStore(), now)

	req := validBookingRequest()
	req.Date = "2025-06-10"
	req.Time = "17:00"

	params, err := svc.AttemptBook(context.Background(), req, FloorToday, ExtendedGrid)
	require.NoError(t, err)
	assert.Equal(t, "17:00", params.Time)
}

func TestAttemptBookRejectsOffGridTime(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceAt(newFakeAppointmentStore(), now)

	req := validBookingRequest()
	req.Time = "17:00" // last extended slot, not on the standard grid

	_, err := svc.AttemptBook(context.Background(), req, FloorTomorrow, StandardGrid)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestAttemptBookRejectsTakenSlot(t *testing.T) {
	store := newFakeAppointmentStore()
	require.NoError(t, store.Create(context.Background(), &models.Appointment{
		UserID: 7, UserName: "Asha", HospitalID: "hospital-a",
		ServiceID: 5, Date: "2025-06-11", Time: "10:00",
		Amount: 2000, PaymentType: "cash", Status: AppointmentScheduled,
	}))

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceAt(store, now)

	_, err := svc.AttemptBook(context.Background(), validBookingRequest(), FloorTomorrow, StandardGrid)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestAttemptBookResolvesServiceFee(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceAt(newFakeAppointmentStore(), now)

	params, err := svc.AttemptBook(context.Background(), validBookingRequest(), FloorTomorrow, StandardGrid)
	require.NoError(t, err)

	assert.Equal(t, 5, params.ServiceID)
	assert.Equal(t, "Doctor Appointment", params.ServiceName)
	assert.Equal(t, float64(2000), params.Amount)
}

func TestAttemptBookUnknownService(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newBookingServiceAt(newFakeAppointmentStore(), now)

	req := validBookingRequest()
	req.ServiceID = 404

	_, err := svc.AttemptBook(context.Background(), req, FloorTomorrow, StandardGrid)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
}
