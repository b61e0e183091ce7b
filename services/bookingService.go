package services

import (
	"CarePoint/models"
	"CarePoint/repositories"
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Form-level booking errors. Handlers surface these inline; they never
// escape as 5xx responses.
var (
	ErrMissingField          = errors.New("missing required field")
	ErrPastDate              = errors.New("selected date is not bookable")
	ErrSlotTaken             = errors.New("selected time slot is already booked")
	ErrMissingPaymentDetails = errors.New("missing payment details")
)

// DateFloor is the earliest bookable day relative to submission time. The
// patient flow starts at tomorrow, the admin desk allows same-day entry.
// The two floors are distinct on purpose; do not unify them.
type DateFloor int

const (
	FloorTomorrow DateFloor = iota
	FloorToday
)

// BookingRequest is a raw booking submission before validation.
type BookingRequest struct {
	HospitalID  string `json:"hospital_id" form:"hospitalId"`
	ServiceID   int    `json:"service_id" form:"serviceId"`
	Date        string `json:"date" form:"date"`
	Time        string `json:"time" form:"time"`
	DoctorID    *int64 `json:"doctor_id" form:"doctorId"`
	PaymentType string `json:"payment_type"`
}

// BookingParams is a validated booking ready for the payment recorder. In
// the patient flow these travel as /payment-gateway query parameters; no
// appointment exists until the recorder runs.
type BookingParams struct {
	HospitalID  string
	ServiceID   int
	ServiceName string
	Date        string
	Time        string
	DoctorID    *int64
	Amount      float64
	PaymentType string
}

type BookingService struct {
	appointments repositories.AppointmentStore
	now          func() time.Time
}

func NewBookingService(appointments repositories.AppointmentStore) *BookingService {
	return &BookingService{appointments: appointments, now: time.Now}
}

// AttemptBook validates a booking request against the given date floor and
// grid and, on success, returns the parameters the payment step needs.
// Availability is re-checked against the store here, at submission time:
// the slot list the client rendered can go stale between render and submit.
func (s *BookingService) AttemptBook(ctx context.Context, req BookingRequest, floor DateFloor, grid SlotGrid) (*BookingParams, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
	}

	if err := s.checkDateFloor(req.Date, floor); err != nil {
		return nil, err
	}

	if !gridContains(grid, req.Time) {
		return nil, fmt.Errorf("%w: time %q is not a bookable slot", ErrMissingField, req.Time)
	}

	bookedTimes, err := s.appointments.BookedTimes(ctx, req.HospitalID, req.Date)
	if err != nil {
		return nil, err
	}
	for _, t := range bookedTimes {
		if t == req.Time {
			return nil, ErrSlotTaken
		}
	}

	service, err := models.LookupService(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	amount, err := models.ParseFee(service.Fee)
	if err != nil {
		return nil, err
	}

	return &BookingParams{
		HospitalID:  req.HospitalID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Date:        req.Date,
		Time:        req.Time,
		DoctorID:    req.DoctorID,
		Amount:      amount,
		PaymentType: req.PaymentType,
	}, nil
}

func validateBookingRequest(req BookingRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.HospitalID, validation.Required),
		validation.Field(&req.ServiceID, validation.Required, validation.Min(1)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Required),
		validation.Field(&req.PaymentType, validation.Required, validation.In("card", "cash", "insurance")),
	)
}

// checkDateFloor compares calendar days only; times within the day are
// irrelevant to the floor.
func (s *BookingService) checkDateFloor(date string, floor DateFloor) error {
	selected, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrMissingField, date)
	}

	today, err := time.Parse("2006-01-02", s.now().Format("2006-01-02"))
	if err != nil {
		return err
	}

	switch floor {
	case FloorTomorrow:
		if !selected.After(today) {
			return ErrPastDate
		}
	case FloorToday:
		if selected.Before(today) {
			return ErrPastDate
		}
	}
	return nil
}

func gridContains(grid SlotGrid, label string) bool {
	for _, slot := range grid.Slots() {
		if slot == label {
			return true
		}
	}
	return false
}
