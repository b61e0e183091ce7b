package services

import (
	"CarePoint/models"
	"CarePoint/repositories"
	"context"
	"fmt"
)

// Appointment and transaction status vocabulary. The two booking flows map
// payment types onto these slightly differently; both mappings are kept
// verbatim.
const (
	AppointmentScheduled   = "Scheduled"
	AppointmentUnderReview = "Under Review"
	AppointmentPending     = "Pending"
	AppointmentCompleted   = "Completed"

	TransactionPaid        = "Paid"
	TransactionPending     = "Pending"
	TransactionUnderReview = "Under Review"
)

// BookingFlow selects which status vocabulary applies: the patient
// self-service flow or the admin desk flow.
type BookingFlow int

const (
	SelfService BookingFlow = iota
	AdminDesk
)

// PaymentDetails carries the payment-method-specific fields. Only the
// fields matching the payment type may be set; ValidatePaymentDetails
// enforces the card XOR insurance rule.
type PaymentDetails struct {
	CardNumber   string `json:"card_number"`
	PolicyNumber string `json:"policy_number"`
	ProviderName string `json:"provider_name"`
}

// ValidatePaymentDetails checks that the required fields for the payment
// type are present: card number for card, policy number and provider name
// for insurance, nothing for cash.
func ValidatePaymentDetails(paymentType string, details PaymentDetails) error {
	switch paymentType {
	case "card":
		if details.CardNumber == "" {
			return fmt.Errorf("%w: card number is required", ErrMissingPaymentDetails)
		}
	case "insurance":
		if details.PolicyNumber == "" || details.ProviderName == "" {
			return fmt.Errorf("%w: policy number and provider name are required", ErrMissingPaymentDetails)
		}
	case "cash":
		// no details required
	default:
		return fmt.Errorf("%w: unknown payment type %q", ErrMissingPaymentDetails, paymentType)
	}
	return nil
}

// InitialStatuses returns the appointment and transaction statuses a new
// booking starts in for the given flow and payment type.
func InitialStatuses(flow BookingFlow, paymentType string) (appointmentStatus, transactionStatus string) {
	if paymentType != "insurance" {
		return AppointmentScheduled, TransactionPaid
	}
	if flow == AdminDesk {
		return AppointmentUnderReview, TransactionPending
	}
	return AppointmentUnderReview, TransactionUnderReview
}

// BookingUser identifies who the appointment and transaction belong to.
type BookingUser struct {
	ID   int64
	Name string
}

// PaymentRecord is the outcome of a successful recording: the ids of the
// two linked records.
type PaymentRecord struct {
	AppointmentID uint   `json:"appointment_id"`
	TransactionID string `json:"transaction_id"`
}

type PaymentService struct {
	appointments repositories.AppointmentStore
	transactions repositories.TransactionStore
}

func NewPaymentService(appointments repositories.AppointmentStore, transactions repositories.TransactionStore) *PaymentService {
	return &PaymentService{appointments: appointments, transactions: transactions}
}

// RecordPayment performs the booking write sequence: create the
// appointment, create the transaction referencing it, then patch the
// appointment with the transaction id. The three writes are sequential and
// independent; a failure after the first write leaves an appointment with
// no transaction, and no compensating delete is attempted. Re-submitting
// identical inputs records a second independent pair.
func (s *PaymentService) RecordPayment(ctx context.Context, params BookingParams, user BookingUser, details PaymentDetails, flow BookingFlow) (*PaymentRecord, error) {
	if err := ValidatePaymentDetails(params.PaymentType, details); err != nil {
		return nil, err
	}

	appointmentStatus, transactionStatus := InitialStatuses(flow, params.PaymentType)

	appointment := &models.Appointment{
		UserID:      user.ID,
		UserName:    user.Name,
		HospitalID:  params.HospitalID,
		ServiceID:   params.ServiceID,
		DoctorID:    params.DoctorID,
		Date:        params.Date,
		Time:        params.Time,
		Amount:      params.Amount,
		PaymentType: params.PaymentType,
		Status:      appointmentStatus,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		AppointmentID: appointment.ID,
		UserID:        user.ID,
		UserName:      user.Name,
		HospitalID:    params.HospitalID,
		Amount:        params.Amount,
		PaymentType:   params.PaymentType,
		Status:        transactionStatus,
	}
	switch params.PaymentType {
	case "card":
		transaction.CardNumber = details.CardNumber
	case "insurance":
		transaction.PolicyNumber = details.PolicyNumber
		transaction.ProviderName = details.ProviderName
	}
	if err := s.transactions.Create(ctx, transaction); err != nil {
		// The appointment already exists and stays.
		return nil, err
	}

	if err := s.appointments.SetTransactionID(ctx, appointment.ID, transaction.TransactionID); err != nil {
		return nil, err
	}

	return &PaymentRecord{
		AppointmentID: appointment.ID,
		TransactionID: transaction.TransactionID,
	}, nil
}
