package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingParamsFor(paymentType string) BookingParams {
	return BookingParams{
		HospitalID:  "hospital-a",
		ServiceID:   5,
		ServiceName: "Doctor Appointment",
		Date:        "2025-06-11",
		Time:        "10:00",
		Amount:      2000,
		PaymentType: paymentType,
	}
}

func TestInitialStatuses(t *testing.T) {
	cases := []struct {
		name              string
		flow              BookingFlow
		paymentType       string
		appointmentStatus string
		transactionStatus string
	}{
		{"self service card", SelfService, "card", AppointmentScheduled, TransactionPaid},
		{"self service cash", SelfService, "cash", AppointmentScheduled, TransactionPaid},
		{"self service insurance", SelfService, "insurance", AppointmentUnderReview, TransactionUnderReview},
		{"admin desk card", AdminDesk, "card", AppointmentScheduled, TransactionPaid},
		{"admin desk cash", AdminDesk, "cash", AppointmentScheduled, TransactionPaid},
		{"admin desk insurance", AdminDesk, "insurance", AppointmentUnderReview, TransactionPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appt, txn := InitialStatuses(tc.flow, tc.paymentType)
			assert.Equal(t, tc.appointmentStatus, appt)
			assert.Equal(t, tc.transactionStatus, txn)
		})
	}
}

func TestValidatePaymentDetails(t *testing.T) {
	assert.NoError(t, ValidatePaymentDetails("cash", PaymentDetails{}))
	assert.NoError(t, ValidatePaymentDetails("card", PaymentDetails{CardNumber: "4111111111111111"}))
	assert.NoError(t, ValidatePaymentDetails("insurance", PaymentDetails{PolicyNumber: "POL-1", ProviderName: "Acme Health"}))

	assert.ErrorIs(t, ValidatePaymentDetails("card", PaymentDetails{}), ErrMissingPaymentDetails)
	assert.ErrorIs(t, ValidatePaymentDetails("insurance", PaymentDetails{PolicyNumber: "POL-1"}), ErrMissingPaymentDetails)
	assert.ErrorIs(t, ValidatePaymentDetails("insurance", PaymentDetails{ProviderName: "Acme Health"}), ErrMissingPaymentDetails)
	assert.ErrorIs(t, ValidatePaymentDetails("voucher", PaymentDetails{}), ErrMissingPaymentDetails)
}

func TestRecordPaymentWriteSequence(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	svc := NewPaymentService(appointments, transactions)
	ctx := context.Background()

	record, err := svc.RecordPayment(ctx, bookingParamsFor("cash"),
		BookingUser{ID: 7, Name: "Asha"}, PaymentDetails{}, SelfService)
	require.NoError(t, err)

	require.Len(t, appointments.appointments, 1)
	require.Len(t, transactions.transactions, 1)

	appointment := appointments.appointments[0]
	transaction := transactions.transactions[0]

	assert.Equal(t, record.AppointmentID, appointment.ID)
	assert.Equal(t, record.TransactionID, transaction.TransactionID)
	assert.Equal(t, appointment.ID, transaction.AppointmentID)
	assert.Equal(t, transaction.TransactionID, appointment.TransactionID)
	assert.Equal(t, AppointmentScheduled, appointment.Status)
	assert.Equal(t, TransactionPaid, transaction.Status)
}

func TestRecordPaymentInsuranceEndToEnd(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	svc := NewPaymentService(appointments, transactions)

	details := PaymentDetails{PolicyNumber: "POL-9", ProviderName: "Acme Health"}
	_, err := svc.RecordPayment(context.Background(), bookingParamsFor("insurance"),
		BookingUser{ID: 7, Name: "Asha"}, details, SelfService)
	require.NoError(t, err)

	appointment := appointments.appointments[0]
	transaction := transactions.transactions[0]

	assert.Equal(t, float64(2000), appointment.Amount)
	assert.Equal(t, AppointmentUnderReview, appointment.Status)
	assert.Equal(t, TransactionUnderReview, transaction.Status)
	assert.Equal(t, "POL-9", transaction.PolicyNumber)
	assert.Equal(t, "Acme Health", transaction.ProviderName)
	assert.Empty(t, transaction.CardNumber)
}

func TestRecordPaymentAdminInsurancePending(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	svc := NewPaymentService(appointments, transactions)

	details := PaymentDetails{PolicyNumber: "POL-9", ProviderName: "Acme Health"}
	_, err := svc.RecordPayment(context.Background(), bookingParamsFor("insurance"),
		BookingUser{ID: 7, Name: "Asha"}, details, AdminDesk)
	require.NoError(t, err)

	assert.Equal(t, AppointmentUnderReview, appointments.appointments[0].Status)
	assert.Equal(t, TransactionPending, transactions.transactions[0].Status)
}

func TestRecordPaymentRejectsMissingDetails(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	svc := NewPaymentService(appointments, transactions)

	_, err := svc.RecordPayment(context.Background(), bookingParamsFor("card"),
		BookingUser{ID: 7, Name: "Asha"}, PaymentDetails{}, SelfService)
	assert.ErrorIs(t, err, ErrMissingPaymentDetails)
	assert.Empty(t, appointments.appointments, "nothing may be written before details validate")
}

func TestRecordPaymentResubmitCreatesSecondPair(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	svc := NewPaymentService(appointments, transactions)
	ctx := context.Background()

	user := BookingUser{ID: 7, Name: "Asha"}
	first, err := svc.RecordPayment(ctx, bookingParamsFor("cash"), user, PaymentDetails{}, SelfService)
	require.NoError(t, err)
	second, err := svc.RecordPayment(ctx, bookingParamsFor("cash"), user, PaymentDetails{}, SelfService)
	require.NoError(t, err)

	assert.NotEqual(t, first.AppointmentID, second.AppointmentID)
	assert.NotEqual(t, first.TransactionID, second.TransactionID)
	assert.Len(t, appointments.appointments, 2)
	assert.Len(t, transactions.transactions, 2)
}

func TestRecordPaymentOrphanOnTransactionFailure(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	transactions.failCreate = true
	svc := NewPaymentService(appointments, transactions)

	_, err := svc.RecordPayment(context.Background(), bookingParamsFor("cash"),
		BookingUser{ID: 7, Name: "Asha"}, PaymentDetails{}, SelfService)
	require.Error(t, err)

	// The appointment write is not compensated.
	require.Len(t, appointments.appointments, 1)
	assert.Empty(t, appointments.appointments[0].TransactionID)
	assert.Empty(t, transactions.transactions)
}
