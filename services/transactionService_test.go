package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBookedPair(t *testing.T, appointments *fakeAppointmentStore, transactions *fakeTransactionStore, paymentType string, flow BookingFlow) *PaymentRecord {
	t.Helper()
	svc := NewPaymentService(appointments, transactions)

	details := PaymentDetails{}
	switch paymentType {
	case "card":
		details.CardNumber = "4111111111111111"
	case "insurance":
		details.PolicyNumber = "POL-1"
		details.ProviderName = "Acme Health"
	}

	record, err := svc.RecordPayment(context.Background(), bookingParamsFor(paymentType),
		BookingUser{ID: 7, Name: "Asha"}, details, flow)
	require.NoError(t, err)
	return record
}

func TestDerivedAppointmentStatus(t *testing.T) {
	assert.Equal(t, AppointmentScheduled, DerivedAppointmentStatus(TransactionPaid))
	assert.Equal(t, AppointmentPending, DerivedAppointmentStatus(TransactionUnderReview))
	assert.Equal(t, AppointmentPending, DerivedAppointmentStatus(TransactionPending))
}

func TestMarkPaid(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	record := seedBookedPair(t, appointments, transactions, "insurance", AdminDesk)
	svc := NewTransactionService(appointments, transactions)

	require.NoError(t, svc.MarkPaid(context.Background(), record.TransactionID))

	assert.Equal(t, TransactionPaid, transactions.transactions[0].Status)
	assert.Equal(t, AppointmentScheduled, appointments.appointments[0].Status)
}

func TestMarkPaidLeavesTransactionPaidOnAppointmentFailure(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	record := seedBookedPair(t, appointments, transactions, "insurance", AdminDesk)
	appointments.failUpdate = true
	svc := NewTransactionService(appointments, transactions)

	err := svc.MarkPaid(context.Background(), record.TransactionID)
	require.Error(t, err)

	// The first write sticks; the pair is left inconsistent.
	assert.Equal(t, TransactionPaid, transactions.transactions[0].Status)
	assert.Equal(t, AppointmentUnderReview, appointments.appointments[0].Status)
}

func TestMarkCompleted(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	record := seedBookedPair(t, appointments, transactions, "cash", SelfService)
	svc := NewTransactionService(appointments, transactions)

	require.NoError(t, svc.MarkCompleted(context.Background(), record.AppointmentID))

	assert.Equal(t, AppointmentCompleted, appointments.appointments[0].Status)
	assert.Equal(t, TransactionPaid, transactions.transactions[0].Status, "transaction status is untouched")
}

func TestEditStatus(t *testing.T) {
	cases := []struct {
		name              string
		newStatus         string
		appointmentStatus string
	}{
		{"paid schedules appointment", TransactionPaid, AppointmentScheduled},
		{"under review pends appointment", TransactionUnderReview, AppointmentPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appointments := newFakeAppointmentStore()
			transactions := newFakeTransactionStore()
			record := seedBookedPair(t, appointments, transactions, "insurance", SelfService)
			svc := NewTransactionService(appointments, transactions)

			require.NoError(t, svc.EditStatus(context.Background(), record.TransactionID, tc.newStatus))

			assert.Equal(t, tc.newStatus, transactions.transactions[0].Status)
			assert.Equal(t, tc.appointmentStatus, appointments.appointments[0].Status)
		})
	}
}

func TestEditStatusRejectsUnknownStatus(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	record := seedBookedPair(t, appointments, transactions, "insurance", SelfService)
	svc := NewTransactionService(appointments, transactions)

	assert.Error(t, svc.EditStatus(context.Background(), record.TransactionID, "Refunded"))
	assert.Error(t, svc.EditStatus(context.Background(), record.TransactionID, AppointmentCompleted))
}

func TestDeleteLeavesAppointmentWithStaleReference(t *testing.T) {
	appointments := newFakeAppointmentStore()
	transactions := newFakeTransactionStore()
	record := seedBookedPair(t, appointments, transactions, "cash", SelfService)
	svc := NewTransactionService(appointments, transactions)

	require.NoError(t, svc.Delete(context.Background(), record.TransactionID))

	assert.Empty(t, transactions.transactions)
	require.Len(t, appointments.appointments, 1)
	assert.Equal(t, record.TransactionID, appointments.appointments[0].TransactionID,
		"appointment keeps the deleted transaction id")
}
