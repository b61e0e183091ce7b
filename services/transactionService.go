package services

import (
	"CarePoint/models"
	"CarePoint/repositories"
	"context"
	"errors"
	"fmt"
	"log"
)

// TransactionService carries the admin-facing status transitions. Each
// transition is atomic from the caller's perspective but is implemented as
// ordered independent writes: when the second write fails the first is not
// rolled back.
type TransactionService struct {
	appointments repositories.AppointmentStore
	transactions repositories.TransactionStore
}

func NewTransactionService(appointments repositories.AppointmentStore, transactions repositories.TransactionStore) *TransactionService {
	return &TransactionService{appointments: appointments, transactions: transactions}
}

func (s *TransactionService) GetAll(ctx context.Context, hospitalID string) ([]models.Transaction, error) {
	return s.transactions.GetAll(ctx, hospitalID)
}

func (s *TransactionService) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

// MarkPaid sets the transaction to Paid and the linked appointment to
// Scheduled, in that order.
func (s *TransactionService) MarkPaid(ctx context.Context, transactionID string) error {
	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return errors.New("transaction not found")
	}

	if err := s.transactions.UpdateStatus(ctx, transactionID, TransactionPaid); err != nil {
		return err
	}
	if err := s.appointments.UpdateStatus(ctx, transaction.AppointmentID, AppointmentScheduled); err != nil {
		// Transaction is already Paid at this point; the pair stays
		// inconsistent until an admin retries.
		log.Printf("Failed to update appointment %d after marking transaction paid: %v", transaction.AppointmentID, err)
		return err
	}
	return nil
}

// MarkCompleted moves an appointment to its terminal state. The linked
// transaction is not touched.
func (s *TransactionService) MarkCompleted(ctx context.Context, appointmentID uint) error {
	return s.appointments.UpdateStatus(ctx, appointmentID, AppointmentCompleted)
}

// DerivedAppointmentStatus maps an admin-chosen transaction status onto the
// appointment status that must accompany it.
func DerivedAppointmentStatus(transactionStatus string) string {
	if transactionStatus == TransactionPaid {
		return AppointmentScheduled
	}
	return AppointmentPending
}

// EditStatus sets a transaction to an admin-chosen status and derives the
// linked appointment's status from it.
func (s *TransactionService) EditStatus(ctx context.Context, transactionID, newStatus string) error {
	if newStatus != TransactionPaid && newStatus != TransactionUnderReview {
		return fmt.Errorf("invalid transaction status %q", newStatus)
	}

	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return errors.New("transaction not found")
	}

	if err := s.transactions.UpdateStatus(ctx, transactionID, newStatus); err != nil {
		return err
	}
	return s.appointments.UpdateStatus(ctx, transaction.AppointmentID, DerivedAppointmentStatus(newStatus))
}

// Delete removes the transaction only. The appointment it referenced keeps
// its now-dangling transaction id; the delete is asymmetric on purpose.
func (s *TransactionService) Delete(ctx context.Context, transactionID string) error {
	return s.transactions.Delete(ctx, transactionID)
}
