package services

import (
	"CarePoint/models"
	"context"
	"errors"
	"fmt"
)

// fakeAppointmentStore is an in-memory AppointmentStore for service tests.
type fakeAppointmentStore struct {
	appointments []*models.Appointment
	nextID       uint
	failCreate   bool
	failUpdate   bool
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{nextID: 1}
}

func (f *fakeAppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	if f.failCreate {
		return errors.New("create failed")
	}
	appointment.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentStore) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentStore) GetAll(ctx context.Context, hospitalID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if hospitalID == "" || a.HospitalID == hospitalID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) GetByUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) BookedTimes(ctx context.Context, hospitalID, date string) ([]string, error) {
	var times []string
	for _, a := range f.appointments {
		if a.HospitalID == hospitalID && a.Date == date {
			times = append(times, a.Time)
		}
	}
	return times, nil
}

func (f *fakeAppointmentStore) CountByDate(ctx context.Context, hospitalID, date string) (int64, error) {
	var count int64
	for _, a := range f.appointments {
		if a.HospitalID == hospitalID && a.Date == date {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	if f.failUpdate {
		return errors.New("update failed")
	}
	for _, a := range f.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return errors.New("appointment not found")
}

func (f *fakeAppointmentStore) SetTransactionID(ctx context.Context, id uint, transactionID string) error {
	for _, a := range f.appointments {
		if a.ID == id {
			a.TransactionID = transactionID
			return nil
		}
	}
	return errors.New("appointment not found")
}

func (f *fakeAppointmentStore) Delete(ctx context.Context, id uint) error {
	for i, a := range f.appointments {
		if a.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return errors.New("appointment not found")
}

// fakeTransactionStore is an in-memory TransactionStore for service tests.
type fakeTransactionStore struct {
	transactions []*models.Transaction
	nextSeq      int
	failCreate   bool
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{nextSeq: 1}
}

func (f *fakeTransactionStore) Create(ctx context.Context, transaction *models.Transaction) error {
	if f.failCreate {
		return errors.New("create failed")
	}
	transaction.TransactionID = fmt.Sprintf("TXN-%06d", f.nextSeq)
	f.nextSeq++
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionStore) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	for _, t := range f.transactions {
		if t.TransactionID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionStore) GetAll(ctx context.Context, hospitalID string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		if hospitalID == "" || t.HospitalID == hospitalID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) UpdateStatus(ctx context.Context, id string, status string) error {
	for _, t := range f.transactions {
		if t.TransactionID == id {
			t.Status = status
			return nil
		}
	}
	return errors.New("transaction not found")
}

func (f *fakeTransactionStore) Delete(ctx context.Context, id string) error {
	for i, t := range f.transactions {
		if t.TransactionID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return errors.New("transaction not found")
}
