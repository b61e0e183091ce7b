package models

import (
	"time"
)

// Hospital model
type Hospital struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	Name          string    `gorm:"column:name;not null;index" json:"name"`
	ContactNumber string    `gorm:"column:contact_number" json:"contact_number"`
	Location      string    `gorm:"column:location;not null" json:"location"`
	Type          string    `gorm:"column:type;check:type IN ('Private', 'Government');not null" json:"type"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// Appointment model. HospitalID is a weak reference on purpose: appointments
// survive hospital deletion, matching the admin screens that resolve names
// at read time. TransactionID is patched in after the linked transaction is
// created and is left dangling when that transaction is deleted.
type Appointment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	UserID        int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	UserName      string    `gorm:"column:user_name;not null" json:"user_name"`
	HospitalID    string    `gorm:"column:hospital_id;not null;index" json:"hospital_id"`
	ServiceID     int       `gorm:"column:service_id;not null" json:"service_id"`
	DoctorID      *int64    `gorm:"column:doctor_id" json:"doctor_id,omitempty"`
	Date          string    `gorm:"column:date;not null;index" json:"date"`
	Time          string    `gorm:"column:time;not null" json:"time"`
	Amount        float64   `gorm:"column:amount;not null" json:"amount"`
	PaymentType   string    `gorm:"column:payment_type;check:payment_type IN ('card', 'cash', 'insurance');not null" json:"payment_type"`
	Status        string    `gorm:"column:status;check:status IN ('Scheduled', 'Under Review', 'Pending', 'Completed');not null" json:"status"`
	TransactionID string    `gorm:"column:transaction_id" json:"transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Transaction model. CardNumber and PolicyNumber/ProviderName are mutually
// exclusive: only the columns matching PaymentType are ever populated.
type Transaction struct {
	TransactionID string    `gorm:"primaryKey;column:transaction_id" json:"transaction_id"`
	AppointmentID uint      `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	UserID        int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	UserName      string    `gorm:"column:user_name;not null" json:"user_name"`
	HospitalID    string    `gorm:"column:hospital_id;not null;index" json:"hospital_id"`
	Amount        float64   `gorm:"column:amount;not null" json:"amount"`
	PaymentType   string    `gorm:"column:payment_type;check:payment_type IN ('card', 'cash', 'insurance');not null" json:"payment_type"`
	CardNumber    string    `gorm:"column:card_number" json:"card_number,omitempty"`
	PolicyNumber  string    `gorm:"column:policy_number" json:"policy_number,omitempty"`
	ProviderName  string    `gorm:"column:provider_name" json:"provider_name,omitempty"`
	Status        string    `gorm:"column:status;check:status IN ('Paid', 'Pending', 'Under Review');not null" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Report model
type Report struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID      int64     `gorm:"column:patient_id;not null;index" json:"patient_id"`
	PatientName    string    `gorm:"column:patient_name;not null" json:"patient_name"`
	DoctorID       int64     `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	HospitalID     string    `gorm:"column:hospital_id;index" json:"hospital_id"`
	ReportType     string    `gorm:"column:report_type;not null" json:"report_type"`
	ReportCategory string    `gorm:"column:report_category" json:"report_category"`
	TestDate       string    `gorm:"column:test_date" json:"test_date"`
	DoctorComments string    `gorm:"column:doctor_comments" json:"doctor_comments"`
	FileName       string    `gorm:"column:file_name;not null" json:"file_name"`
	ReportURL      string    `gorm:"column:report_url;not null" json:"report_url"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"uploaded_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
