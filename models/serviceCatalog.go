package models

import (
	"errors"
	"strconv"
	"strings"
)

// Service is a static catalog entry for a bookable service. The catalog is
// compiled in, loaded once, and never mutated.
type Service struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Fee               string   `json:"fee"`
	InsuranceEligible string   `json:"insurance_eligible"`
	PaymentOptions    []string `json:"payment_options"`
}

var ErrServiceNotFound = errors.New("service not found")

var serviceCatalog = []Service{
	{
		ID:                1,
		Name:              "General Checkup",
		Description:       "Routine physical examination and vitals screening",
		Fee:               "Rs. 500",
		InsuranceEligible: "Covered under most general health policies",
		PaymentOptions:    []string{"card", "cash", "insurance"},
	},
	{
		ID:                2,
		Name:              "Blood Test",
		Description:       "Complete blood count and standard panel",
		Fee:               "Rs. 300",
		InsuranceEligible: "Covered only when prescribed by a doctor",
		PaymentOptions:    []string{"card", "cash"},
	},
	{
		ID:                3,
		Name:              "X-Ray",
		Description:       "Single-region digital radiography",
		Fee:               "Rs. 800",
		InsuranceEligible: "Covered under diagnostic imaging riders",
		PaymentOptions:    []string{"card", "cash", "insurance"},
	},
	{
		ID:                4,
		Name:              "MRI Scan",
		Description:       "Magnetic resonance imaging, single region",
		Fee:               "Rs. 2500",
		InsuranceEligible: "Pre-authorization required from the insurer",
		PaymentOptions:    []string{"card", "insurance"},
	},
	{
		ID:                5,
		Name:              "Doctor Appointment",
		Description:       "Consultation with a doctor of your choice",
		Fee:               "Rs. 2000",
		InsuranceEligible: "Covered under outpatient consultation benefits",
		PaymentOptions:    []string{"card", "cash", "insurance"},
	},
	{
		ID:                6,
		Name:              "Physiotherapy Session",
		Description:       "One-hour guided physiotherapy session",
		Fee:               "Rs. 700",
		InsuranceEligible: "Covered when part of a prescribed treatment plan",
		PaymentOptions:    []string{"card", "cash"},
	},
}

// ServiceCatalog returns the full list of bookable services.
func ServiceCatalog() []Service {
	return serviceCatalog
}

// LookupService finds a catalog entry by its id.
func LookupService(id int) (*Service, error) {
	for i := range serviceCatalog {
		if serviceCatalog[i].ID == id {
			return &serviceCatalog[i], nil
		}
	}
	return nil, ErrServiceNotFound
}

// ParseFee converts a display fee string such as "Rs. 2000" into its numeric
// amount. The currency prefix is display-only and stripped here, at the use
// site, the same way the booking screens do it.
func ParseFee(fee string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(fee), "Rs."))
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.New("invalid fee string: " + fee)
	}
	return amount, nil
}
