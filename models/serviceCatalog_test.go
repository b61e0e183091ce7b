package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceCatalogIsStable(t *testing.T) {
	catalog := ServiceCatalog()
	assert.NotEmpty(t, catalog)

	seen := make(map[int]bool)
	for _, svc := range catalog {
		assert.False(t, seen[svc.ID], "duplicate service id %d", svc.ID)
		seen[svc.ID] = true
		assert.NotEmpty(t, svc.Name)
		assert.NotEmpty(t, svc.PaymentOptions)

		amount, err := ParseFee(svc.Fee)
		assert.NoError(t, err, "fee for %s should parse", svc.Name)
		assert.Greater(t, amount, 0.0)
	}
}

func TestLookupService(t *testing.T) {
	svc, err := LookupService(5)
	assert.NoError(t, err)
	assert.Equal(t, "Doctor Appointment", svc.Name)
	assert.Equal(t, "Rs. 2000", svc.Fee)
	assert.Contains(t, svc.PaymentOptions, "insurance")

	_, err = LookupService(99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestParseFee(t *testing.T) {
	amount, err := ParseFee("Rs. 2000")
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, amount)

	amount, err = ParseFee("Rs.500")
	assert.NoError(t, err)
	assert.Equal(t, 500.0, amount)

	_, err = ParseFee("free")
	assert.Error(t, err)
}
