package services

import (
	"CarePoint/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardGridSlots(t *testing.T) {
	slots := StandardGrid.Slots()

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])

	seen := make(map[string]bool)
	for i, s := range slots {
		assert.False(t, seen[s], "duplicate slot %s", s)
		seen[s] = true
		if i > 0 {
			assert.Less(t, slots[i-1], s, "slots must be strictly increasing")
		}
	}
}

func TestExtendedGridSlots(t *testing.T) {
	slots := ExtendedGrid.Slots()

	require.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
}

func TestBuildTimeSlots(t *testing.T) {
	slots := BuildTimeSlots(StandardGrid, []string{"10:00", "14:30"})

	require.Len(t, slots, 16)
	booked := make(map[string]bool)
	for _, s := range slots {
		booked[s.Time] = s.Booked
	}
	assert.True(t, booked["10:00"])
	assert.True(t, booked["14:30"])
	assert.False(t, booked["09:00"])
	assert.False(t, booked["16:30"])
}

func TestBuildTimeSlotsIgnoresOffGridTimes(t *testing.T) {
	slots := BuildTimeSlots(StandardGrid, []string{"08:00", "17:00", "10:15"})

	for _, s := range slots {
		assert.False(t, s.Booked, "off-grid booked time leaked into slot %s", s.Time)
	}
}

func TestTimeSlotsFlagsBookedPerFacilityAndDate(t *testing.T) {
	store := newFakeAppointmentStore()
	svc := NewAvailabilityService(store)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &models.Appointment{
		UserID: 1, UserName: "Asha", HospitalID: "hospital-a",
		ServiceID: 5, Date: "2025-06-10", Time: "10:00",
		Amount: 2000, PaymentType: "cash", Status: AppointmentScheduled,
	}))
	// Same time at another facility must not mark hospital-a's slot.
	require.NoError(t, store.Create(ctx, &models.Appointment{
		UserID: 2, UserName: "Ravi", HospitalID: "hospital-b",
		ServiceID: 5, Date: "2025-06-10", Time: "11:00",
		Amount: 2000, PaymentType: "cash", Status: AppointmentScheduled,
	}))

	slots, err := svc.TimeSlots(ctx, "hospital-a", "2025-06-10", StandardGrid)
	require.NoError(t, err)

	for _, s := range slots {
		if s.Time == "10:00" {
			assert.True(t, s.Booked)
		} else {
			assert.False(t, s.Booked, "slot %s should be free", s.Time)
		}
	}
}

func TestIsFullyBooked(t *testing.T) {
	store := newFakeAppointmentStore()
	svc := NewAvailabilityService(store)
	ctx := context.Background()

	for i, label := range StandardGrid.Slots()[:15] {
		require.NoError(t, store.Create(ctx, &models.Appointment{
			UserID: int64(i + 1), UserName: "p", HospitalID: "hospital-a",
			ServiceID: 5, Date: "2025-06-10", Time: label,
			Amount: 2000, PaymentType: "cash", Status: AppointmentScheduled,
		}))
	}

	full, err := svc.IsFullyBooked(ctx, "hospital-a", "2025-06-10", StandardGrid)
	require.NoError(t, err)
	assert.False(t, full, "15 of 16 slots taken is not fully booked")

	require.NoError(t, store.Create(ctx, &models.Appointment{
		UserID: 99, UserName: "p", HospitalID: "hospital-a",
		ServiceID: 5, Date: "2025-06-10", Time: "16:30",
		Amount: 2000, PaymentType: "cash", Status: AppointmentScheduled,
	}))

	full, err = svc.IsFullyBooked(ctx, "hospital-a", "2025-06-10", StandardGrid)
	require.NoError(t, err)
	assert.True(t, full)
}

func TestFullyBookedDates(t *testing.T) {
	store := newFakeAppointmentStore()
	svc := NewAvailabilityService(store)
	ctx := context.Background()

	for i, label := range StandardGrid.Slots() {
		require.NoError(t, store.Create(ctx, &models.Appointment{
			UserID: int64(i + 1), UserName: "p", HospitalID: "hospital-a",
			ServiceID: 5, Date: "2025-06-11", Time: label,
			Amount: 2000, PaymentType: "cash", Status: AppointmentScheduled,
		}))
	}

	dates, err := svc.FullyBookedDates(ctx, "hospital-a", "2025-06-10", 3, StandardGrid)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-11"}, dates)
}
