package services

import (
	"CarePoint/repositories"
	"context"
	"time"
)

// SlotGrid is a named daily booking grid. Slots run from Start to End
// inclusive in 30-minute steps. Two grids exist because the patient screens
// and the admin desk historically ended the day at different times; both
// bounds are kept as-is.
type SlotGrid struct {
	Start string
	End   string
}

var (
	// StandardGrid backs the patient-facing booking screens.
	StandardGrid = SlotGrid{Start: "09:00", End: "16:30"}
	// ExtendedGrid backs the admin desk, which keeps one extra slot.
	ExtendedGrid = SlotGrid{Start: "09:00", End: "17:00"}
)

const slotInterval = 30 * time.Minute

// Slots returns the ordered slot labels of the grid. Labels are wall-clock
// "HH:MM" strings with no timezone attached; all slot arithmetic in the
// system is string equality on these labels.
func (g SlotGrid) Slots() []string {
	start, err := time.Parse("15:04", g.Start)
	if err != nil {
		return nil
	}
	end, err := time.Parse("15:04", g.End)
	if err != nil {
		return nil
	}

	var slots []string
	for t := start; !t.After(end); t = t.Add(slotInterval) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}

// Len is the number of slots in the grid, which doubles as the
// fully-booked threshold for a date.
func (g SlotGrid) Len() int {
	return len(g.Slots())
}

// TimeSlot is one bookable slot with its current booked flag.
type TimeSlot struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// BuildTimeSlots merges a grid with the times already taken for a facility
// and date. Booked times outside the grid are ignored.
func BuildTimeSlots(grid SlotGrid, bookedTimes []string) []TimeSlot {
	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	labels := grid.Slots()
	slots := make([]TimeSlot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, TimeSlot{Time: label, Booked: booked[label]})
	}
	return slots
}

type AvailabilityService struct {
	appointments repositories.AppointmentStore
}

func NewAvailabilityService(appointments repositories.AppointmentStore) *AvailabilityService {
	return &AvailabilityService{appointments: appointments}
}

// TimeSlots returns the grid for a facility and date with booked slots
// flagged.
func (s *AvailabilityService) TimeSlots(ctx context.Context, hospitalID, date string, grid SlotGrid) ([]TimeSlot, error) {
	bookedTimes, err := s.appointments.BookedTimes(ctx, hospitalID, date)
	if err != nil {
		return nil, err
	}
	return BuildTimeSlots(grid, bookedTimes), nil
}

// IsFullyBooked reports whether a date has at least as many appointments as
// the grid has slots.
func (s *AvailabilityService) IsFullyBooked(ctx context.Context, hospitalID, date string, grid SlotGrid) (bool, error) {
	count, err := s.appointments.CountByDate(ctx, hospitalID, date)
	if err != nil {
		return false, err
	}
	return count >= int64(grid.Len()), nil
}

// FullyBookedDates scans the given number of days starting at from and
// returns the dates the date picker should reject outright.
func (s *AvailabilityService) FullyBookedDates(ctx context.Context, hospitalID, from string, days int, grid SlotGrid) ([]string, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, err
	}

	fullyBooked := make([]string, 0)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		full, err := s.IsFullyBooked(ctx, hospitalID, date, grid)
		if err != nil {
			return nil, err
		}
		if full {
			fullyBooked = append(fullyBooked, date)
		}
	}
	return fullyBooked, nil
}
