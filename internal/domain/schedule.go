package domain

import (
	"time"

	"github.com/mcozcn/salondesk/pkg/types"
)

// GroupSchedule represents one customer's recurring enrollment in a weekly class group
type GroupSchedule struct {
	ID         ScheduleID
	CustomerID string
	// CustomerName is denormalized so list views render without a join
	CustomerName string
	Group        GroupType
	TimeSlot     types.TimeString
	StartDate    time.Time
	EndDate      *time.Time
	IsActive     bool
	// CreatedAt orders the merged remote+local list view (most recent first)
	CreatedAt time.Time
}

// OccupiesSeat returns true if the enrollment currently holds a capacity seat
func (s *GroupSchedule) OccupiesSeat() bool {
	return s.IsActive
}

// IsDeactivated returns true for enrollments in the terminal state.
// A customer re-enrolling creates a new record rather than reactivating this one.
func (s *GroupSchedule) IsDeactivated() bool {
	return !s.IsActive
}

// ScheduleUpdate is a partial update of a schedule.
// Only non-nil fields are written.
type ScheduleUpdate struct {
	CustomerName *string
	Group        *GroupType
	TimeSlot     *types.TimeString
	StartDate    *time.Time
	EndDate      *time.Time
	IsActive     *bool
}

// IsEmpty returns true if the update carries no fields
func (u *ScheduleUpdate) IsEmpty() bool {
	return u.CustomerName == nil && u.Group == nil && u.TimeSlot == nil &&
		u.StartDate == nil && u.EndDate == nil && u.IsActive == nil
}

// IsDeactivation returns true if the update moves the enrollment to the
// terminal INACTIVE state
func (u *ScheduleUpdate) IsDeactivation() bool {
	return u.IsActive != nil && !*u.IsActive
}

// ChangesSlot returns true if the update moves the enrollment to another
// group or time slot. Callers are expected to re-check capacity against the
// target slot before applying such an update.
func (u *ScheduleUpdate) ChangesSlot() bool {
	return u.Group != nil || u.TimeSlot != nil
}

// SlotOccupancy describes how full one (group, time slot) pair is
type SlotOccupancy struct {
	TimeSlot    types.TimeString
	Group       GroupType
	ActiveCount int
	Capacity    int
}

// AvailableSeats returns the number of free seats, never negative
func (o *SlotOccupancy) AvailableSeats() int {
	free := o.Capacity - o.ActiveCount
	if free < 0 {
		return 0
	}
	return free
}

// IsFull returns true if the slot has no free seats
func (o *SlotOccupancy) IsFull() bool {
	return o.ActiveCount >= o.Capacity
}
