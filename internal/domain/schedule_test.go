package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleUpdate_IsEmpty(t *testing.T) {
	var empty ScheduleUpdate
	assert.True(t, empty.IsEmpty())

	active := false
	update := ScheduleUpdate{IsActive: &active}
	assert.False(t, update.IsEmpty())
}

func TestScheduleUpdate_IsDeactivation(t *testing.T) {
	inactive := false
	active := true

	deactivation := ScheduleUpdate{IsActive: &inactive}
	assert.True(t, deactivation.IsDeactivation())

	reactivation := ScheduleUpdate{IsActive: &active}
	assert.False(t, reactivation.IsDeactivation())

	var noChange ScheduleUpdate
	assert.False(t, noChange.IsDeactivation())
}

func TestScheduleUpdate_ChangesSlot(t *testing.T) {
	group := GroupB
	slotChange := ScheduleUpdate{Group: &group}
	assert.True(t, slotChange.ChangesSlot())

	name := "renamed"
	nameOnly := ScheduleUpdate{CustomerName: &name}
	assert.False(t, nameOnly.ChangesSlot())
}

func TestGroupSchedule_SeatState(t *testing.T) {
	active := GroupSchedule{IsActive: true}
	assert.True(t, active.OccupiesSeat())
	assert.False(t, active.IsDeactivated())

	deactivated := GroupSchedule{IsActive: false}
	assert.False(t, deactivated.OccupiesSeat())
	assert.True(t, deactivated.IsDeactivated())
}

func TestSlotOccupancy(t *testing.T) {
	occ := SlotOccupancy{TimeSlot: "14:00", Group: GroupA, ActiveCount: 3, Capacity: SlotCapacity}
	assert.Equal(t, 1, occ.AvailableSeats())
	assert.False(t, occ.IsFull())

	occ.ActiveCount = 4
	assert.Equal(t, 0, occ.AvailableSeats())
	assert.True(t, occ.IsFull())

	// Merged remote+local views can over-count; availability stays at zero
	occ.ActiveCount = 5
	assert.Equal(t, 0, occ.AvailableSeats())
}
