package domain

import "github.com/mcozcn/salondesk/pkg/types"

// SlotCapacity is the fixed number of seats shared by one (group, time slot) pair.
// The three weekly sessions of a group draw from this single pool.
const SlotCapacity = 4

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// timeSlotCatalog fixed catalog of 14 hourly class slots (07:00 through 20:00)
var timeSlotCatalog = []types.TimeString{
	"07:00", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// TimeSlots returns a copy of the fixed slot catalog
func TimeSlots() []types.TimeString {
	slots := make([]types.TimeString, len(timeSlotCatalog))
	copy(slots, timeSlotCatalog)
	return slots
}

// IsValidTimeSlot returns true if the slot belongs to the fixed catalog
func IsValidTimeSlot(slot types.TimeString) bool {
	for _, s := range timeSlotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}

// Business validation constants
const (
	MaxCustomerNameLength = 200
)
