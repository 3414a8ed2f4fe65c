package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupType_IsValid(t *testing.T) {
	assert.True(t, GroupA.IsValid())
	assert.True(t, GroupB.IsValid())
	assert.False(t, GroupType("C").IsValid())
	assert.False(t, GroupType("").IsValid())
}

func TestGroupType_Days(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, GroupA.Days())
	assert.Equal(t, []int{2, 4, 6}, GroupB.Days())
	assert.Nil(t, GroupType("X").Days())
}

func TestGroupType_Days_ReturnsCopy(t *testing.T) {
	days := GroupA.Days()
	days[0] = 99

	assert.Equal(t, []int{1, 3, 5}, GroupA.Days())
}

func TestGroupForWeekday(t *testing.T) {
	tests := []struct {
		name      string
		dayOfWeek int
		wantGroup GroupType
		wantOK    bool
	}{
		{"monday is group A", 1, GroupA, true},
		{"tuesday is group B", 2, GroupB, true},
		{"wednesday is group A", 3, GroupA, true},
		{"thursday is group B", 4, GroupB, true},
		{"friday is group A", 5, GroupA, true},
		{"saturday is group B", 6, GroupB, true},
		{"sunday has no group", 7, "", false},
		{"sunday as zero has no group", 0, "", false},
		{"out of range", 8, "", false},
		{"negative", -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, ok := GroupForWeekday(tt.dayOfWeek)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantGroup, group)
		})
	}
}

func TestTimeSlots_Catalog(t *testing.T) {
	slots := TimeSlots()

	require.Len(t, slots, 14)
	assert.Equal(t, "07:00", slots[0].String())
	assert.Equal(t, "20:00", slots[len(slots)-1].String())

	for _, slot := range slots {
		assert.True(t, IsValidTimeSlot(slot), "catalog slot %s must validate", slot)
	}
}

func TestIsValidTimeSlot_RejectsOffCatalog(t *testing.T) {
	assert.False(t, IsValidTimeSlot("06:00"))
	assert.False(t, IsValidTimeSlot("21:00"))
	assert.False(t, IsValidTimeSlot("14:30"))
	assert.False(t, IsValidTimeSlot(""))
}
